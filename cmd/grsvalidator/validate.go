package main

import (
	"github.com/spf13/cobra"

	"github.com/Amr-9/GrsValidator/internal/config"
	"github.com/Amr-9/GrsValidator/pkg/batch"
)

func CmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate ADDRESS...",
		Short: "Validate addresses given as arguments.",
		Long: "Validate addresses given as arguments and report their type and network.\n" +
			"Exits with status 1 when any address is invalid.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := unwrapConfig(cmd.Context())
			network, err := cfg.ParsedNetwork()
			if err != nil {
				return err
			}

			checker := batch.NewChecker(
				batch.WithWorkers(cfg.Workers),
				batch.WithNetwork(network),
			)
			results, err := checker.CheckAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Output == config.OutputText {
				console := newConsole(out)
				for _, res := range results {
					console.PrintResult(res)
				}
			} else if err := printData(out, cfg.Output, results); err != nil {
				return err
			}

			if checker.Stats().Invalid > 0 {
				return errInvalidAddresses
			}
			return nil
		},
	}
	return cmd
}
