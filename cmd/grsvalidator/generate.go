package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Amr-9/GrsValidator/internal/config"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/generator"
)

func CmdGenerate() *cobra.Command {
	var kindName string
	var count int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new addresses with their private keys.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := unwrapConfig(cmd.Context())
			network, err := cfg.ParsedNetwork()
			if err != nil {
				return err
			}
			if network == "" {
				network = chaincfg.Mainnet
			}
			kind, err := generator.ParseKind(kindName)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			var results []*generator.Result
			for i := 0; i < count; i++ {
				res, err := generator.Generate(network, kind)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			if cfg.Output != config.OutputText {
				return printData(out, cfg.Output, results)
			}
			console := newConsole(out)
			for i, res := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				console.PrintGenerated(res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", generator.KindP2WPKH.String(),
		"Address kind: p2pkh, p2sh-p2wpkh, p2wpkh, p2wsh")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of addresses to generate")
	return cmd
}
