package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Amr-9/GrsValidator/internal/metrics"
	"github.com/Amr-9/GrsValidator/internal/server"
)

func CmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve address validation over HTTP.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := unwrapConfig(cmd.Context())
			network, err := cfg.ParsedNetwork()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Options{
				Listen:  cfg.Listen,
				Workers: cfg.Workers,
				Network: network,
			}, metrics.NewMetrics(metrics.Namespace))
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().String("listen", ":8080", "Address to listen on")
	return cmd
}
