package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Amr-9/GrsValidator/internal/config"
)

const version = "0.1.0"

// errInvalidAddresses makes the process exit with status 1 without printing
// an error; the offending addresses were already reported.
var errInvalidAddresses = errors.New("invalid addresses")

type contextKey string

const contextConfig contextKey = "config"

func wrapConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, contextConfig, cfg)
}

func unwrapConfig(ctx context.Context) *config.Config {
	return ctx.Value(contextConfig).(*config.Config)
}

func CmdGrsValidator() *cobra.Command {
	var configPath string
	var verbose int
	cmd := &cobra.Command{
		Use:           "grsvalidator",
		Short:         "Validate Groestlcoin addresses",
		Args:          cobra.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			level := config.VerbosityLevel(cfg.Log.Level, verbose)
			if err := config.ConfigureLogger(level, cfg.Log.Format); err != nil {
				return err
			}
			logrus.SetOutput(cmd.ErrOrStderr())

			logrus.WithFields(logrus.Fields{
				"network": cfg.Network,
				"workers": cfg.Workers,
				"output":  cfg.Output,
			}).Debug("config")
			cmd.SetContext(wrapConfig(cmd.Context(), cfg))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a grsvalidator.yaml config file")
	flags.String("network", "", "Only accept addresses of this network (mainnet, testnet, regtest)")
	flags.StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
	flags.Int("workers", 0, "Number of validation workers (default one per CPU)")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	flags.String("log-format", "color-text", "Log format: json, text, color-text")
	flags.CountVarP(&verbose, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	cmd.AddCommand(CmdValidate())
	cmd.AddCommand(CmdBatch())
	cmd.AddCommand(CmdGenerate())
	cmd.AddCommand(CmdServe())
	cmd.AddCommand(CmdNetworks())

	return cmd
}

func main() {
	err := CmdGrsValidator().Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errInvalidAddresses) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
