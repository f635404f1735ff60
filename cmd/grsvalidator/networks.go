package main

import (
	"github.com/spf13/cobra"

	"github.com/Amr-9/GrsValidator/internal/config"
	"github.com/Amr-9/GrsValidator/internal/server"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

func CmdNetworks() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the supported networks and their address prefixes.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := unwrapConfig(cmd.Context())
			if cfg.Output == config.OutputText {
				newConsole(cmd.OutOrStdout()).PrintNetworks(chaincfg.Networks())
				return nil
			}
			return printData(cmd.OutOrStdout(), cfg.Output, server.NetworkInfos())
		},
	}
	return cmd
}
