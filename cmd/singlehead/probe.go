package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/singlehead/singlehead/internal/niri"
)

func newProbeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the compositor socket is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			path, err := niri.SocketPath(firstNonEmpty(flags.socketPath, cfg.Socket))
			if err != nil {
				return err
			}

			if err := niri.Ping(path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "compositor reachable")
			return nil
		},
	}
}
