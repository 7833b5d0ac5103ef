package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	socketPath string
	statePath  string
	configPath string
	logFormat  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "singlehead",
		Short: "Keep exactly one niri output active at a time",
		Long: "singlehead drives a single-output display policy for the niri compositor:\n" +
			"it turns one chosen output on, every other output off, and remembers the\n" +
			"choice across sessions so the next login restores it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.socketPath, "socket", "p", "", "Path to the niri IPC socket (defaults to $NIRI_SOCKET)")
	cmd.PersistentFlags().StringVarP(&flags.statePath, "state", "s", "", "Path to the state file (defaults to $XDG_STATE_HOME/niri/last-output)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log output format: auto, console or json")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newProbeCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newNextCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
