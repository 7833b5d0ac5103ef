package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/singlehead/singlehead/internal/activate"
	"github.com/singlehead/singlehead/internal/snapshot"
	"github.com/singlehead/singlehead/internal/tui"
	apperrors "github.com/singlehead/singlehead/pkg/errors"
)

func newPickCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose the active output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("pick requires an interactive terminal")
			}

			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			outputs, err := app.Client.Outputs()
			if err != nil {
				return err
			}
			snap := snapshot.FromNiri(outputs)
			if snap.Len() == 0 {
				return apperrors.NewEmptySnapshotError()
			}

			final, err := tea.NewProgram(tui.NewModel(snap)).Run()
			if err != nil {
				return err
			}

			chosen := final.(tui.Model).Choice()
			if chosen == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no output selected")
				return nil
			}

			return activate.New(app.Client, app.Store, app.Log).Apply(snap, chosen)
		},
	}
}
