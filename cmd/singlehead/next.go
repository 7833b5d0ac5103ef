package main

import (
	"github.com/spf13/cobra"

	"github.com/singlehead/singlehead/internal/activate"
	"github.com/singlehead/singlehead/internal/snapshot"
)

func newNextCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Cycle to the next output",
		Long: "Switches on the output after the currently active one, in lexicographic\n" +
			"name order, wrapping at the end. All other outputs are switched off and\n" +
			"the new choice is remembered for the next session.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runNext(app)
		},
	}
}

func runNext(app *AppContext) error {
	outputs, err := app.Client.Outputs()
	if err != nil {
		return err
	}
	snap := snapshot.FromNiri(outputs)

	chosen, err := snapshot.AdvanceToNext(snap)
	if err != nil {
		return err
	}

	app.Log.WithFields(map[string]any{"output": chosen}).Debug("output selected")

	return activate.New(app.Client, app.Store, app.Log).Apply(snap, chosen)
}
