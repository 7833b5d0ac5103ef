package main

import (
	"github.com/spf13/cobra"

	"github.com/singlehead/singlehead/internal/activate"
	"github.com/singlehead/singlehead/internal/snapshot"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Restore the last active output, or pick a default",
		Long: "Reads the remembered output name and switches it on, turning every other\n" +
			"output off. If nothing was remembered, or the remembered output is gone,\n" +
			"the currently active output is kept; failing that, the first output by\n" +
			"name becomes active. Meant to run once at session start.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runInit(app)
		},
	}
}

func runInit(app *AppContext) error {
	persisted := app.Store.Read()

	outputs, err := app.Client.Outputs()
	if err != nil {
		return err
	}
	snap := snapshot.FromNiri(outputs)

	chosen, err := snapshot.RestoreOrFirst(snap, persisted)
	if err != nil {
		return err
	}

	app.Log.WithFields(map[string]any{
		"output":   chosen,
		"restored": persisted != "" && persisted == chosen,
	}).Debug("output selected")

	return activate.New(app.Client, app.Store, app.Log).Apply(snap, chosen)
}
