package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/singlehead/singlehead/internal/snapshot"
)

var (
	listActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	listInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type listOptions struct {
	asJSON bool
}

type listEntry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Make   string `json:"make,omitempty"`
	Model  string `json:"model,omitempty"`
	Modes  int    `json:"modes"`
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List compositor outputs and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runList(app, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Emit machine-readable JSON")

	return cmd
}

func runList(app *AppContext, out io.Writer, opts *listOptions) error {
	outputs, err := app.Client.Outputs()
	if err != nil {
		return err
	}
	snap := snapshot.FromNiri(outputs)

	entries := make([]listEntry, 0, snap.Len())
	for _, o := range snap.Outputs() {
		raw := outputs[o.Name]
		entries = append(entries, listEntry{
			Name:   o.Name,
			Active: o.Active,
			Make:   raw.Make,
			Model:  raw.Model,
			Modes:  len(raw.Modes),
		})
	}

	if opts.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	for _, entry := range entries {
		marker := listInactiveStyle.Render("○")
		if entry.Active {
			marker = listActiveStyle.Render("●")
		}

		label := strings.TrimSpace(entry.Make + " " + entry.Model)
		if label != "" {
			label = "  " + label
		}
		fmt.Fprintf(out, "%s %s%s (%d modes)\n", marker, entry.Name, label, entry.Modes)
	}
	return nil
}
