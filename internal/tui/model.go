package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/singlehead/singlehead/internal/snapshot"
)

// Model is the Bubbletea state for the interactive output picker. The cursor
// starts on the currently active output so that pressing enter immediately
// re-confirms the status quo.
type Model struct {
	outputs  []snapshot.Output
	cursor   int
	choice   string
	quitting bool
}

// NewModel constructs a picker over the given snapshot.
func NewModel(snap snapshot.Snapshot) Model {
	m := Model{outputs: snap.Outputs()}
	for i, out := range m.outputs {
		if out.Active {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Choice returns the selected output name, or empty if the picker was
// cancelled.
func (m Model) Choice() string {
	return m.choice
}
