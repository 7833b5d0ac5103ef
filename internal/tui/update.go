package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.outputs)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.outputs) > 0 {
			m.choice = m.outputs[m.cursor].Name
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}
