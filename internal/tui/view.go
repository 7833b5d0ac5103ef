package tui

import (
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose the active output"))
	b.WriteString("\n")

	for i, out := range m.outputs {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		marker := inactiveStyle.Render("○ off")
		if out.Active {
			marker = activeStyle.Render("● on")
		}

		b.WriteString(cursor)
		b.WriteString(out.Name)
		b.WriteString("  ")
		b.WriteString(marker)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: switch · j/k: move · q: cancel"))
	b.WriteString("\n")
	return b.String()
}
