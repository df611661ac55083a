package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"charm.land/lipgloss/v2"
)

// helpMarkdown builds the help screen: key bindings, mouse gestures, and
// the board's columns with their descriptions
func (m Model) helpMarkdown() string {
	keys := m.cfg.KeyMappings

	var b strings.Builder
	b.WriteString("# veyr\n\n")
	b.WriteString("## Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := [][2]string{
		{keys.PrevColumn + " / " + keys.NextColumn, "previous / next column"},
		{keys.PrevTask + " / " + keys.NextTask, "previous / next task"},
		{keys.MoveTaskLeft + " / " + keys.MoveTaskRight, "move task to the previous / next column"},
		{keys.MoveTaskUp + " / " + keys.MoveTaskDown, "move task up / down"},
		{keys.AddTask, "add a task to the column"},
		{keys.EditTask + " / enter", "edit the task title"},
		{keys.DeleteTask, "delete the task"},
		{keys.Refresh, "reload the board"},
		{keys.ShowHelp + " / esc", "close this help"},
		{keys.Quit, "quit"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
	}

	b.WriteString("\n## Mouse\n\n")
	b.WriteString("- **Drag** a card onto another card to take its place, or onto a column to append it.\n")
	b.WriteString("- **Click** a card to edit its title. Enter saves, Esc cancels.\n")

	if len(m.columns) > 0 {
		b.WriteString("\n## Columns\n\n")
		for _, col := range m.columns {
			fmt.Fprintf(&b, "- **%s**", col.Name)
			if col.Description != "" {
				fmt.Fprintf(&b, ": %s", col.Description)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewHelp() string {
	md := m.helpMarkdown()
	width := max(m.uiState.Width()-4, 20)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Error("failed to create help renderer", "error", err)
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		slog.Error("failed to render help", "error", err)
		return md
	}

	return lipgloss.NewStyle().
		MaxHeight(max(m.uiState.Height(), 1)).
		Render(strings.TrimRight(out, "\n"))
}
