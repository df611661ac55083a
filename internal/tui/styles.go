package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/veyr/internal/config/colors"
)

// styles holds the lipgloss styles derived from the color scheme
type styles struct {
	scheme colors.ColorScheme

	header      lipgloss.Style
	hint        lipgloss.Style
	columnTitle lipgloss.Style
	column      lipgloss.Style
	card        lipgloss.Style
	cardText    lipgloss.Style
	ghostText   lipgloss.Style
	status      lipgloss.Style
}

func newStyles(scheme colors.ColorScheme) styles {
	return styles{
		scheme: scheme,
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		columnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.ColumnBorder)),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.TaskBorder)),
		cardText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),
		ghostText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Faint(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Accent)),
	}
}

// columnStyle returns the column box style for its current role
func (s styles) columnStyle(selected, dropTarget bool) lipgloss.Style {
	switch {
	case dropTarget:
		return s.column.BorderForeground(lipgloss.Color(s.scheme.DropTarget))
	case selected:
		return s.column.BorderForeground(lipgloss.Color(s.scheme.Accent))
	default:
		return s.column
	}
}

// cardStyle returns the task card style for its current role
func (s styles) cardStyle(selected, dropTarget, editing bool) lipgloss.Style {
	switch {
	case editing:
		return s.card.BorderForeground(lipgloss.Color(s.scheme.Edit))
	case dropTarget:
		return s.card.BorderForeground(lipgloss.Color(s.scheme.DropTarget))
	case selected:
		return s.card.BorderForeground(lipgloss.Color(s.scheme.SelectedBorder))
	default:
		return s.card
	}
}

// labelDot renders a label as a colored dot
func labelDot(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}
