package notifications

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/veyr/internal/config/colors"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// RenderInline renders a compact single-line notification, truncated to width
func RenderInline(scheme colors.ColorScheme, severity Severity, message string, width int) string {
	style := severity.style(scheme)

	content := style.icon + " " + style.title + ": " + firstLine(message)
	if width > 2 && lipgloss.Width(content) > width-2 {
		content = truncate(content, width-2)
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderLatest renders the newest notification in state, or "" if there is none
func RenderLatest(scheme colors.ColorScheme, s *state.NotificationState, width int) string {
	all := s.All()
	if len(all) == 0 {
		return ""
	}
	n := all[len(all)-1]
	return RenderInline(scheme, FromLevel(n.Level), n.Message, width)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
