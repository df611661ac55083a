package notifications

import "github.com/thenoetrevino/veyr/internal/config/colors"

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func (s Severity) style(scheme colors.ColorScheme) style {
	switch s {
	case Warning:
		return style{
			icon:       "⚠",
			title:      "Warning",
			foreground: scheme.WarningFg,
			background: scheme.WarningBg,
		}
	case Error:
		return style{
			icon:       "✕",
			title:      "Error",
			foreground: scheme.ErrorFg,
			background: scheme.ErrorBg,
		}
	default:
		return style{
			icon:       "🔔",
			title:      "Info",
			foreground: scheme.InfoFg,
			background: scheme.InfoBg,
		}
	}
}
