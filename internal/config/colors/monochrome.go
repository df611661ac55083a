package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// UI elements
		ColumnBorder:   "#FFFFFF",
		DropTarget:     "#FFFFFF",
		TaskBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		Edit:           "#D0D0D0",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
