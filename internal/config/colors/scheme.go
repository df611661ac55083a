package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" mapstructure:"preset"`

	// Primary accent color (used for the header and status bar)
	Accent string `yaml:"accent" mapstructure:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border" mapstructure:"column_border"`
	DropTarget     string `yaml:"drop_target" mapstructure:"drop_target"` // column under a dragged task
	TaskBorder     string `yaml:"task_border" mapstructure:"task_border"`
	SelectedBorder string `yaml:"selected_border" mapstructure:"selected_border"`
	Edit           string `yaml:"edit" mapstructure:"edit"` // border of a title being edited

	// Text colors
	Title  string `yaml:"title" mapstructure:"title"`
	Subtle string `yaml:"subtle" mapstructure:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" mapstructure:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg" mapstructure:"info_fg"`
	InfoBg    string `yaml:"info_bg" mapstructure:"info_bg"`
	WarningFg string `yaml:"warning_fg" mapstructure:"warning_fg"`
	WarningBg string `yaml:"warning_bg" mapstructure:"warning_bg"`
	ErrorFg   string `yaml:"error_fg" mapstructure:"error_fg"`
	ErrorBg   string `yaml:"error_bg" mapstructure:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.DropTarget, preset.DropTarget)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.Edit, preset.Edit)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides c with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.DropTarget, other.DropTarget)
	merge(&c.TaskBorder, other.TaskBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.Edit, other.Edit)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
