package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task" mapstructure:"add_task"`
	EditTask      string `yaml:"edit_task" mapstructure:"edit_task"`
	DeleteTask    string `yaml:"delete_task" mapstructure:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left" mapstructure:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right" mapstructure:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up" mapstructure:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down" mapstructure:"move_task_down"`

	// Navigation
	PrevColumn string `yaml:"prev_column" mapstructure:"prev_column"`
	NextColumn string `yaml:"next_column" mapstructure:"next_column"`
	PrevTask   string `yaml:"prev_task" mapstructure:"prev_task"`
	NextTask   string `yaml:"next_task" mapstructure:"next_task"`

	// Other
	Refresh  string `yaml:"refresh" mapstructure:"refresh"`
	ShowHelp string `yaml:"show_help" mapstructure:"show_help"`
	Quit     string `yaml:"quit" mapstructure:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.MoveTaskLeft == "" {
		k.MoveTaskLeft = defaults.MoveTaskLeft
	}
	if k.MoveTaskRight == "" {
		k.MoveTaskRight = defaults.MoveTaskRight
	}
	if k.MoveTaskUp == "" {
		k.MoveTaskUp = defaults.MoveTaskUp
	}
	if k.MoveTaskDown == "" {
		k.MoveTaskDown = defaults.MoveTaskDown
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
