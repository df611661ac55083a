package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	EditMode                      // Inline title editing
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// taskScrollOffsets tracks the vertical scroll offset for each column
	// Key: columnID, Value: scroll offset (index of first visible task)
	taskScrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// EnsureColumnVisible scrolls the viewport so the selected column is on
// screen when only visible columns fit.
func (s *UIState) EnsureColumnVisible(visible int) {
	visible = max(visible, 1)
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+visible {
		s.viewportOffset = s.selectedColumn - visible + 1
	}
	s.viewportOffset = max(s.viewportOffset, 0)
}

// TaskScrollOffset returns the index of the first visible task in a column.
func (s *UIState) TaskScrollOffset(columnID int) int {
	return s.taskScrollOffsets[columnID]
}

// EnsureTaskVisible scrolls a column so the task at index is on screen when
// only visible tasks fit. Offsets past the end of the column are pulled back.
func (s *UIState) EnsureTaskVisible(columnID, index, count, visible int) {
	visible = max(visible, 1)
	offset := s.taskScrollOffsets[columnID]
	if index < offset {
		offset = index
	}
	if index >= offset+visible {
		offset = index - visible + 1
	}
	offset = min(offset, max(count-visible, 0))
	s.taskScrollOffsets[columnID] = max(offset, 0)
}
