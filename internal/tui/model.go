// Package tui is the terminal board: it renders the board store and turns
// mouse and keyboard input into drag controller and editor calls.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/board"
	"github.com/thenoetrevino/veyr/internal/config"
	"github.com/thenoetrevino/veyr/internal/drag"
	"github.com/thenoetrevino/veyr/internal/models"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx   context.Context
	tasks taskservice.Service
	cfg   *config.Config

	columns []*models.Column
	store   *board.Store
	drag    *drag.Controller

	uiState           *state.UIState
	notificationState *state.NotificationState
	styles            styles

	// edit is the inline title edit in progress, nil outside EditMode
	edit *editSession
	// hover is the drop target under a dragged task
	hover drag.DropTarget
	// pendingDelete is the task awaiting confirmation in DeleteConfirmMode
	pendingDelete int
	loaded        bool
}

// New creates the board model. The board itself is loaded by Init.
func New(ctx context.Context, tasks taskservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	store := board.NewStore(board.Snapshot{})
	notificationState := state.NewNotificationState()
	controller := drag.NewController(store, tasks, notificationState, drag.Config{
		ActivationDistance: cfg.Drag.ActivationDistance,
		PersistTimeout:     cfg.Drag.PersistTimeout,
	})

	return Model{
		ctx:               ctx,
		tasks:             tasks,
		cfg:               cfg,
		store:             store,
		drag:              controller,
		uiState:           state.NewUIState(),
		notificationState: notificationState,
		styles:            newStyles(cfg.ColorScheme),
	}
}

// Init loads the board
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadBoard()
}

// Snapshot returns the board currently on screen
func (m Model) Snapshot() board.Snapshot {
	return m.store.Current()
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Notifications returns the notifications waiting to be shown
func (m Model) Notifications() []state.Notification {
	return m.notificationState.All()
}

// currentColumn returns the selected column, or nil on an empty board
func (m Model) currentColumn() *models.Column {
	idx := m.uiState.SelectedColumn()
	if idx < 0 || idx >= len(m.columns) {
		return nil
	}
	return m.columns[idx]
}

// getCurrentTasks returns the tasks of the selected column
func (m Model) getCurrentTasks() []*models.Task {
	col := m.currentColumn()
	if col == nil {
		return []*models.Task{}
	}
	return m.store.Current().Column(col.ID)
}

// getCurrentTask returns the selected task, or nil if the column is empty
func (m Model) getCurrentTask() *models.Task {
	tasks := m.getCurrentTasks()
	idx := m.uiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return nil
	}
	return tasks[idx]
}

// columnIndex returns the board index of a column, or -1
func (m Model) columnIndex(columnID int) int {
	for i, col := range m.columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}

// selectTask moves the selection onto a task
func (m Model) selectTask(taskID int) {
	task, idx, ok := m.store.Current().Find(taskID)
	if !ok {
		return
	}
	if col := m.columnIndex(task.ColumnID); col >= 0 {
		m.uiState.SetSelectedColumn(col)
		m.uiState.SetSelectedTask(idx)
	}
	m.scrollToSelection()
}

// clampSelection keeps the selection inside the board after it changes
func (m Model) clampSelection() {
	if len(m.columns) == 0 {
		m.uiState.SetSelectedColumn(0)
		m.uiState.SetSelectedTask(0)
		return
	}
	col := min(max(m.uiState.SelectedColumn(), 0), len(m.columns)-1)
	m.uiState.SetSelectedColumn(col)

	count := len(m.getCurrentTasks())
	m.uiState.SetSelectedTask(min(max(m.uiState.SelectedTask(), 0), max(count-1, 0)))
	m.scrollToSelection()
}

// scrollToSelection scrolls the viewport and the selected column so the
// selected task is visible
func (m Model) scrollToSelection() {
	l := m.layout()
	m.uiState.EnsureColumnVisible(l.visibleColumns)
	if col := m.currentColumn(); col != nil {
		count := len(m.store.Current().Column(col.ID))
		m.uiState.EnsureTaskVisible(col.ID, m.uiState.SelectedTask(), count, l.visibleTasks)
	}
}

// nextTempID returns an ID for an unsaved task that collides with no task
// on the board. Saved tasks have positive IDs.
func (m Model) nextTempID() int {
	lowest := 0
	snap := m.store.Current()
	for _, colID := range snap.ColumnIDs() {
		for _, t := range snap.Column(colID) {
			lowest = min(lowest, t.ID)
		}
	}
	return lowest - 1
}
