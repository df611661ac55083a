package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/board"
	"github.com/thenoetrevino/veyr/internal/models"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// Update handles all messages and updates the model
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		if m.edit != nil {
			m.edit.input.SetWidth(m.layout().cardInnerWidth() - 1)
		}
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMousePress(msg.Mouse())

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg.Mouse())

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg.Mouse())

	case boardLoadedMsg:
		return m.handleBoardLoaded(msg)

	case moveSettledMsg:
		if !m.drag.Settle(msg.move, msg.err) {
			return m, nil
		}
		// the restored snapshot predates any create or rename that landed
		// while the move was in flight, so reread the store
		m.dropStaleDrafts()
		if m.edit != nil && !m.keepEdit() {
			m.edit = nil
			m.uiState.SetMode(state.NormalMode)
		}
		m.clampSelection()
		return m, m.loadBoard()

	case taskCreatedMsg:
		return m.handleTaskCreated(msg)

	case titleSavedMsg:
		return m.handleTitleSaved(msg)

	case taskDeletedMsg:
		return m.handleTaskDeleted(msg)
	}

	if m.edit != nil {
		return m.updateEditInput(msg)
	}
	return m, nil
}

func (m Model) handleBoardLoaded(msg boardLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to load board", "error", msg.err)
		m.notificationState.NotifyError("Could not load board: " + msg.err.Error())
		return m, nil
	}

	// a reload drops any gesture against the old board
	m.drag.Cancel()
	m.hover = nil

	m.columns = msg.board.Columns
	m.store.Replace(board.NewSnapshot(msg.board))
	m.loaded = true
	if m.edit != nil && !m.keepEdit() {
		m.edit = nil
		m.uiState.SetMode(state.NormalMode)
	}
	m.clampSelection()
	return m, nil
}

// dropStaleDrafts removes unsaved cards that no edit session owns. They
// can only be left behind by a rollback to a snapshot taken before their
// create finished.
func (m Model) dropStaleDrafts() {
	snap := m.store.Current()
	for _, colID := range snap.ColumnIDs() {
		for _, t := range snap.Column(colID) {
			if t.ID < 0 && (m.edit == nil || m.edit.taskID != t.ID) {
				m.store.RemoveTask(t.ID)
			}
		}
	}
}

// keepEdit carries the open edit over to a replaced board. A saved task
// must still be on it; an unsaved card is put back at the end of its
// column. It reports whether the edit can go on.
func (m Model) keepEdit() bool {
	snap := m.store.Current()
	if _, _, ok := snap.Find(m.edit.taskID); ok {
		return true
	}
	if m.edit.taskID > 0 || !snap.HasColumn(m.edit.columnID) {
		return false
	}
	draft := &models.Task{
		ID:       m.edit.taskID,
		ColumnID: m.edit.columnID,
		Position: len(snap.Column(m.edit.columnID)),
	}
	if _, err := m.store.UpsertTask(draft); err != nil {
		slog.Error("failed to restore draft task", "column_id", m.edit.columnID, "error", err)
		return false
	}
	return true
}

func (m Model) handleTaskCreated(msg taskCreatedMsg) (tea.Model, tea.Cmd) {
	selected := false
	if cur := m.getCurrentTask(); cur != nil && cur.ID == msg.tempID {
		selected = true
	}
	m.store.RemoveTask(msg.tempID)

	if msg.err != nil {
		slog.Error("failed to create task", "error", msg.err)
		m.notificationState.NotifyError("Could not create task: " + msg.err.Error())
		m.clampSelection()
		return m, nil
	}

	if _, err := m.store.UpsertTask(msg.task); err != nil {
		slog.Error("created task has no column on screen", "task_id", msg.task.ID, "error", err)
		return m, m.loadBoard()
	}
	if selected {
		m.selectTask(msg.task.ID)
	}
	slog.Info("task created", "task_id", msg.task.ID)
	return m, nil
}

func (m Model) handleTitleSaved(msg titleSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		slog.Info("task title saved", "task_id", msg.taskID)
		return m, nil
	}

	slog.Error("failed to save title, rolled back", "task_id", msg.taskID, "error", msg.err)
	if cur, _, ok := m.store.Current().Find(msg.taskID); ok && cur.Title == msg.newTitle {
		reverted := cur.Clone()
		reverted.Title = msg.oldTitle
		if _, err := m.store.UpsertTask(reverted); err != nil {
			slog.Error("failed to roll back title", "task_id", msg.taskID, "error", err)
		}
	}
	m.notificationState.NotifyError("Could not rename task: " + msg.err.Error())
	return m, nil
}

func (m Model) handleTaskDeleted(msg taskDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		slog.Info("task deleted", "task_id", msg.task.ID)
		return m, nil
	}

	slog.Error("failed to delete task, restored", "task_id", msg.task.ID, "error", msg.err)
	if _, err := m.store.UpsertTask(msg.task); err != nil {
		slog.Error("failed to restore task", "task_id", msg.task.ID, "error", err)
	}
	m.notificationState.NotifyError("Could not delete task: " + msg.err.Error())
	return m, nil
}
