package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/drag"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// The mouse drives the drag controller. A press on a card arms a gesture,
// motion past the activation distance starts a drag, and the release either
// drops the card or, for a press that never moved far, opens the title editor.

// pointerIdle reports whether the current mode ignores the pointer
func (m Model) pointerIdle() bool {
	switch m.uiState.Mode() {
	case state.HelpMode, state.DeleteConfirmMode, state.EditMode:
		return true
	}
	return false
}

func (m Model) handleMousePress(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	if m.uiState.Mode() == state.EditMode {
		// clicking anywhere else ends the edit the way losing focus does
		if t, ok := m.hitTest(mouse.X, mouse.Y).(drag.TaskTarget); ok && m.edit != nil && t.TaskID == m.edit.taskID {
			return m, nil
		}
		return m.commitEdit()
	}
	if m.pointerIdle() {
		return m, nil
	}

	switch t := m.hitTest(mouse.X, mouse.Y).(type) {
	case drag.TaskTarget:
		m.selectTask(t.TaskID)
		if t.TaskID > 0 {
			m.drag.PointerDown(t.TaskID, mouse.X, mouse.Y)
		}
	case drag.ColumnTarget:
		if idx := m.columnIndex(t.ColumnID); idx >= 0 {
			m.uiState.SetSelectedColumn(idx)
			m.clampSelection()
		}
	}
	return m, nil
}

func (m Model) handleMouseMotion(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.pointerIdle() {
		return m, nil
	}
	m.drag.PointerMove(mouse.X, mouse.Y)
	if m.drag.State() == drag.Dragging {
		m.hover = m.hitTest(mouse.X, mouse.Y)
	}
	return m, nil
}

func (m Model) handleMouseRelease(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.pointerIdle() {
		return m, nil
	}
	if m.drag.State() == drag.Dragging {
		m.hover = nil
		move, err := m.drag.Drop(m.hitTest(mouse.X, mouse.Y))
		if err != nil {
			slog.Error("drop failed", "error", err)
			m.notificationState.NotifyError("Could not move task: " + err.Error())
			return m, nil
		}
		if move == nil {
			return m, nil
		}
		m.selectTask(move.TaskID)
		return m, m.persistMove(move)
	}
	if taskID, clicked := m.drag.PointerUp(); clicked {
		return m.beginEdit(taskID)
	}
	return m, nil
}
