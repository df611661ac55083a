package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// handleKey dispatches key presses by mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.uiState.Mode() {
	case state.EditMode:
		return m.handleEditKey(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.HelpMode:
		if msg.String() == "esc" || msg.String() == m.cfg.KeyMappings.ShowHelp || msg.String() == m.cfg.KeyMappings.Quit {
			m.uiState.SetMode(state.NormalMode)
		}
		return m, nil
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.KeyMappings
	m.notificationState.Clear()

	if msg.String() == "esc" {
		m.drag.Cancel()
		m.hover = nil
		return m, nil
	}
	if msg.String() == "enter" {
		if task := m.getCurrentTask(); task != nil {
			return m.beginEdit(task.ID)
		}
		return m, nil
	}

	switch msg.String() {
	case keys.Quit:
		return m, tea.Quit
	case keys.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	case keys.Refresh:
		return m, m.loadBoard()

	case keys.PrevColumn:
		m.selectColumn(m.uiState.SelectedColumn() - 1)
	case keys.NextColumn:
		m.selectColumn(m.uiState.SelectedColumn() + 1)
	case keys.PrevTask:
		m.uiState.SetSelectedTask(m.uiState.SelectedTask() - 1)
		m.clampSelection()
	case keys.NextTask:
		m.uiState.SetSelectedTask(m.uiState.SelectedTask() + 1)
		m.clampSelection()

	case keys.MoveTaskLeft:
		return m.moveSelected(-1, 0)
	case keys.MoveTaskRight:
		return m.moveSelected(1, 0)
	case keys.MoveTaskUp:
		return m.moveSelected(0, -1)
	case keys.MoveTaskDown:
		return m.moveSelected(0, 1)

	case keys.AddTask:
		return m.beginNewTask()
	case keys.EditTask:
		if task := m.getCurrentTask(); task != nil {
			return m.beginEdit(task.ID)
		}
	case keys.DeleteTask:
		if task := m.getCurrentTask(); task != nil && task.ID > 0 {
			m.pendingDelete = task.ID
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	}
	return m, nil
}

// selectColumn selects a column, keeping the task index where it fits
func (m Model) selectColumn(idx int) {
	if idx < 0 || idx >= len(m.columns) {
		return
	}
	m.uiState.SetSelectedColumn(idx)
	m.clampSelection()
}

// moveSelected moves the selected task through the drag controller, so a
// keyboard move follows the same rules and rollback as a drop
func (m Model) moveSelected(dColumn, dTask int) (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil || task.ID <= 0 {
		return m, nil
	}

	colIdx := m.uiState.SelectedColumn() + dColumn
	index := m.uiState.SelectedTask() + dTask
	if colIdx < 0 || colIdx >= len(m.columns) || index < 0 {
		return m, nil
	}

	move, err := m.drag.MoveTo(task.ID, m.columns[colIdx].ID, index)
	if err != nil {
		slog.Error("keyboard move failed", "task_id", task.ID, "error", err)
		m.notificationState.NotifyError("Could not move task: " + err.Error())
		return m, nil
	}
	if move == nil {
		return m, nil
	}
	m.selectTask(move.TaskID)
	return m, m.persistMove(move)
}

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.uiState.SetMode(state.NormalMode)
		task, _, ok := m.store.Current().Find(m.pendingDelete)
		m.pendingDelete = 0
		if !ok {
			return m, nil
		}
		m.store.RemoveTask(task.ID)
		m.clampSelection()
		return m, m.deleteTask(task)
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
		m.pendingDelete = 0
	}
	return m, nil
}
