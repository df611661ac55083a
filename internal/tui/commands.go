package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/drag"
	"github.com/thenoetrevino/veyr/internal/models"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
)

// The commands below run on bubbletea goroutines. They only call the task
// service and return a message; all state changes happen in Update.

func (m Model) withTimeout() (context.Context, context.CancelFunc) {
	timeout := m.cfg.Drag.PersistTimeout
	if timeout <= 0 {
		timeout = drag.DefaultPersistTimeout
	}
	return context.WithTimeout(m.ctx, timeout)
}

func (m Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()
		b, err := m.tasks.LoadBoard(ctx)
		return boardLoadedMsg{board: b, err: err}
	}
}

func (m Model) persistMove(move *drag.Move) tea.Cmd {
	controller := m.drag
	ctx := m.ctx
	return func() tea.Msg {
		return moveSettledMsg{move: move, err: controller.Persist(ctx, move)}
	}
}

func (m Model) createTask(tempID, columnID int, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()
		task, err := m.tasks.CreateTask(ctx, taskservice.CreateTaskRequest{
			Title:    title,
			ColumnID: columnID,
		})
		return taskCreatedMsg{tempID: tempID, task: task, err: err}
	}
}

func (m Model) saveTitle(taskID int, oldTitle, newTitle string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()
		_, err := m.tasks.UpdateTask(ctx, taskservice.UpdateTaskRequest{
			TaskID: taskID,
			Title:  &newTitle,
		})
		return titleSavedMsg{taskID: taskID, oldTitle: oldTitle, newTitle: newTitle, err: err}
	}
}

func (m Model) deleteTask(task *models.Task) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()
		return taskDeletedMsg{task: task, err: m.tasks.DeleteTask(ctx, task.ID)}
	}
}
