package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/editor"
	"github.com/thenoetrevino/veyr/internal/models"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// editSession is an inline title edit on one card
type editSession struct {
	taskID   int
	columnID int
	editor   *editor.Editor
	input    textinput.Model
}

func (m Model) newInput(value string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Task title"
	input.CharLimit = models.MaxTitleLength
	input.SetWidth(m.layout().cardInnerWidth() - 1)
	input.SetValue(value)
	input.CursorEnd()
	return input
}

// beginEdit opens the title editor on a saved task
func (m Model) beginEdit(taskID int) (tea.Model, tea.Cmd) {
	task, _, ok := m.store.Current().Find(taskID)
	if !ok || task.ID <= 0 {
		return m, nil
	}

	ed := editor.New(task.Title)
	ed.Begin()
	m.edit = &editSession{
		taskID:   task.ID,
		columnID: task.ColumnID,
		editor:   ed,
		input:    m.newInput(ed.Draft()),
	}
	m.selectTask(task.ID)
	m.uiState.SetMode(state.EditMode)
	return m, m.edit.input.Focus()
}

// beginNewTask adds an unsaved card at the end of the selected column and
// opens the editor on it. The card is saved only if its title is committed
// non-empty.
func (m Model) beginNewTask() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col == nil {
		return m, nil
	}

	placeholder := &models.Task{
		ID:       m.nextTempID(),
		ColumnID: col.ID,
		Position: len(m.store.Current().Column(col.ID)),
	}
	if _, err := m.store.UpsertTask(placeholder); err != nil {
		slog.Error("failed to add draft task", "column_id", col.ID, "error", err)
		return m, nil
	}

	ed := editor.NewDraft()
	m.edit = &editSession{
		taskID:   placeholder.ID,
		columnID: col.ID,
		editor:   ed,
		input:    m.newInput(""),
	}
	m.selectTask(placeholder.ID)
	m.uiState.SetMode(state.EditMode)
	return m, m.edit.input.Focus()
}

func (m Model) handleEditKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitEdit()
	case "esc":
		return m.cancelEdit()
	}
	return m.updateEditInput(msg)
}

// updateEditInput feeds a message to the text input and mirrors its value
// into the editor draft
func (m Model) updateEditInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	m.edit.editor.SetDraft(m.edit.input.Value())
	return m, cmd
}

func (m Model) endEdit() *editSession {
	session := m.edit
	m.uiState.SetMode(state.NormalMode)
	return session
}

func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	session := m.endEdit()
	m.edit = nil
	if session == nil {
		return m, nil
	}

	ev := session.editor.Commit()
	switch ev.Kind {
	case editor.EventDiscard:
		m.store.RemoveTask(session.taskID)
		m.clampSelection()
		return m, nil

	case editor.EventCommit:
		task, _, ok := m.store.Current().Find(session.taskID)
		if !ok {
			return m, nil
		}
		if ev.Value == "" {
			// saved tasks keep a title; the card shows the old one again
			m.notificationState.Add(state.LevelWarning, "Task title cannot be empty")
			return m, nil
		}
		updated := task.Clone()
		updated.Title = ev.Value
		if _, err := m.store.UpsertTask(updated); err != nil {
			slog.Error("failed to apply title", "task_id", task.ID, "error", err)
			return m, nil
		}
		if task.ID < 0 {
			return m, m.createTask(task.ID, session.columnID, ev.Value)
		}
		return m, m.saveTitle(task.ID, task.Title, ev.Value)
	}
	return m, nil
}

func (m Model) cancelEdit() (tea.Model, tea.Cmd) {
	session := m.endEdit()
	m.edit = nil
	if session == nil {
		return m, nil
	}

	session.editor.Cancel()
	if session.editor.IsNew() {
		m.store.RemoveTask(session.taskID)
		m.clampSelection()
	}
	return m, nil
}
