package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/models"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

type failingWrites struct{ taskservice.Service }

func (failingWrites) CreateTask(context.Context, taskservice.CreateTaskRequest) (*models.Task, error) {
	return nil, errors.New("disk full")
}

func (failingWrites) UpdateTask(context.Context, taskservice.UpdateTaskRequest) (*models.Task, error) {
	return nil, errors.New("disk full")
}

var enter = special(tea.KeyEnter)

var esc = special(tea.KeyEscape)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, key(string(r)))
	}
	return m
}

func TestEdit_CommitSavesTitle(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, key("e"))
	if m.Mode() != state.EditMode {
		t.Fatalf("Mode() = %v, want EditMode", m.Mode())
	}
	m = typeText(t, m, " now")
	m, cmd := update(t, m, enter)

	want := database.FirstTaskTitle + " now"
	if task, _, _ := m.Snapshot().Find(1); task.Title != want {
		t.Fatalf("optimistic title = %q, want %q", task.Title, want)
	}
	m = settle(t, m, cmd)

	stored, err := tb.repo.GetTask(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if stored.Title != want {
		t.Errorf("stored title = %q, want %q", stored.Title, want)
	}
	if m.Mode() != state.NormalMode || m.edit != nil {
		t.Error("commit should end the edit")
	}
}

func TestEdit_UnchangedOrBlankDoesNothing(t *testing.T) {
	tests := []struct {
		name  string
		input func(t *testing.T, m Model) Model
	}{
		{"unchanged", func(t *testing.T, m Model) Model { return m }},
		{"padded with spaces", func(t *testing.T, m Model) Model { return typeText(t, m, "   ") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := setupTestBoard(t)
			m := setupTestModel(t, taskservice.NewService(tb.repo))

			m, _ = update(t, m, enter)
			m = tt.input(t, m)
			m, cmd := update(t, m, enter)

			if cmd != nil {
				t.Error("expected no save")
			}
			if task, _, _ := m.Snapshot().Find(1); task.Title != database.FirstTaskTitle {
				t.Errorf("title = %q", task.Title)
			}
		})
	}
}

func TestEdit_BlankTitleIsRejected(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, key("e"))
	for range database.FirstTaskTitle {
		m, _ = update(t, m, special(tea.KeyBackspace))
	}
	m = typeText(t, m, "  ")
	m, cmd := update(t, m, enter)

	if cmd != nil {
		t.Error("a blank title must not be saved")
	}
	if task, _, _ := m.Snapshot().Find(1); task.Title != database.FirstTaskTitle {
		t.Errorf("title = %q, want original", task.Title)
	}
	notes := m.Notifications()
	if len(notes) != 1 || notes[0].Level != state.LevelWarning {
		t.Errorf("notifications = %+v, want one warning", notes)
	}
	if m.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", m.Mode())
	}
}

func TestEdit_EscapeReverts(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, key("e"))
	m = typeText(t, m, "xyz")
	m, cmd := update(t, m, esc)

	if cmd != nil {
		t.Error("cancel must not save")
	}
	if task, _, _ := m.Snapshot().Find(1); task.Title != database.FirstTaskTitle {
		t.Errorf("title = %q, want original", task.Title)
	}
	if m.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", m.Mode())
	}
}

func TestEdit_ClickElsewhereCommits(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, key("e"))
	m = typeText(t, m, "!")

	// a click on the card being edited keeps editing
	m, _ = update(t, m, press(columnX(0), cardY(0)))
	if m.Mode() != state.EditMode {
		t.Fatal("clicking the edited card should keep editing")
	}

	m, cmd := update(t, m, press(columnX(2), cardY(0)))
	if m.Mode() != state.NormalMode {
		t.Fatalf("Mode() = %v, want NormalMode", m.Mode())
	}
	settle(t, m, cmd)

	stored, err := tb.repo.GetTask(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if stored.Title != database.FirstTaskTitle+"!" {
		t.Errorf("stored title = %q", stored.Title)
	}
}

func TestEdit_SaveFailureRollsBackTitle(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, failingWrites{taskservice.NewService(tb.repo)})

	m, _ = update(t, m, key("e"))
	m = typeText(t, m, "!")
	m, cmd := update(t, m, enter)
	m = settle(t, m, cmd)

	if task, _, _ := m.Snapshot().Find(1); task.Title != database.FirstTaskTitle {
		t.Errorf("title after failed save = %q, want original", task.Title)
	}
	if len(m.Notifications()) != 1 {
		t.Errorf("expected one notification, got %v", m.Notifications())
	}
}

func TestAddTask_CommitCreates(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))
	todo := tb.columns[0].ID

	m, _ = update(t, m, key("a"))
	if m.Mode() != state.EditMode {
		t.Fatalf("Mode() = %v, want EditMode", m.Mode())
	}
	draft := m.Snapshot().Column(todo)
	if len(draft) != 4 || draft[3].ID >= 0 {
		t.Fatalf("expected an unsaved card at the end, got %v", draft)
	}

	m = typeText(t, m, "  New card ")
	m, cmd := update(t, m, enter)
	m = settle(t, m, cmd)

	tasks := m.Snapshot().Column(todo)
	if !equalTitles(tasks, database.FirstTaskTitle, "A", "B", "New card") {
		t.Fatalf("To Do = %v", titles(tasks))
	}
	if tasks[3].ID <= 0 {
		t.Errorf("created card should carry its saved ID, got %d", tasks[3].ID)
	}
	if task := m.getCurrentTask(); task == nil || task.ID != tasks[3].ID {
		t.Errorf("selection should stay on the new card, got %v", task)
	}

	stored, err := tb.repo.ListTasksByColumn(context.Background(), todo)
	if err != nil {
		t.Fatalf("ListTasksByColumn() error = %v", err)
	}
	if !equalTitles(stored, database.FirstTaskTitle, "A", "B", "New card") {
		t.Errorf("stored To Do = %v", titles(stored))
	}
}

func TestAddTask_BlankOrCancelledIsDiscarded(t *testing.T) {
	tests := []struct {
		name   string
		typed  string
		finish tea.KeyPressMsg
	}{
		{"empty enter", "", enter},
		{"whitespace enter", "   ", enter},
		{"escape", "half a title", esc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := setupTestBoard(t)
			m := setupTestModel(t, taskservice.NewService(tb.repo))
			before := m.Snapshot()

			m, _ = update(t, m, key("a"))
			m = typeText(t, m, tt.typed)
			m, cmd := update(t, m, tt.finish)

			if cmd != nil {
				t.Error("a discarded card must not be saved")
			}
			if !m.Snapshot().Equal(before) {
				t.Errorf("board changed: %v", titles(m.Snapshot().Column(tb.columns[0].ID)))
			}
		})
	}
}

func TestAddTask_CreateFailureRemovesCard(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, failingWrites{taskservice.NewService(tb.repo)})
	before := m.Snapshot()

	m, _ = update(t, m, key("a"))
	m = typeText(t, m, "Doomed")
	m, cmd := update(t, m, enter)
	m = settle(t, m, cmd)

	if !m.Snapshot().Equal(before) {
		t.Errorf("board after failed create = %v", titles(m.Snapshot().Column(tb.columns[0].ID)))
	}
	if len(m.Notifications()) != 1 {
		t.Errorf("expected one notification, got %v", m.Notifications())
	}
}

func TestAddTask_TempIDsDoNotCollide(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, failingWrites{taskservice.NewService(tb.repo)})

	m, _ = update(t, m, key("a"))
	first := m.edit.taskID
	m = typeText(t, m, "one")
	m, _ = update(t, m, enter) // in flight, not settled

	m, _ = update(t, m, key("a"))
	if m.edit.taskID == first || m.edit.taskID >= 0 {
		t.Errorf("second draft ID = %d, first = %d", m.edit.taskID, first)
	}
}
