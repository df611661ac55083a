package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/drag"
	"github.com/thenoetrevino/veyr/internal/models"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

type failingMoves struct{ taskservice.Service }

func (failingMoves) MoveTask(context.Context, int, int, int) (*models.Task, error) {
	return nil, errors.New("disk full")
}

// dragTo presses at from, carries the pointer to to and releases there
func dragTo(t *testing.T, m Model, fromX, fromY, toX, toY int) (Model, tea.Cmd) {
	t.Helper()
	m, _ = update(t, m, press(fromX, fromY))
	m, _ = update(t, m, motion(toX, toY))
	if m.drag.State() != drag.Dragging {
		t.Fatalf("drag did not start moving from (%d,%d) to (%d,%d)", fromX, fromY, toX, toY)
	}
	return update(t, m, release(toX, toY))
}

func TestMouse_DragToColumnAppends(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, cmd := dragTo(t, m, columnX(0), cardY(0), columnX(1), cardY(5))

	if got := m.Snapshot().Column(tb.columns[1].ID); !equalTitles(got, "C", database.FirstTaskTitle) {
		t.Fatalf("optimistic In Progress = %v", titles(got))
	}
	if got := m.Snapshot().Column(tb.columns[0].ID); !equalTitles(got, "A", "B") {
		t.Fatalf("optimistic To Do = %v", titles(got))
	}
	m = settle(t, m, cmd)

	stored, err := tb.repo.ListTasksByColumn(context.Background(), tb.columns[1].ID)
	if err != nil {
		t.Fatalf("ListTasksByColumn() error = %v", err)
	}
	if !equalTitles(stored, "C", database.FirstTaskTitle) {
		t.Errorf("stored In Progress = %v", titles(stored))
	}
	if task := m.getCurrentTask(); task == nil || task.ID != 1 {
		t.Errorf("selection should follow the dropped task, got %v", task)
	}
}

func TestMouse_DragOntoTaskTakesItsPlace(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	// B onto Your first task, same column
	m, cmd := dragTo(t, m, columnX(0), cardY(2), columnX(0)+6, cardY(0))
	m = settle(t, m, cmd)

	if got := m.Snapshot().Column(tb.columns[0].ID); !equalTitles(got, "B", database.FirstTaskTitle, "A") {
		t.Errorf("To Do = %v", titles(got))
	}
	stored, err := tb.repo.ListTasksByColumn(context.Background(), tb.columns[0].ID)
	if err != nil {
		t.Fatalf("ListTasksByColumn() error = %v", err)
	}
	if !equalTitles(stored, "B", database.FirstTaskTitle, "A") {
		t.Errorf("stored To Do = %v", titles(stored))
	}
}

func TestMouse_FailedMoveRollsBack(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, failingMoves{taskservice.NewService(tb.repo)})
	before := m.Snapshot()

	m, cmd := dragTo(t, m, columnX(0), cardY(0), columnX(2), cardY(0))
	if m.Snapshot().Equal(before) {
		t.Fatal("the move should be applied before it is persisted")
	}
	m = settle(t, m, cmd)

	if !m.Snapshot().Equal(before) {
		t.Errorf("board was not rolled back: To Do = %v", titles(m.Snapshot().Column(tb.columns[0].ID)))
	}
	notes := m.Notifications()
	if len(notes) != 1 || notes[0].Level != state.LevelError || !strings.Contains(notes[0].Message, "Could not move task") {
		t.Errorf("notifications = %+v", notes)
	}
	if !strings.Contains(m.content(), "Could not move task") {
		t.Error("status bar should show the error")
	}
}

func TestMouse_NoOpDrops(t *testing.T) {
	tests := []struct {
		name string
		toX  int
		toY  int
	}{
		{"onto itself", columnX(0) + 4, cardY(0)},
		{"onto the column gap", 32, cardY(0)},
		{"onto the header", columnX(1), 0},
		{"past the last column", 99, cardY(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := setupTestBoard(t)
			m := setupTestModel(t, taskservice.NewService(tb.repo))
			before := m.Snapshot()

			m, _ = update(t, m, press(columnX(0), cardY(0)))
			m, _ = update(t, m, motion(columnX(1), cardY(3)))
			m, cmd := update(t, m, release(tt.toX, tt.toY))

			if cmd != nil {
				t.Error("a no-op drop must not be persisted")
			}
			if !m.Snapshot().Equal(before) {
				t.Error("a no-op drop must not change the board")
			}
			if m.drag.State() != drag.Idle {
				t.Errorf("State() = %v, want idle", m.drag.State())
			}
		})
	}
}

func TestMouse_DraggingShowsTarget(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, press(columnX(0), cardY(0)))
	m, _ = update(t, m, motion(columnX(1), cardY(0)))

	want := drag.TaskTarget{TaskID: tb.ids["C"], ColumnID: tb.columns[1].ID}
	if m.hover != want {
		t.Errorf("hover = %#v, want %#v", m.hover, want)
	}
	if !strings.Contains(m.content(), "Moving '"+database.FirstTaskTitle+"'") {
		t.Error("status bar should name the carried task")
	}

	// esc abandons the drag with the board untouched
	m, _ = update(t, m, special(tea.KeyEscape))
	if m.drag.State() != drag.Idle || m.hover != nil {
		t.Error("esc should cancel the drag")
	}
}

func TestMouse_ClickBelowThresholdEdits(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, press(columnX(0), cardY(1)))
	m, _ = update(t, m, motion(columnX(0)+2, cardY(1)))
	if m.drag.State() != drag.Idle {
		t.Fatal("a 2 cell motion should not start a drag")
	}
	m, _ = update(t, m, release(columnX(0)+2, cardY(1)))

	if m.Mode() != state.EditMode {
		t.Fatalf("Mode() = %v, want EditMode", m.Mode())
	}
	if m.edit == nil || m.edit.taskID != tb.ids["A"] {
		t.Errorf("editing %+v, want task A", m.edit)
	}
}

func TestMouse_PressOnColumnSelectsIt(t *testing.T) {
	tb := setupTestBoard(t)
	m := setupTestModel(t, taskservice.NewService(tb.repo))

	m, _ = update(t, m, press(columnX(2), cardY(4)))
	m, _ = update(t, m, release(columnX(2), cardY(4)))

	if m.uiState.SelectedColumn() != 2 {
		t.Errorf("SelectedColumn() = %d, want 2", m.uiState.SelectedColumn())
	}
	if m.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", m.Mode())
	}
}
