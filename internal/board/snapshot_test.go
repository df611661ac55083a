package board

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/veyr/internal/models"
)

const (
	ready = 1
	doing = 2
	done  = 3
)

// exampleSnapshot is {ready:[], doing:[T1,T2], done:[]}
func exampleSnapshot() Snapshot {
	return FromColumns([]int{ready, doing, done}, map[int][]*models.Task{
		doing: {
			{ID: 1, Title: "T1"},
			{ID: 2, Title: "T2"},
		},
	})
}

func ids(tasks []*models.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

// assertConsistent checks that every task sits in exactly one column, names
// that column as its owner, and has a dense position
func assertConsistent(t *testing.T, s Snapshot, wantTasks int) {
	t.Helper()
	seen := map[int]bool{}
	for _, colID := range s.ColumnIDs() {
		for i, task := range s.Column(colID) {
			require.False(t, seen[task.ID], "task %d appears twice", task.ID)
			seen[task.ID] = true
			assert.Equal(t, colID, task.ColumnID, "task %d owner", task.ID)
			assert.Equal(t, i, task.Position, "task %d position", task.ID)
		}
	}
	assert.Len(t, seen, wantTasks)
	assert.Equal(t, wantTasks, s.Len())
}

// ============================================================================
// READ TESTS
// ============================================================================

func TestColumn_UnknownIsEmpty(t *testing.T) {
	s := exampleSnapshot()

	got := s.Column(99)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = s.Column(ready)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestColumn_CallerCopy(t *testing.T) {
	s := exampleSnapshot()

	list := s.Column(doing)
	list[0] = &models.Task{ID: 42}

	assert.Equal(t, []int{1, 2}, ids(s.Column(doing)))
}

func TestNewSnapshot_FromBoard(t *testing.T) {
	b := &models.Board{
		Columns: []*models.Column{{ID: 5, Name: "A"}, {ID: 6, Name: "B"}},
		Tasks: map[int][]*models.Task{
			6: {{ID: 10, ColumnID: 6, Position: 4}},
		},
	}

	s := NewSnapshot(b)
	b.Tasks[6][0].Title = "mutated later"

	assert.Equal(t, []int{5, 6}, s.ColumnIDs())
	task, idx, ok := s.Find(10)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, task.Position, "positions are normalized")
	assert.Empty(t, task.Title)
}

// ============================================================================
// MOVE TESTS
// ============================================================================

func TestApplyMove_ReorderWithinColumn(t *testing.T) {
	s := exampleSnapshot()

	next, err := s.ApplyMove(1, doing, doing, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1}, ids(next.Column(doing)))
	assert.Empty(t, next.Column(ready))
	assert.Empty(t, next.Column(done))
	assertConsistent(t, next, 2)
}

func TestApplyMove_ToEmptyColumn(t *testing.T) {
	s := exampleSnapshot()

	next, err := s.ApplyMove(1, doing, done, len(s.Column(done)))
	require.NoError(t, err)

	assert.Equal(t, []int{2}, ids(next.Column(doing)))
	assert.Equal(t, []int{1}, ids(next.Column(done)))
	moved, _, ok := next.Find(1)
	require.True(t, ok)
	assert.Equal(t, done, moved.ColumnID)
	assertConsistent(t, next, 2)
}

func TestApplyMove_ClampsIndex(t *testing.T) {
	s := exampleSnapshot()

	next, err := s.ApplyMove(2, doing, ready, 50)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(next.Column(ready)))

	next, err = next.ApplyMove(1, doing, ready, -3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(next.Column(ready)))
}

func TestApplyMove_LeavesReceiverUntouched(t *testing.T) {
	s := exampleSnapshot()
	before := s.Column(doing)
	beforeCopy := make([]models.Task, len(before))
	for i, task := range before {
		beforeCopy[i] = *task
	}

	_, err := s.ApplyMove(1, doing, done, 0)
	require.NoError(t, err)

	after := s.Column(doing)
	require.Len(t, after, len(beforeCopy))
	for i, task := range after {
		if diff := cmp.Diff(beforeCopy[i], *task); diff != "" {
			t.Errorf("task %d changed (-before +after):\n%s", task.ID, diff)
		}
	}
	assert.Empty(t, s.Column(done))
}

func TestApplyMove_Errors(t *testing.T) {
	s := exampleSnapshot()

	_, err := s.ApplyMove(1, ready, done, 0)
	assert.ErrorIs(t, err, ErrTaskNotInColumn)

	_, err = s.ApplyMove(1, doing, 99, 0)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = s.ApplyMove(1, 99, done, 0)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

// TestApplyMove_RandomSequences checks that no sequence of moves loses or
// duplicates a task, and that same-column moves keep the member set.
func TestApplyMove_RandomSequences(t *testing.T) {
	columns := []int{ready, doing, done, 4}
	tasks := map[int][]*models.Task{}
	total := 0
	for _, col := range columns {
		for i := 0; i < 3+col; i++ {
			total++
			tasks[col] = append(tasks[col], &models.Task{ID: total})
		}
	}
	s := FromColumns(columns, tasks)
	rng := rand.New(rand.NewPCG(1, 2))

	for step := 0; step < 500; step++ {
		src := columns[rng.IntN(len(columns))]
		list := s.Column(src)
		if len(list) == 0 {
			continue
		}
		task := list[rng.IntN(len(list))]
		tgt := columns[rng.IntN(len(columns))]
		idx := rng.IntN(len(s.Column(tgt))+3) - 1

		next, err := s.ApplyMove(task.ID, src, tgt, idx)
		require.NoError(t, err, "step %d", step)

		if src == tgt {
			before := ids(s.Column(src))
			after := ids(next.Column(src))
			require.Len(t, after, len(before))
			slices.Sort(before)
			slices.Sort(after)
			require.Equal(t, before, after, "step %d changed members", step)
		} else {
			require.Len(t, next.Column(src), len(s.Column(src))-1)
			require.Len(t, next.Column(tgt), len(s.Column(tgt))+1)
			require.NotContains(t, ids(next.Column(src)), task.ID)
		}

		moved, _, ok := next.Find(task.ID)
		require.True(t, ok)
		require.Equal(t, tgt, moved.ColumnID)

		assertConsistent(t, next, total)
		s = next
	}
}

// ============================================================================
// UPSERT / REMOVE / EQUAL TESTS
// ============================================================================

func TestUpsert_InsertAndReplace(t *testing.T) {
	s := exampleSnapshot()

	next, err := s.Upsert(&models.Task{ID: 3, Title: "T3", ColumnID: ready, Position: 0})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(next.Column(ready)))

	next, err = next.Upsert(&models.Task{ID: 1, Title: "renamed", ColumnID: doing, Position: 0})
	require.NoError(t, err)
	task, idx, ok := next.Find(1)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "renamed", task.Title)
	assertConsistent(t, next, 3)

	_, err = s.Upsert(&models.Task{ID: 4, ColumnID: 99})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestRemove(t *testing.T) {
	s := exampleSnapshot()

	next := s.Remove(1)
	assert.Equal(t, []int{2}, ids(next.Column(doing)))
	assertConsistent(t, next, 1)

	assert.True(t, s.Remove(42).Equal(s))
}

func TestEqual(t *testing.T) {
	a := exampleSnapshot()
	b := exampleSnapshot()
	assert.True(t, a.Equal(b))

	moved, err := a.ApplyMove(1, doing, doing, 1)
	require.NoError(t, err)
	assert.False(t, a.Equal(moved))

	back, err := moved.ApplyMove(1, doing, doing, 0)
	require.NoError(t, err)
	assert.True(t, a.Equal(back))
}
