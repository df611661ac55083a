// Package board holds the state the board UI renders: which tasks each
// column owns, in order.
//
// A Snapshot is immutable. Every change produces a new Snapshot and leaves
// the receiver untouched, so a caller that keeps the previous value can
// restore it after a failed write.
package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/veyr/internal/models"
)

// Snapshot maps column IDs to their ordered tasks.
// Tasks held by a snapshot are never mutated; a change copies the tasks it
// touches and shares everything else with the snapshot it came from.
type Snapshot struct {
	order   []int
	columns map[int][]*models.Task
}

// NewSnapshot builds a snapshot from a loaded board. The board's tasks are
// copied, so later changes to board do not leak into the snapshot.
func NewSnapshot(b *models.Board) Snapshot {
	order := make([]int, 0, len(b.Columns))
	for _, col := range b.Columns {
		order = append(order, col.ID)
	}
	return FromColumns(order, b.Tasks)
}

// FromColumns builds a snapshot from column IDs in display order and their
// tasks. Columns missing from tasks are empty. Positions and owning column
// are normalized to the list each task is in.
func FromColumns(order []int, tasks map[int][]*models.Task) Snapshot {
	s := Snapshot{
		order:   slices.Clone(order),
		columns: make(map[int][]*models.Task, len(order)),
	}
	for _, id := range order {
		list := make([]*models.Task, len(tasks[id]))
		for i, t := range tasks[id] {
			c := t.Clone()
			c.ColumnID = id
			c.Position = i
			list[i] = c
		}
		s.columns[id] = list
	}
	return s
}

// Column returns the ordered tasks of a column. It never fails: unknown or
// empty columns yield an empty slice. The slice is the caller's to keep;
// the tasks in it must be treated as read-only.
func (s Snapshot) Column(columnID int) []*models.Task {
	list := s.columns[columnID]
	out := make([]*models.Task, len(list))
	copy(out, list)
	return out
}

// ColumnIDs returns the column IDs in display order
func (s Snapshot) ColumnIDs() []int {
	return slices.Clone(s.order)
}

// HasColumn reports whether the snapshot holds the column
func (s Snapshot) HasColumn(columnID int) bool {
	_, ok := s.columns[columnID]
	return ok
}

// Len returns the number of tasks across all columns
func (s Snapshot) Len() int {
	n := 0
	for _, list := range s.columns {
		n += len(list)
	}
	return n
}

// Find returns the task and its index within its column
func (s Snapshot) Find(taskID int) (*models.Task, int, bool) {
	for _, id := range s.order {
		for i, t := range s.columns[id] {
			if t.ID == taskID {
				return t, i, true
			}
		}
	}
	return nil, -1, false
}

// ApplyMove removes the task from the source column and inserts it into the
// target column at targetIndex, clamped to the target's bounds after the
// removal. Both touched columns are renumbered densely. When source and
// target are the same column this is a reorder.
func (s Snapshot) ApplyMove(taskID, sourceColumnID, targetColumnID, targetIndex int) (Snapshot, error) {
	source, ok := s.columns[sourceColumnID]
	if !ok {
		return s, fmt.Errorf("source column %d: %w", sourceColumnID, ErrUnknownColumn)
	}
	if _, ok := s.columns[targetColumnID]; !ok {
		return s, fmt.Errorf("target column %d: %w", targetColumnID, ErrUnknownColumn)
	}

	from := slices.IndexFunc(source, func(t *models.Task) bool { return t.ID == taskID })
	if from < 0 {
		return s, fmt.Errorf("task %d in column %d: %w", taskID, sourceColumnID, ErrTaskNotInColumn)
	}

	moved := source[from].Clone()
	moved.ColumnID = targetColumnID

	// slices.Delete would write into the shared backing array
	newSource := make([]*models.Task, 0, len(source))
	newSource = append(newSource, source[:from]...)
	newSource = append(newSource, source[from+1:]...)

	next := s.withColumns()
	if sourceColumnID == targetColumnID {
		next.columns[sourceColumnID] = renumber(insertAt(newSource, targetIndex, moved))
		return next, nil
	}

	target := slices.Clone(s.columns[targetColumnID])
	next.columns[sourceColumnID] = renumber(newSource)
	next.columns[targetColumnID] = renumber(insertAt(target, targetIndex, moved))
	return next, nil
}

// Upsert returns a snapshot with task placed at its Position in its column,
// replacing any task with the same ID. Used for created tasks and title
// edits.
func (s Snapshot) Upsert(task *models.Task) (Snapshot, error) {
	if _, ok := s.columns[task.ColumnID]; !ok {
		return s, fmt.Errorf("column %d: %w", task.ColumnID, ErrUnknownColumn)
	}

	next := s.withColumns()
	if cur, _, ok := s.Find(task.ID); ok {
		next.columns[cur.ColumnID] = renumber(without(s.columns[cur.ColumnID], task.ID))
	}
	list := slices.Clone(next.columns[task.ColumnID])
	next.columns[task.ColumnID] = renumber(insertAt(list, task.Position, task.Clone()))
	return next, nil
}

// Remove returns a snapshot without the task. Removing an unknown task
// returns s unchanged.
func (s Snapshot) Remove(taskID int) Snapshot {
	cur, _, ok := s.Find(taskID)
	if !ok {
		return s
	}
	next := s.withColumns()
	next.columns[cur.ColumnID] = renumber(without(s.columns[cur.ColumnID], taskID))
	return next
}

// Equal reports whether two snapshots hold the same columns with the same
// tasks in the same order
func (s Snapshot) Equal(other Snapshot) bool {
	if !slices.Equal(s.order, other.order) || len(s.columns) != len(other.columns) {
		return false
	}
	for id, list := range s.columns {
		olist, ok := other.columns[id]
		if !ok || len(list) != len(olist) {
			return false
		}
		for i := range list {
			if !sameTask(list[i], olist[i]) {
				return false
			}
		}
	}
	return true
}

// withColumns returns a copy of s whose column map may be written
func (s Snapshot) withColumns() Snapshot {
	columns := make(map[int][]*models.Task, len(s.columns))
	for id, list := range s.columns {
		columns[id] = list
	}
	return Snapshot{order: s.order, columns: columns}
}

// insertAt inserts t into list at i clamped to [0, len(list)]. list must
// not share its backing array with any snapshot.
func insertAt(list []*models.Task, i int, t *models.Task) []*models.Task {
	i = max(0, min(i, len(list)))
	return slices.Insert(list, i, t)
}

func without(list []*models.Task, taskID int) []*models.Task {
	out := make([]*models.Task, 0, len(list))
	for _, t := range list {
		if t.ID != taskID {
			out = append(out, t)
		}
	}
	return out
}

// renumber gives list dense positions, copying only tasks whose position
// changes. list must be freshly allocated.
func renumber(list []*models.Task) []*models.Task {
	for i, t := range list {
		if t.Position != i {
			c := t.Clone()
			c.Position = i
			list[i] = c
		}
	}
	return list
}

func sameTask(a, b *models.Task) bool {
	if a.ID != b.ID || a.Title != b.Title || a.ColumnID != b.ColumnID || a.Position != b.Position {
		return false
	}
	if len(a.Labels) != len(b.Labels) {
		return false
	}
	for i := range a.Labels {
		if a.Labels[i].ID != b.Labels[i].ID {
			return false
		}
	}
	return true
}
