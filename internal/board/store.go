package board

import "github.com/thenoetrevino/veyr/internal/models"

// Store holds the snapshot currently on screen. It is owned by the UI
// goroutine and is not safe for concurrent use.
type Store struct {
	current Snapshot
}

// NewStore creates a store showing s
func NewStore(s Snapshot) *Store {
	return &Store{current: s}
}

// Current returns the snapshot on screen
func (st *Store) Current() Snapshot {
	return st.current
}

// Replace swaps in s and returns the snapshot it replaced
func (st *Store) Replace(s Snapshot) Snapshot {
	prev := st.current
	st.current = s
	return prev
}

// ApplyMove applies a move to the current snapshot and returns the previous
// one for rollback. On error the store is unchanged.
func (st *Store) ApplyMove(taskID, sourceColumnID, targetColumnID, targetIndex int) (Snapshot, error) {
	next, err := st.current.ApplyMove(taskID, sourceColumnID, targetColumnID, targetIndex)
	if err != nil {
		return st.current, err
	}
	return st.Replace(next), nil
}

// UpsertTask inserts or replaces a task and returns the previous snapshot
func (st *Store) UpsertTask(task *models.Task) (Snapshot, error) {
	next, err := st.current.Upsert(task)
	if err != nil {
		return st.current, err
	}
	return st.Replace(next), nil
}

// RemoveTask removes a task and returns the previous snapshot
func (st *Store) RemoveTask(taskID int) Snapshot {
	return st.Replace(st.current.Remove(taskID))
}
