package models

import "time"

// Task represents a single task in the kanban board.
// A task is owned by exactly one column; Position is its zero-based index there.
type Task struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	ColumnID  int       `db:"column_id" json:"column_id"`
	Position  int       `db:"position" json:"position"`
	Labels    []*Label  `db:"-" json:"labels,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// GetID returns the task ID (used by quiet CLI output)
func (t *Task) GetID() int { return t.ID }

// Clone returns a copy of the task that shares no mutable state with t.
// The label slice is copied; the labels themselves are treated as immutable.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Labels != nil {
		c.Labels = make([]*Label, len(t.Labels))
		copy(c.Labels, t.Labels)
	}
	return &c
}

// HasLabel reports whether the label is attached to the task
func (t *Task) HasLabel(labelID int) bool {
	for _, l := range t.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}

// TimeEntry records time spent on a task
type TimeEntry struct {
	ID              int       `db:"id" json:"id"`
	TaskID          int       `db:"task_id" json:"task_id"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	DurationSeconds int       `db:"duration_in_seconds" json:"duration_in_seconds"`
}

// GetID returns the entry ID (used by quiet CLI output)
func (e *TimeEntry) GetID() int { return e.ID }

// Duration returns the recorded duration
func (e *TimeEntry) Duration() time.Duration {
	return time.Duration(e.DurationSeconds) * time.Second
}
