package models

import "time"

// Label represents a tag that can be applied to tasks
type Label struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"` // Hex color code (e.g., "#7D56F4")
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// GetID returns the label ID (used by quiet CLI output)
func (l *Label) GetID() int { return l.ID }

// TaskLabel is the association record between a task and a label
type TaskLabel struct {
	ID        int       `db:"id" json:"id"`
	TaskID    int       `db:"task_id" json:"task_id"`
	LabelID   int       `db:"label_id" json:"label_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GetID returns the association ID (used by quiet CLI output)
func (tl *TaskLabel) GetID() int { return tl.ID }
