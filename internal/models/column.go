package models

import "time"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Columns render left to right in Position order
type Column struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Position    int       `db:"position" json:"position"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// GetID returns the column ID (used by quiet CLI output)
func (c *Column) GetID() int { return c.ID }
