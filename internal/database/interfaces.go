// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/veyr/internal/models"
)

// ColumnRepository combines all column-related operations.
type ColumnRepository interface {
	CreateColumn(ctx context.Context, name, description string) (*models.Column, error)
	ListColumns(ctx context.Context) ([]*models.Column, error)
	GetColumn(ctx context.Context, id int) (*models.Column, error)
	UpdateColumn(ctx context.Context, id int, patch ColumnPatch) (*models.Column, error)
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	ListTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error)
	CountTasksByColumn(ctx context.Context, columnID int) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, title string, columnID int) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, patch TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// TaskMover defines operations for moving tasks between columns and within columns.
type TaskMover interface {
	MoveTask(ctx context.Context, id, columnID, position int) (*models.Task, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
	TaskMover
}

// LabelReader defines read operations for labels.
type LabelReader interface {
	GetLabel(ctx context.Context, id int) (*models.Label, error)
	ListLabels(ctx context.Context) ([]*models.Label, error)
	LabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error)
}

// LabelWriter defines write operations for labels.
type LabelWriter interface {
	CreateLabel(ctx context.Context, name, color string) (*models.Label, error)
	UpdateLabel(ctx context.Context, id int, patch LabelPatch) (*models.Label, error)
	DeleteLabel(ctx context.Context, id int) error
}

// TaskLabelManager defines operations for managing task-label associations.
type TaskLabelManager interface {
	AttachLabel(ctx context.Context, taskID, labelID int) (*models.TaskLabel, error)
	DetachLabel(ctx context.Context, taskID, labelID int) (bool, error)
}

// LabelRepository combines all label-related operations.
type LabelRepository interface {
	LabelReader
	LabelWriter
	TaskLabelManager
}

// TimeEntryRepository stores time tracked against tasks.
type TimeEntryRepository interface {
	CreateTimeEntry(ctx context.Context, taskID int, start, end time.Time) (*models.TimeEntry, error)
	TimeEntriesForTask(ctx context.Context, taskID int) ([]*models.TimeEntry, error)
}

// DataStore defines the unified interface for all data operations.
// It is composed of the smaller domain interfaces so consumers can depend
// on only what they use.
type DataStore interface {
	ColumnRepository
	TaskRepository
	LabelRepository
	TimeEntryRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
