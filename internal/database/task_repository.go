package database

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/veyr/internal/models"
)

const taskFields = "t.id, t.title, t.column_id, t.position, t.created_at, t.updated_at"

// TaskRepo handles pure data access for tasks.
// Every write that changes column membership or order renumbers the
// affected columns, so persisted positions stay dense and zero-based.
type TaskRepo struct {
	db *sqlx.DB
}

// TaskPatch lists the task fields to change; nil means unchanged.
// A ColumnID or Position change is applied as a move.
type TaskPatch struct {
	Title    *string
	ColumnID *int
	Position *int
}

// ============================================================================
// CRUD OPERATIONS
// ============================================================================

// CreateTask appends a new task to the end of the column
func (r *TaskRepo) CreateTask(ctx context.Context, title string, columnID int) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := columnExists(ctx, tx, columnID); err != nil {
			return err
		}

		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks WHERE column_id = ?", columnID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			"INSERT INTO tasks (title, column_id, position) VALUES (?, ?, ?)",
			title, columnID, count,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		task, err = getTask(ctx, tx, int(id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID, including its labels
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	task, err := getTask(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if err := loadLabels(ctx, r.db, []*models.Task{task}); err != nil {
		return nil, fmt.Errorf("failed to load labels for task %d: %w", id, err)
	}
	return task, nil
}

// ListTasks returns every task, ordered by column position then task position
func (r *TaskRepo) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks := []*models.Task{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT `+taskFields+`
		 FROM tasks t
		 INNER JOIN columns c ON c.id = t.column_id
		 ORDER BY c.position, c.id, t.position, t.id`)
	if err != nil {
		return nil, err
	}

	densePositions(tasks)

	if err := loadLabels(ctx, r.db, tasks); err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	return tasks, nil
}

// ListTasksByColumn returns the tasks of one column in order
func (r *TaskRepo) ListTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error) {
	tasks := []*models.Task{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT `+taskFields+`
		 FROM tasks t
		 WHERE t.column_id = ?
		 ORDER BY t.position, t.id`,
		columnID,
	)
	if err != nil {
		return nil, err
	}

	densePositions(tasks)

	if err := loadLabels(ctx, r.db, tasks); err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	return tasks, nil
}

// CountTasksByColumn returns the number of tasks in a specific column
func (r *TaskRepo) CountTasksByColumn(ctx context.Context, columnID int) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks WHERE column_id = ?", columnID); err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateTask applies a partial update. Unspecified fields are unchanged.
func (r *TaskRepo) UpdateTask(ctx context.Context, id int, patch TaskPatch) (*models.Task, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			update := builder.Update("tasks").
				Set("title", *patch.Title).
				Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
				Where(squirrel.Eq{"id": id})
			if _, err := execBuilder(ctx, tx, update); err != nil {
				return err
			}
		}

		if patch.ColumnID == nil && patch.Position == nil {
			return nil
		}

		columnID := task.ColumnID
		if patch.ColumnID != nil {
			columnID = *patch.ColumnID
		}
		position := models.AppendPosition
		if patch.Position != nil {
			position = *patch.Position
		} else if columnID == task.ColumnID {
			// column unchanged and no position given: keep the current slot
			position = task.Position
		}
		return moveInTx(ctx, tx, task, columnID, position)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return r.GetTask(ctx, id)
}

// MoveTask places a task at position within columnID, shifting siblings.
// A negative or out-of-range position appends to the end of the column.
func (r *TaskRepo) MoveTask(ctx context.Context, id, columnID, position int) (*models.Task, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}
		return moveInTx(ctx, tx, task, columnID, position)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to move task %d: %w", id, err)
	}
	return r.GetTask(ctx, id)
}

// DeleteTask removes a task and closes the gap it leaves in its column.
// Label associations and time entries cascade.
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
			return err
		}

		remaining, err := columnTaskIDs(ctx, tx, task.ColumnID, 0)
		if err != nil {
			return err
		}
		return renumber(ctx, tx, task.ColumnID, remaining)
	})
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

func getTask(ctx context.Context, q sqlx.QueryerContext, id int) (*models.Task, error) {
	var task models.Task
	err := sqlx.GetContext(ctx, q, &task, "SELECT "+taskFields+" FROM tasks t WHERE t.id = ?", id)
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return &task, nil
}

func columnExists(ctx context.Context, q sqlx.QueryerContext, columnID int) error {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, "SELECT COUNT(*) FROM columns WHERE id = ?", columnID); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("column %d: %w", columnID, models.ErrNotFound)
	}
	return nil
}

// columnTaskIDs returns the ordered task IDs of a column, skipping excludeID
func columnTaskIDs(ctx context.Context, q sqlx.QueryerContext, columnID, excludeID int) ([]int, error) {
	ids := []int{}
	err := sqlx.SelectContext(ctx, q, &ids,
		"SELECT id FROM tasks WHERE column_id = ? AND id != ? ORDER BY position, id",
		columnID, excludeID,
	)
	return ids, err
}

// moveInTx inserts task into columnID at position and renumbers the
// target column and, for cross-column moves, the source column.
func moveInTx(ctx context.Context, tx *sqlx.Tx, task *models.Task, columnID, position int) error {
	if err := columnExists(ctx, tx, columnID); err != nil {
		return err
	}

	target, err := columnTaskIDs(ctx, tx, columnID, task.ID)
	if err != nil {
		return err
	}
	if position < 0 || position > len(target) {
		position = len(target)
	}
	target = slices.Insert(target, position, task.ID)

	if err := renumber(ctx, tx, columnID, target); err != nil {
		return err
	}

	if task.ColumnID == columnID {
		return nil
	}

	source, err := columnTaskIDs(ctx, tx, task.ColumnID, task.ID)
	if err != nil {
		return err
	}
	return renumber(ctx, tx, task.ColumnID, source)
}

// renumber assigns dense positions to ids within columnID, writing only rows that change
func renumber(ctx context.Context, tx *sqlx.Tx, columnID int, ids []int) error {
	for pos, id := range ids {
		_, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ? AND (column_id != ? OR position != ?)`,
			columnID, pos, id, columnID, pos,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// densePositions rewrites Position as the index within each column run.
// tasks must already be grouped by column.
func densePositions(tasks []*models.Task) {
	pos := 0
	for i, t := range tasks {
		if i > 0 && tasks[i-1].ColumnID != t.ColumnID {
			pos = 0
		}
		t.Position = pos
		pos++
	}
}
