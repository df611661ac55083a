package database

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/veyr/internal/models"
)

const labelFields = "id, name, color, created_at, updated_at"

// LabelRepo handles label and task-label association storage
type LabelRepo struct {
	db *sqlx.DB
}

// LabelPatch lists the label fields to change; nil means unchanged
type LabelPatch struct {
	Name  *string
	Color *string
}

// ============================================================================
// Label Operations
// ============================================================================

// CreateLabel creates a new label
func (r *LabelRepo) CreateLabel(ctx context.Context, name, color string) (*models.Label, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO labels (name, color) VALUES (?, ?)", name, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetLabel(ctx, int(id))
}

// GetLabel retrieves a label by ID
func (r *LabelRepo) GetLabel(ctx context.Context, id int) (*models.Label, error) {
	var label models.Label
	if err := r.db.GetContext(ctx, &label, "SELECT "+labelFields+" FROM labels WHERE id = ?", id); err != nil {
		return nil, notFound(err, "label", id)
	}
	return &label, nil
}

// ListLabels returns every label ordered by name
func (r *LabelRepo) ListLabels(ctx context.Context) ([]*models.Label, error) {
	labels := []*models.Label{}
	if err := r.db.SelectContext(ctx, &labels, "SELECT "+labelFields+" FROM labels ORDER BY name, id"); err != nil {
		return nil, err
	}
	return labels, nil
}

// UpdateLabel applies a partial update and returns the stored label
func (r *LabelRepo) UpdateLabel(ctx context.Context, id int, patch LabelPatch) (*models.Label, error) {
	update := builder.Update("labels").
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Color != nil {
		update = update.Set("color", *patch.Color)
	}

	res, err := execBuilder(ctx, r.db, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update label %d: %w", id, err)
	}
	if ok, err := rowsAffected(res); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("label %d: %w", id, models.ErrNotFound)
	}
	return r.GetLabel(ctx, id)
}

// DeleteLabel removes a label (cascade removes task associations)
func (r *LabelRepo) DeleteLabel(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM labels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete label %d: %w", id, err)
	}
	if ok, err := rowsAffected(res); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("label %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// ============================================================================
// Task-Label Associations
// ============================================================================

// AttachLabel associates a label with a task and returns the association record
func (r *LabelRepo) AttachLabel(ctx context.Context, taskID, labelID int) (*models.TaskLabel, error) {
	var tl models.TaskLabel
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := getTask(ctx, tx, taskID); err != nil {
			return err
		}
		var exists int
		if err := tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM labels WHERE id = ?", labelID); err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("label %d: %w", labelID, models.ErrNotFound)
		}

		var attached int
		if err := tx.GetContext(ctx, &attached,
			"SELECT COUNT(*) FROM task_labels WHERE task_id = ? AND label_id = ?", taskID, labelID); err != nil {
			return err
		}
		if attached > 0 {
			return models.ErrDuplicateLabel
		}

		res, err := tx.ExecContext(ctx, "INSERT INTO task_labels (task_id, label_id) VALUES (?, ?)", taskID, labelID)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &tl,
			"SELECT id, task_id, label_id, created_at FROM task_labels WHERE id = ?", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach label %d to task %d: %w", labelID, taskID, err)
	}
	return &tl, nil
}

// DetachLabel removes one label from one task. It reports whether an
// association existed.
func (r *LabelRepo) DetachLabel(ctx context.Context, taskID, labelID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM task_labels WHERE task_id = ? AND label_id = ?", taskID, labelID)
	if err != nil {
		return false, fmt.Errorf("failed to detach label %d from task %d: %w", labelID, taskID, err)
	}
	return rowsAffected(res)
}

// LabelsForTask returns the labels attached to a task, ordered by name
func (r *LabelRepo) LabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error) {
	labels := []*models.Label{}
	err := r.db.SelectContext(ctx, &labels,
		`SELECT l.id, l.name, l.color, l.created_at, l.updated_at
		 FROM labels l
		 INNER JOIN task_labels tl ON l.id = tl.label_id
		 WHERE tl.task_id = ?
		 ORDER BY l.name, l.id`,
		taskID,
	)
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// taskLabelRow is one label joined with the task it is attached to
type taskLabelRow struct {
	TaskID int `db:"task_id"`
	models.Label
}

// loadLabels fills Labels on every task with one query
func loadLabels(ctx context.Context, q sqlx.QueryerContext, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}

	query := builder.
		Select("tl.task_id", "l.id", "l.name", "l.color", "l.created_at", "l.updated_at").
		From("task_labels tl").
		Join("labels l ON l.id = tl.label_id").
		Where(squirrel.Eq{"tl.task_id": ids}).
		OrderBy("l.name", "l.id")

	var rows []taskLabelRow
	if err := selectBuilder(ctx, q, &rows, query); err != nil {
		return err
	}

	byTask := make(map[int][]*models.Label, len(tasks))
	for i := range rows {
		label := rows[i].Label
		byTask[rows[i].TaskID] = append(byTask[rows[i].TaskID], &label)
	}
	for _, t := range tasks {
		t.Labels = byTask[t.ID]
	}
	return nil
}
