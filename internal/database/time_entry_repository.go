package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/veyr/internal/models"
)

// TimeEntryRepo stores time tracked against tasks
type TimeEntryRepo struct {
	db *sqlx.DB
}

// CreateTimeEntry records a start/end pair for a task
func (r *TimeEntryRepo) CreateTimeEntry(ctx context.Context, taskID int, start, end time.Time) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := getTask(ctx, tx, taskID); err != nil {
			return err
		}

		seconds := int(end.Sub(start) / time.Second)
		res, err := tx.ExecContext(ctx,
			`INSERT INTO time_entries (task_id, start_time, end_time, duration_in_seconds)
			 VALUES (?, ?, ?, ?)`,
			taskID, start.UTC(), end.UTC(), seconds,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &entry,
			`SELECT id, task_id, start_time, end_time, duration_in_seconds
			 FROM time_entries WHERE id = ?`, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record time for task %d: %w", taskID, err)
	}
	return &entry, nil
}

// TimeEntriesForTask returns the entries of a task, oldest first
func (r *TimeEntryRepo) TimeEntriesForTask(ctx context.Context, taskID int) ([]*models.TimeEntry, error) {
	entries := []*models.TimeEntry{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT id, task_id, start_time, end_time, duration_in_seconds
		 FROM time_entries
		 WHERE task_id = ?
		 ORDER BY start_time, id`,
		taskID,
	)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
