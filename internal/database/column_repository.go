package database

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/veyr/internal/models"
)

const columnFields = "id, name, description, position, created_at, updated_at"

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sqlx.DB
}

// ColumnPatch lists the column fields to change; nil means unchanged
type ColumnPatch struct {
	Name        *string
	Description *string
}

// CreateColumn appends a new column after the current last column
func (r *ColumnRepo) CreateColumn(ctx context.Context, name, description string) (*models.Column, error) {
	var col models.Column
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var next int
		if err := tx.GetContext(ctx, &next, "SELECT COALESCE(MAX(position) + 1, 0) FROM columns"); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			"INSERT INTO columns (name, description, position) VALUES (?, ?, ?)",
			name, description, next,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		return tx.GetContext(ctx, &col, "SELECT "+columnFields+" FROM columns WHERE id = ?", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return &col, nil
}

// ListColumns returns every column ordered by position
func (r *ColumnRepo) ListColumns(ctx context.Context) ([]*models.Column, error) {
	columns := []*models.Column{}
	err := r.db.SelectContext(ctx, &columns,
		"SELECT "+columnFields+" FROM columns ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// GetColumn retrieves a single column by ID
func (r *ColumnRepo) GetColumn(ctx context.Context, id int) (*models.Column, error) {
	var col models.Column
	err := r.db.GetContext(ctx, &col, "SELECT "+columnFields+" FROM columns WHERE id = ?", id)
	if err != nil {
		return nil, notFound(err, "column", id)
	}
	return &col, nil
}

// UpdateColumn applies a partial update and returns the stored column
func (r *ColumnRepo) UpdateColumn(ctx context.Context, id int, patch ColumnPatch) (*models.Column, error) {
	update := builder.Update("columns").
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id})
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}

	res, err := execBuilder(ctx, r.db, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update column %d: %w", id, err)
	}
	if ok, err := rowsAffected(res); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("column %d: %w", id, models.ErrNotFound)
	}

	return r.GetColumn(ctx, id)
}
