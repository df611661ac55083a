package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/veyr/internal/models"
)

// builder generates SQLite-flavoured statements for the dynamic queries
// (partial updates, IN lists).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// notFound maps sql.ErrNoRows to models.ErrNotFound, leaving other errors untouched
func notFound(err error, what string, id int) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", what, id, models.ErrNotFound)
	}
	return err
}

// execBuilder runs a squirrel statement against db or tx
func execBuilder(ctx context.Context, ext sqlx.ExecerContext, b squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return ext.ExecContext(ctx, query, args...)
}

// selectBuilder runs a squirrel select and scans all rows into dest
func selectBuilder(ctx context.Context, q sqlx.QueryerContext, dest interface{}, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return sqlx.SelectContext(ctx, q, dest, query, args...)
}

// rowsAffected reports whether a write touched at least one row
func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
