// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DBFileName is the name of the database file inside the data directory
const DBFileName = "board.db"

// InitDB opens the board database inside dataDir, applies pragmas and
// migrations, and seeds the default columns on first start.
func InitDB(ctx context.Context, dataDir string) (*sqlx.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := Open(ctx, filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, err
	}

	if err := Migrate(db.DB); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := Seed(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return db, nil
}

// Open opens a SQLite database at path with the pragmas the board relies on.
// It does not run migrations.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection; it also keeps
	// ":memory:" databases on one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		// required for CASCADE deletions
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			slog.Error("failed to apply pragma", "pragma", p, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

func closeQuietly(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
