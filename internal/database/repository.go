package database

import (
	"github.com/jmoiron/sqlx"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ColumnRepo
	*TaskRepo
	*LabelRepo
	*TimeEntryRepo

	db *sqlx.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		ColumnRepo:    &ColumnRepo{db: db},
		TaskRepo:      &TaskRepo{db: db},
		LabelRepo:     &LabelRepo{db: db},
		TimeEntryRepo: &TimeEntryRepo{db: db},
		db:            db,
	}
}

// Close closes the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// DB returns the underlying connection
func (r *Repository) DB() *sqlx.DB {
	return r.db
}
