package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/models"
)

// SetupTestDB creates an in-memory database with the real migrations applied.
// Nothing is seeded; use SeedTestDB for the default board.
func SetupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := database.Migrate(db.DB); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// SetupSeededTestDB is SetupTestDB plus the default columns and starter task
// a fresh data directory gets.
func SetupSeededTestDB(t *testing.T) *database.Repository {
	t.Helper()
	repo := SetupTestDB(t)
	if err := database.Seed(context.Background(), repo.DB()); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}
	return repo
}

// CreateTestColumn creates a column and returns it
func CreateTestColumn(t *testing.T, repo database.ColumnRepository, name string) *models.Column {
	t.Helper()
	col, err := repo.CreateColumn(context.Background(), name, "")
	if err != nil {
		t.Fatalf("Failed to create column %q: %v", name, err)
	}
	return col
}

// CreateTestTask creates a task at the end of a column and returns it
func CreateTestTask(t *testing.T, repo database.TaskWriter, columnID int, title string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), title, columnID)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}

// CreateTestLabel creates a label and returns it
func CreateTestLabel(t *testing.T, repo database.LabelWriter, name, color string) *models.Label {
	t.Helper()
	label, err := repo.CreateLabel(context.Background(), name, color)
	if err != nil {
		t.Fatalf("Failed to create label %q: %v", name, err)
	}
	return label
}
