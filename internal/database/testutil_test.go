package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/veyr/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the real migrations applied.
// Nothing is seeded.
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db.DB); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewRepository(db)
}

// createTestColumn creates a column and returns it
func createTestColumn(t *testing.T, repo *Repository, name string) *models.Column {
	t.Helper()
	col, err := repo.CreateColumn(context.Background(), name, "")
	if err != nil {
		t.Fatalf("Failed to create column %q: %v", name, err)
	}
	return col
}

// createTestTask creates a task at the end of a column and returns it
func createTestTask(t *testing.T, repo *Repository, columnID int, title string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), title, columnID)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}

// titlesInColumn returns the titles of a column's tasks in order and
// verifies that their positions are dense
func titlesInColumn(t *testing.T, repo *Repository, columnID int) []string {
	t.Helper()
	tasks, err := repo.ListTasksByColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}

	// check what is stored, not what the read path derives
	var stored []int
	if err := repo.db.SelectContext(context.Background(), &stored,
		"SELECT position FROM tasks WHERE column_id = ? ORDER BY position", columnID); err != nil {
		t.Fatalf("Failed to read positions: %v", err)
	}
	for i, p := range stored {
		if p != i {
			t.Fatalf("Column %d has non-dense positions %v", columnID, stored)
		}
	}
	return titles
}
