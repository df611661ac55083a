package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/veyr/internal/app"
	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/models"
	"github.com/thenoetrevino/veyr/internal/testutil"
)

// SetupCLITest creates a seeded in-memory board and returns both the
// repository and an App over it.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupSeededTestDB(t)
	return repo, app.New(repo)
}

// FirstColumn returns the leftmost seeded column
func FirstColumn(t *testing.T, repo *database.Repository) *models.Column {
	t.Helper()
	columns, err := repo.ListColumns(context.Background())
	if err != nil || len(columns) == 0 {
		t.Fatalf("Failed to list seeded columns: %v", err)
	}
	return columns[0]
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, repo *database.Repository, columnID int, title string) int {
	t.Helper()
	return testutil.CreateTestTask(t, repo, columnID, title).ID
}

// CreateTestLabel wraps testutil.CreateTestLabel for CLI tests
func CreateTestLabel(t *testing.T, repo *database.Repository, name, color string) int {
	t.Helper()
	return testutil.CreateTestLabel(t, repo, name, color).ID
}
