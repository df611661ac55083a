package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/veyr/internal/models"
)

func TestTimeEntries(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	col := createTestColumn(t, repo, "A")
	task := createTestTask(t, repo, col.ID, "a")

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	entry, err := repo.CreateTimeEntry(ctx, task.ID, start, start.Add(25*time.Minute))
	if err != nil {
		t.Fatalf("CreateTimeEntry() error = %v", err)
	}
	if entry.DurationSeconds != 1500 {
		t.Errorf("DurationSeconds = %d, want 1500", entry.DurationSeconds)
	}
	if !entry.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", entry.StartTime, start)
	}

	if _, err := repo.CreateTimeEntry(ctx, task.ID, start.Add(time.Hour), start.Add(2*time.Hour)); err != nil {
		t.Fatalf("CreateTimeEntry() error = %v", err)
	}

	entries, err := repo.TimeEntriesForTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("TimeEntriesForTask() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != entry.ID {
		t.Errorf("entries not ordered by start time")
	}
}

func TestTimeEntries_UnknownTask(t *testing.T) {
	repo := setupTestDB(t)
	now := time.Now()

	_, err := repo.CreateTimeEntry(context.Background(), 7, now, now)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("CreateTimeEntry() error = %v, want ErrNotFound", err)
	}
}
