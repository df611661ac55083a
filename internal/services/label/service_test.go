package label

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/veyr/internal/models"
	"github.com/thenoetrevino/veyr/internal/testutil"
)

func strPtr(s string) *string { return &s }

// ============================================================================
// CREATE TESTS
// ============================================================================

func TestCreateLabel(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestDB(t))

	label, err := svc.CreateLabel(context.Background(), CreateLabelRequest{
		Name:  "bug",
		Color: "#FF0000",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if label.ID == 0 {
		t.Error("Expected label ID to be set")
	}
	if label.Name != "bug" || label.Color != "#FF0000" {
		t.Errorf("Unexpected label %+v", label)
	}
}

func TestCreateLabel_DefaultColor(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestDB(t))

	label, err := svc.CreateLabel(context.Background(), CreateLabelRequest{Name: "chore"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if label.Color != models.DefaultLabelColor {
		t.Errorf("Expected default color %s, got %s", models.DefaultLabelColor, label.Color)
	}
}

func TestCreateLabel_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestDB(t))

	tests := []struct {
		name string
		req  CreateLabelRequest
		want error
	}{
		{"empty name", CreateLabelRequest{Name: "  "}, ErrEmptyName},
		{"name too long", CreateLabelRequest{Name: strings.Repeat("x", 51)}, ErrNameTooLong},
		{"color without hash", CreateLabelRequest{Name: "a", Color: "FF0000"}, ErrInvalidColor},
		{"short color", CreateLabelRequest{Name: "a", Color: "#FFF"}, ErrInvalidColor},
		{"non-hex color", CreateLabelRequest{Name: "a", Color: "#GGGGGG"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateLabel(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// ============================================================================
// READ / UPDATE / DELETE TESTS
// ============================================================================

func TestListLabels(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	testutil.CreateTestLabel(t, repo, "feature", "#00FF00")
	testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	svc := NewService(repo)

	labels, err := svc.ListLabels(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(labels))
	}
}

func TestGetLabel_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestDB(t))

	_, err := svc.GetLabel(context.Background(), 42)
	if !errors.Is(err, ErrLabelNotFound) {
		t.Errorf("Expected ErrLabelNotFound, got %v", err)
	}
}

func TestUpdateLabel_Partial(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	label := testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	svc := NewService(repo)

	got, err := svc.UpdateLabel(context.Background(), UpdateLabelRequest{
		ID:    label.ID,
		Color: strPtr("#00FF00"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "bug" {
		t.Errorf("Expected name unchanged, got %s", got.Name)
	}
	if got.Color != "#00FF00" {
		t.Errorf("Expected color #00FF00, got %s", got.Color)
	}
}

func TestUpdateLabel_InvalidColor(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	label := testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	svc := NewService(repo)

	_, err := svc.UpdateLabel(context.Background(), UpdateLabelRequest{
		ID:    label.ID,
		Color: strPtr("red"),
	})
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}
}

func TestDeleteLabel(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	label := testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.DeleteLabel(ctx, label.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.DeleteLabel(ctx, label.ID); !errors.Is(err, ErrLabelNotFound) {
		t.Errorf("Expected ErrLabelNotFound on second delete, got %v", err)
	}
}

// ============================================================================
// ATTACH / DETACH TESTS
// ============================================================================

func TestAttachDetachLabel(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	col := testutil.CreateTestColumn(t, repo, "To Do")
	task := testutil.CreateTestTask(t, repo, col.ID, "Write docs")
	bug := testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	docs := testutil.CreateTestLabel(t, repo, "docs", "#0000FF")
	svc := NewService(repo)
	ctx := context.Background()

	tl, err := svc.AttachLabel(ctx, task.ID, bug.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tl.TaskID != task.ID || tl.LabelID != bug.ID {
		t.Errorf("Unexpected association %+v", tl)
	}
	if _, err := svc.AttachLabel(ctx, task.ID, docs.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// detach removes only the named label
	ok, err := svc.DetachLabel(ctx, task.ID, bug.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !ok {
		t.Error("Expected detach to report success")
	}

	labels, err := svc.LabelsForTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(labels) != 1 || labels[0].ID != docs.ID {
		t.Errorf("Expected only docs label to remain, got %+v", labels)
	}

	ok, err = svc.DetachLabel(ctx, task.ID, bug.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Error("Expected second detach to report nothing removed")
	}
}

func TestAttachLabel_Twice(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	col := testutil.CreateTestColumn(t, repo, "To Do")
	task := testutil.CreateTestTask(t, repo, col.ID, "Write docs")
	bug := testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.AttachLabel(ctx, task.ID, bug.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_, err := svc.AttachLabel(ctx, task.ID, bug.ID)
	if !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("Expected ErrAlreadyAttached, got %v", err)
	}
}

func TestAttachLabel_MissingSides(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestDB(t)
	col := testutil.CreateTestColumn(t, repo, "To Do")
	task := testutil.CreateTestTask(t, repo, col.ID, "Write docs")
	bug := testutil.CreateTestLabel(t, repo, "bug", "#FF0000")
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.AttachLabel(ctx, 999, bug.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found for missing task, got %v", err)
	}
	if _, err := svc.AttachLabel(ctx, task.ID, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found for missing label, got %v", err)
	}
	if _, err := svc.AttachLabel(ctx, 0, bug.ID); !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("Expected ErrInvalidTaskID, got %v", err)
	}
}
