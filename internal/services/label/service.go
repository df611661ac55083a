package label

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const maxNameLength = 50

// Service defines all label-related business operations
type Service interface {
	// Read operations
	ListLabels(ctx context.Context) ([]*models.Label, error)
	GetLabel(ctx context.Context, id int) (*models.Label, error)
	LabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error)

	// Write operations
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	UpdateLabel(ctx context.Context, req UpdateLabelRequest) (*models.Label, error)
	DeleteLabel(ctx context.Context, id int) error

	// Task associations
	AttachLabel(ctx context.Context, taskID, labelID int) (*models.TaskLabel, error)
	DetachLabel(ctx context.Context, taskID, labelID int) (bool, error)
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	Name  string
	Color string // Hex color like #FF5733; empty means the default gray
}

// UpdateLabelRequest encapsulates data for updating a label
type UpdateLabelRequest struct {
	ID    int
	Name  *string
	Color *string
}

// service implements Service interface
type service struct {
	repo database.LabelRepository
}

// NewService creates a new label service
func NewService(repo database.LabelRepository) Service {
	return &service{repo: repo}
}

// ListLabels retrieves all labels
func (s *service) ListLabels(ctx context.Context) ([]*models.Label, error) {
	return s.repo.ListLabels(ctx)
}

// GetLabel retrieves a label by ID
func (s *service) GetLabel(ctx context.Context, id int) (*models.Label, error) {
	if id <= 0 {
		return nil, ErrInvalidLabelID
	}
	label, err := s.repo.GetLabel(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return label, nil
}

// LabelsForTask retrieves all labels for a task
func (s *service) LabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.LabelsForTask(ctx, taskID)
}

// CreateLabel creates a new label with validation
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = models.DefaultLabelColor
	}
	if !hexColorRegex.MatchString(color) {
		return nil, ErrInvalidColor
	}

	label, err := s.repo.CreateLabel(ctx, name, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	slog.Info("label created", "label_id", label.ID, "name", label.Name)
	return label, nil
}

// UpdateLabel updates an existing label
func (s *service) UpdateLabel(ctx context.Context, req UpdateLabelRequest) (*models.Label, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidLabelID
	}

	var patch database.LabelPatch
	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if req.Color != nil {
		if !hexColorRegex.MatchString(*req.Color) {
			return nil, ErrInvalidColor
		}
		patch.Color = req.Color
	}

	label, err := s.repo.UpdateLabel(ctx, req.ID, patch)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return label, nil
}

// DeleteLabel deletes a label; its task associations cascade
func (s *service) DeleteLabel(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidLabelID
	}
	if err := s.repo.DeleteLabel(ctx, id); err != nil {
		return wrapNotFound(err)
	}
	slog.Info("label deleted", "label_id", id)
	return nil
}

// AttachLabel attaches a label to a task
func (s *service) AttachLabel(ctx context.Context, taskID, labelID int) (*models.TaskLabel, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if labelID <= 0 {
		return nil, ErrInvalidLabelID
	}

	tl, err := s.repo.AttachLabel(ctx, taskID, labelID)
	if errors.Is(err, models.ErrDuplicateLabel) {
		return nil, fmt.Errorf("%w: %w", ErrAlreadyAttached, err)
	}
	if err != nil {
		// either side may be missing; models.ErrNotFound stays in the chain
		return nil, err
	}
	return tl, nil
}

// DetachLabel detaches one label from one task. It reports whether the
// label had been attached.
func (s *service) DetachLabel(ctx context.Context, taskID, labelID int) (bool, error) {
	if taskID <= 0 {
		return false, ErrInvalidTaskID
	}
	if labelID <= 0 {
		return false, ErrInvalidLabelID
	}
	return s.repo.DetachLabel(ctx, taskID, labelID)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrLabelNotFound, err)
	}
	return err
}
