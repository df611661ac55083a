package column

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/models"
)

// maxNameLength bounds column names so headers fit a terminal column
const maxNameLength = 50

// Service defines all column-related business operations
type Service interface {
	// Read operations
	ListColumns(ctx context.Context) ([]*models.Column, error)
	GetColumn(ctx context.Context, id int) (*models.Column, error)

	// Write operations
	UpdateColumn(ctx context.Context, req UpdateColumnRequest) (*models.Column, error)
}

// UpdateColumnRequest encapsulates data for updating a column.
// Fields with pointers are optional - nil means don't update
type UpdateColumnRequest struct {
	ID          int
	Name        *string
	Description *string
}

// service implements Service interface
type service struct {
	repo database.ColumnRepository
}

// NewService creates a new column service
func NewService(repo database.ColumnRepository) Service {
	return &service{repo: repo}
}

// ListColumns retrieves all columns in board order
func (s *service) ListColumns(ctx context.Context) ([]*models.Column, error) {
	return s.repo.ListColumns(ctx)
}

// GetColumn retrieves a column by ID
func (s *service) GetColumn(ctx context.Context, id int) (*models.Column, error) {
	if id <= 0 {
		return nil, ErrInvalidColumnID
	}
	col, err := s.repo.GetColumn(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return col, nil
}

// UpdateColumn renames a column and/or changes its description
func (s *service) UpdateColumn(ctx context.Context, req UpdateColumnRequest) (*models.Column, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidColumnID
	}
	if req.Name == nil && req.Description == nil {
		return nil, ErrNothingToUpdate
	}

	patch := database.ColumnPatch{Description: req.Description}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if len(name) > maxNameLength {
			return nil, ErrNameTooLong
		}
		patch.Name = &name
	}

	col, err := s.repo.UpdateColumn(ctx, req.ID, patch)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	slog.Info("column updated", "column_id", col.ID, "name", col.Name)
	return col, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrColumnNotFound, err)
	}
	return err
}
