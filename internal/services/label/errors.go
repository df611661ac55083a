package label

import "errors"

// Label-related errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 50 characters")
	ErrInvalidColor   = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrInvalidLabelID = errors.New("invalid label ID")
	ErrInvalidTaskID  = errors.New("invalid task ID")

	// Business logic errors
	ErrLabelNotFound   = errors.New("label not found")
	ErrAlreadyAttached = errors.New("label already attached to task")
	ErrNotAttached     = errors.New("label is not attached to task")
)
