package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name cannot exceed 50 characters")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrNothingToUpdate = errors.New("no column fields to update")

	// Business logic errors
	ErrColumnNotFound = errors.New("column not found")
)
