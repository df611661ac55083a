package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrTitleTooLong     = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrInvalidColumnID  = errors.New("invalid column ID")
	ErrNothingToUpdate  = errors.New("no fields to update")
	ErrInvalidTimeRange = errors.New("time entry must end after it starts")

	// Business logic errors
	ErrTaskNotFound   = errors.New("task not found")
	ErrColumnNotFound = errors.New("column not found")
)
