package models

import "errors"

var (
	// ErrNotFound is returned by repositories when a row does not exist
	ErrNotFound = errors.New("not found")

	// ErrStoreLocked indicates another process already owns the data directory
	ErrStoreLocked = errors.New("board store is locked by another process")

	// ErrDuplicateLabel indicates the label is already attached to the task
	ErrDuplicateLabel = errors.New("label already attached to task")
)
