package board

import "errors"

var (
	// ErrTaskNotInColumn indicates that a move named a source column the
	// task is not in
	ErrTaskNotInColumn = errors.New("task is not in the source column")

	// ErrUnknownColumn indicates a column the snapshot does not hold
	ErrUnknownColumn = errors.New("unknown column")
)
