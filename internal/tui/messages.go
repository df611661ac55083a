package tui

import (
	"github.com/thenoetrevino/veyr/internal/drag"
	"github.com/thenoetrevino/veyr/internal/models"
)

// boardLoadedMsg carries a fresh board from the store
type boardLoadedMsg struct {
	board *models.Board
	err   error
}

// moveSettledMsg reports the outcome of persisting a move
type moveSettledMsg struct {
	move *drag.Move
	err  error
}

// taskCreatedMsg reports the outcome of saving a new task.
// tempID is the placeholder shown while the save was in flight.
type taskCreatedMsg struct {
	tempID int
	task   *models.Task
	err    error
}

// titleSavedMsg reports the outcome of saving an edited title
type titleSavedMsg struct {
	taskID   int
	oldTitle string
	newTitle string
	err      error
}

// taskDeletedMsg reports the outcome of deleting a task
type taskDeletedMsg struct {
	task *models.Task
	err  error
}
