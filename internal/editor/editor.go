// Package editor holds the state of an inline task title edit.
// It knows nothing about persistence: the owner acts on the events that
// Commit and Cancel return.
package editor

import "strings"

// State is whether the title is being edited
type State int

const (
	Viewing State = iota
	Editing
)

// EventKind says what the owner should do after an edit ends
type EventKind int

const (
	// EventNone means nothing changed
	EventNone EventKind = iota
	// EventCommit carries a new title to save
	EventCommit
	// EventCancel means the draft was thrown away
	EventCancel
	// EventDiscard means an unsaved task ended with an empty title and
	// must not be created
	EventDiscard
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventCommit:
		return "commit"
	case EventCancel:
		return "cancel"
	case EventDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Event is the outcome of ending an edit
type Event struct {
	Kind  EventKind
	Value string
}

// Editor is the title editor for one task
type Editor struct {
	state     State
	committed string
	draft     string
	isNew     bool
}

// New creates an editor viewing an existing task's title
func New(title string) *Editor {
	return &Editor{committed: title}
}

// NewDraft creates an editor for a task that has not been saved yet.
// It starts editing an empty draft.
func NewDraft() *Editor {
	return &Editor{state: Editing, isNew: true}
}

// State returns the editor state
func (e *Editor) State() State { return e.state }

// IsNew reports whether the task has not been saved yet
func (e *Editor) IsNew() bool { return e.isNew }

// Draft returns the text being edited
func (e *Editor) Draft() string { return e.draft }

// Title returns the text to display: the draft while editing, the last
// committed title otherwise
func (e *Editor) Title() string {
	if e.state == Editing {
		return e.draft
	}
	return e.committed
}

// Begin starts editing with the committed title as the draft.
// It does nothing if already editing.
func (e *Editor) Begin() {
	if e.state == Editing {
		return
	}
	e.state = Editing
	e.draft = e.committed
}

// SetDraft replaces the draft. Ignored while viewing.
func (e *Editor) SetDraft(s string) {
	if e.state != Editing {
		return
	}
	e.draft = s
}

// Commit ends the edit. The trimmed draft becomes the title when it
// differs from the committed one, even when it is empty; whether a blank
// title is acceptable is the owner's call. An unsaved task whose draft
// trims to empty is discarded.
func (e *Editor) Commit() Event {
	if e.state != Editing {
		return Event{Kind: EventNone}
	}
	e.state = Viewing
	value := strings.TrimSpace(e.draft)
	e.draft = ""

	if e.isNew && value == "" {
		return Event{Kind: EventDiscard}
	}
	if value == e.committed {
		return Event{Kind: EventNone}
	}
	e.committed = value
	e.isNew = false
	return Event{Kind: EventCommit, Value: value}
}

// Cancel ends the edit and drops the draft; the title reverts to the last
// committed value
func (e *Editor) Cancel() Event {
	if e.state != Editing {
		return Event{Kind: EventNone}
	}
	e.state = Viewing
	e.draft = ""
	return Event{Kind: EventCancel}
}

// Reset sets the committed title, as after a failed save is rolled back
func (e *Editor) Reset(title string) {
	e.committed = title
}
