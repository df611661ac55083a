// Package drag turns pointer gestures on the board into task moves.
//
// The Controller is a two-state machine. A press on a task arms a gesture;
// moving the pointer past the activation distance starts a drag, and a
// release before that is a click. Dropping resolves the target into a move,
// applies it to the board store at once, and hands back a Move the caller
// persists off the UI goroutine and then settles, which rolls the store back
// if the write failed.
package drag

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/veyr/internal/board"
	"github.com/thenoetrevino/veyr/internal/models"
)

// State is the controller's gesture state
type State int

const (
	// Idle means no drag is in progress. A press may be armed.
	Idle State = iota
	// Dragging means a task is being carried
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Default gesture settings
const (
	DefaultActivationDistance = 3.0
	DefaultPersistTimeout     = 5 * time.Second
)

// Config holds the gesture settings
type Config struct {
	// ActivationDistance is how far, in cells, the pointer must travel from
	// the press before a drag starts
	ActivationDistance float64
	// PersistTimeout bounds each persistence call
	PersistTimeout time.Duration
}

// DefaultConfig returns the default gesture settings
func DefaultConfig() Config {
	return Config{
		ActivationDistance: DefaultActivationDistance,
		PersistTimeout:     DefaultPersistTimeout,
	}
}

// Persister writes a task's new column and position
type Persister interface {
	MoveTask(ctx context.Context, taskID, columnID, position int) (*models.Task, error)
}

// Notifier tells the user something went wrong
type Notifier interface {
	NotifyError(message string)
}

// Move is a move that has been applied to the store but not yet persisted
type Move struct {
	// ID correlates the optimistic apply with its settle in the log
	ID             string
	TaskID         int
	SourceColumnID int
	TargetColumnID int
	// Position is the task's index in the target column after the move
	Position int
	// Previous is the snapshot to restore if persistence fails
	Previous board.Snapshot
}

// Controller owns the drag gesture. Every method except Persist must be
// called from the UI goroutine.
type Controller struct {
	store     *board.Store
	persister Persister
	notifier  Notifier
	cfg       Config

	state State

	// armed press
	armed     bool
	pressTask int
	pressX    int
	pressY    int
	pointerX  int
	pointerY  int

	// captured when the drag starts
	active         *models.Task
	sourceColumnID int
}

// NewController creates a controller over store. Zero config values take
// the defaults.
func NewController(store *board.Store, persister Persister, notifier Notifier, cfg Config) *Controller {
	if cfg.ActivationDistance <= 0 {
		cfg.ActivationDistance = DefaultActivationDistance
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = DefaultPersistTimeout
	}
	return &Controller{
		store:     store,
		persister: persister,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// State returns the current gesture state
func (c *Controller) State() State {
	return c.state
}

// Active returns the copy of the task captured when the drag started
func (c *Controller) Active() (*models.Task, bool) {
	if c.state != Dragging {
		return nil, false
	}
	return c.active, true
}

// Pointer returns the last known pointer position
func (c *Controller) Pointer() (x, y int) {
	return c.pointerX, c.pointerY
}

// PointerDown arms a gesture on a task. It is ignored while dragging.
func (c *Controller) PointerDown(taskID, x, y int) {
	if c.state == Dragging {
		return
	}
	c.armed = true
	c.pressTask = taskID
	c.pressX, c.pressY = x, y
	c.pointerX, c.pointerY = x, y
}

// PointerMove tracks the pointer and starts the drag once it is far enough
// from the press. It reports whether this call started the drag.
func (c *Controller) PointerMove(x, y int) bool {
	c.pointerX, c.pointerY = x, y
	if c.state == Dragging || !c.armed {
		return false
	}

	dist := math.Hypot(float64(x-c.pressX), float64(y-c.pressY))
	if dist < c.cfg.ActivationDistance {
		return false
	}

	task, _, ok := c.store.Current().Find(c.pressTask)
	if !ok {
		// the task vanished under the press
		c.reset()
		return false
	}

	c.armed = false
	c.state = Dragging
	c.active = task.Clone()
	c.sourceColumnID = task.ColumnID
	slog.Debug("drag started", "task_id", task.ID, "column_id", task.ColumnID)
	return true
}

// PointerUp ends a press that never became a drag. It returns the pressed
// task and true for a click. While dragging it does nothing; end the drag
// with Drop.
func (c *Controller) PointerUp() (taskID int, clicked bool) {
	if c.state == Dragging || !c.armed {
		return 0, false
	}
	taskID = c.pressTask
	c.reset()
	return taskID, true
}

// Drop ends the drag over target and applies the resulting move to the
// store. It returns nil when there is nothing to do: no drag in progress, a
// nil target, a drop onto the dragged task itself, a target that is not a
// known column, or a move that would leave the board unchanged.
func (c *Controller) Drop(target DropTarget) (*Move, error) {
	if c.state != Dragging {
		return nil, nil
	}
	task := c.active
	source := c.sourceColumnID
	c.reset()

	columnID, index, ok := c.resolve(task.ID, target)
	if !ok {
		slog.Debug("drop ignored", "task_id", task.ID)
		return nil, nil
	}
	return c.apply(task.ID, source, columnID, index)
}

// MoveTo moves a task without a gesture, as keyboard moves do. The rules
// match Drop: the move is applied to the store and must be persisted and
// settled by the caller. A move that changes nothing returns nil.
func (c *Controller) MoveTo(taskID, columnID, index int) (*Move, error) {
	task, _, ok := c.store.Current().Find(taskID)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", taskID, models.ErrNotFound)
	}
	if !c.store.Current().HasColumn(columnID) {
		return nil, nil
	}
	return c.apply(taskID, task.ColumnID, columnID, index)
}

// Cancel abandons the gesture without touching the store
func (c *Controller) Cancel() {
	c.reset()
}

// Persist writes the move through the persister with a bounded timeout.
// It touches no controller state and may run on any goroutine.
func (c *Controller) Persist(ctx context.Context, m *Move) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.PersistTimeout)
	defer cancel()

	if _, err := c.persister.MoveTask(ctx, m.TaskID, m.TargetColumnID, m.Position); err != nil {
		return fmt.Errorf("failed to persist move %s: %w", m.ID, err)
	}
	return nil
}

// Settle records the outcome of Persist. On failure the store goes back to
// the snapshot from before the move and the user is notified. It reports
// whether a rollback happened.
func (c *Controller) Settle(m *Move, err error) bool {
	if err == nil {
		slog.Info("move persisted", "op", m.ID, "task_id", m.TaskID,
			"column_id", m.TargetColumnID, "position", m.Position)
		return false
	}

	c.store.Replace(m.Previous)
	slog.Error("move failed, rolled back", "op", m.ID, "task_id", m.TaskID, "error", err)
	if c.notifier != nil {
		c.notifier.NotifyError("Could not move task: " + err.Error())
	}
	return true
}

// resolve maps a drop target to a column and an index in it
func (c *Controller) resolve(taskID int, target DropTarget) (columnID, index int, ok bool) {
	snap := c.store.Current()

	switch t := target.(type) {
	case ColumnTarget:
		columnID = t.ColumnID
		index = len(snap.Column(columnID))
	case TaskTarget:
		if t.TaskID == taskID {
			return 0, 0, false
		}
		columnID = t.ColumnID
		index = len(snap.Column(columnID))
		for i, other := range snap.Column(columnID) {
			if other.ID == t.TaskID {
				index = i
				break
			}
		}
	case RawTarget:
		// a column ID; task and column IDs are separate sequences, so a
		// match with taskID is not a self-drop
		columnID = t.ID
		index = len(snap.Column(columnID))
	default:
		return 0, 0, false
	}

	if !snap.HasColumn(columnID) {
		return 0, 0, false
	}
	return columnID, index, true
}

func (c *Controller) apply(taskID, sourceColumnID, targetColumnID, index int) (*Move, error) {
	snap := c.store.Current()
	if sourceColumnID == targetColumnID {
		_, from, ok := snap.Find(taskID)
		last := len(snap.Column(targetColumnID)) - 1
		if ok && max(0, min(index, last)) == from {
			return nil, nil
		}
	}

	prev, err := c.store.ApplyMove(taskID, sourceColumnID, targetColumnID, index)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	_, position, _ := c.store.Current().Find(taskID)
	m := &Move{
		ID:             uuid.NewString(),
		TaskID:         taskID,
		SourceColumnID: sourceColumnID,
		TargetColumnID: targetColumnID,
		Position:       position,
		Previous:       prev,
	}
	slog.Debug("move applied", "op", m.ID, "task_id", taskID,
		"from_column", sourceColumnID, "to_column", targetColumnID, "position", position)
	return m, nil
}

func (c *Controller) reset() {
	c.state = Idle
	c.armed = false
	c.pressTask = 0
	c.active = nil
	c.sourceColumnID = 0
}
