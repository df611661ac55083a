package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/veyr/internal/database"
	"github.com/thenoetrevino/veyr/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	ListTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error)
	LoadBoard(ctx context.Context) (*models.Board, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error

	// Task movements
	MoveTask(ctx context.Context, taskID, columnID, position int) (*models.Task, error)

	// Time tracking
	LogTime(ctx context.Context, req LogTimeRequest) (*models.TimeEntry, error)
	TimeEntries(ctx context.Context, taskID int) ([]*models.TimeEntry, error)
}

// CreateTaskRequest encapsulates all data needed to create a task.
// New tasks are appended to the end of the column.
type CreateTaskRequest struct {
	Title    string
	ColumnID int
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID   int
	Title    *string
	ColumnID *int
	Position *int
}

// LogTimeRequest records time spent on a task
type LogTimeRequest struct {
	TaskID int
	Start  time.Time
	End    time.Time
}

// Repository is the slice of the data store the task service needs
type Repository interface {
	database.ColumnRepository
	database.TaskRepository
	database.TimeEntryRepository
}

// service implements Service interface
type service struct {
	repo Repository
}

// NewService creates a new task service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetTask retrieves a task with its labels
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, wrapNotFound(err, ErrTaskNotFound)
	}
	return task, nil
}

// ListTasks retrieves every task ordered by column then position
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.ListTasks(ctx)
}

// ListTasksByColumn retrieves the tasks of one column in order
func (s *service) ListTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error) {
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}
	if _, err := s.repo.GetColumn(ctx, columnID); err != nil {
		return nil, wrapNotFound(err, ErrColumnNotFound)
	}
	return s.repo.ListTasksByColumn(ctx, columnID)
}

// LoadBoard reads the columns and their tasks in a form the UI can render
func (s *service) LoadBoard(ctx context.Context) (*models.Board, error) {
	columns, err := s.repo.ListColumns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	board := &models.Board{
		Columns: columns,
		Tasks:   make(map[int][]*models.Task, len(columns)),
	}
	for _, col := range columns {
		board.Tasks[col.ID] = []*models.Task{}
	}
	for _, task := range tasks {
		board.Tasks[task.ColumnID] = append(board.Tasks[task.ColumnID], task)
	}
	return board, nil
}

// CreateTask handles task creation with validation
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if req.ColumnID <= 0 {
		return nil, ErrInvalidColumnID
	}

	task, err := s.repo.CreateTask(ctx, title, req.ColumnID)
	if err != nil {
		return nil, wrapNotFound(err, ErrColumnNotFound)
	}

	slog.Info("task created", "task_id", task.ID, "column_id", task.ColumnID)
	return task, nil
}

// UpdateTask handles partial task updates with validation.
// Column and position changes are applied as a move.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if req.Title == nil && req.ColumnID == nil && req.Position == nil {
		return nil, ErrNothingToUpdate
	}

	patch := database.TaskPatch{ColumnID: req.ColumnID, Position: req.Position}
	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if req.ColumnID != nil && *req.ColumnID <= 0 {
		return nil, ErrInvalidColumnID
	}

	task, err := s.repo.UpdateTask(ctx, req.TaskID, patch)
	if err != nil {
		return nil, s.classify(ctx, req.TaskID, err)
	}
	return task, nil
}

// MoveTask places a task at position within columnID. A negative or
// out-of-range position appends to the end of the column.
func (s *service) MoveTask(ctx context.Context, taskID, columnID, position int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}

	task, err := s.repo.MoveTask(ctx, taskID, columnID, position)
	if err != nil {
		return nil, s.classify(ctx, taskID, err)
	}

	slog.Debug("task moved", "task_id", taskID, "column_id", columnID, "position", task.Position)
	return task, nil
}

// DeleteTask removes a task and closes the gap in its column
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}
	slog.Info("task deleted", "task_id", taskID)
	return nil
}

// LogTime records a time entry against a task
func (s *service) LogTime(ctx context.Context, req LogTimeRequest) (*models.TimeEntry, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if !req.End.After(req.Start) {
		return nil, ErrInvalidTimeRange
	}

	entry, err := s.repo.CreateTimeEntry(ctx, req.TaskID, req.Start, req.End)
	if err != nil {
		return nil, wrapNotFound(err, ErrTaskNotFound)
	}
	return entry, nil
}

// TimeEntries lists the time recorded against a task
func (s *service) TimeEntries(ctx context.Context, taskID int) ([]*models.TimeEntry, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if _, err := s.repo.GetTask(ctx, taskID); err != nil {
		return nil, wrapNotFound(err, ErrTaskNotFound)
	}
	return s.repo.TimeEntriesForTask(ctx, taskID)
}

// classify picks the sentinel for a not-found error from a write that
// touches both a task and a column
func (s *service) classify(ctx context.Context, taskID int, err error) error {
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if _, getErr := s.repo.GetTask(ctx, taskID); getErr != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}
	return wrapNotFound(err, ErrColumnNotFound)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func wrapNotFound(err, sentinel error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
