package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/thenoetrevino/veyr/internal/config"
	"github.com/thenoetrevino/veyr/internal/database"
	columnservice "github.com/thenoetrevino/veyr/internal/services/column"
	labelservice "github.com/thenoetrevino/veyr/internal/services/label"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
)

// lockWait is how long Open waits for another process to release the data directory
const lockWait = 500 * time.Millisecond

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Config is the loaded configuration
	Config *config.Config

	// Service layer (business logic)
	TaskService   taskservice.Service
	ColumnService columnservice.Service
	LabelService  labelservice.Service

	closers []func() error
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}

	return &App{
		repo:          repo,
		Config:        cfg.config,
		TaskService:   taskservice.NewService(repo),
		ColumnService: columnservice.NewService(repo),
		LabelService:  labelservice.NewService(repo),
		closers:       cfg.closers,
	}
}

// Open takes the data directory lock, opens and migrates the board
// database, and builds the services over it
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()
	lock, err := database.AcquireLock(lockCtx, dataDir, 50*time.Millisecond)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx, dataDir)
	if err != nil {
		return nil, errors.Join(err, lock.Release())
	}

	repo := database.NewRepository(db)
	return New(repo,
		WithConfig(cfg),
		WithCloser(repo.Close),
		WithCloser(lock.Release),
	), nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database and the data directory lock, in that order
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
