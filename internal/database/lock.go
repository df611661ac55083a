package database

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/thenoetrevino/veyr/internal/models"
)

// LockFileName is the lock file guarding the data directory
const LockFileName = "veyr.lock"

// DirLock is an exclusive, cross-process lock on a data directory.
// Only the process holding it may open the board database for writing.
type DirLock struct {
	flock *flock.Flock
}

// AcquireLock tries to take the data directory lock until ctx is done.
// It returns models.ErrStoreLocked when another process keeps holding it.
func AcquireLock(ctx context.Context, dataDir string, retryInterval time.Duration) (*DirLock, error) {
	fl := flock.New(filepath.Join(dataDir, LockFileName))

	ok, err := fl.TryLockContext(ctx, retryInterval)
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("failed to lock %s: %w", dataDir, err)
	}
	if !ok {
		return nil, models.ErrStoreLocked
	}

	slog.Debug("acquired data directory lock", "path", fl.Path())
	return &DirLock{flock: fl}, nil
}

// Release unlocks the data directory
func (l *DirLock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}
