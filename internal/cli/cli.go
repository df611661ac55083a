// Package cli holds the shared plumbing of the veyr command line: the
// application handle, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/veyr/internal/app"
	"github.com/thenoetrevino/veyr/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is set when this CLI opened the app and must close it
	owned bool
}

// WithApp returns a context carrying an already open app. Commands run
// under it use that app instead of opening the data directory.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the app in ctx, or opens the app
// from the user's configuration when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &CLI{App: a, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// CloseQuietly closes the CLI and logs any error
func (c *CLI) CloseQuietly() {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}
