package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/veyr/internal/app"
	"github.com/thenoetrevino/veyr/internal/config"
	"github.com/thenoetrevino/veyr/internal/tui"
)

// Launch opens the board and runs the TUI until the user quits or the
// process is signalled
func Launch(ctx context.Context, cfg *config.Config) (err error) {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if cerr := application.Close(); cerr != nil {
			slog.Error("error closing board", "error", cerr)
			err = errors.Join(err, cerr)
		}
	}()

	model := tui.New(ctx, application.TaskService, cfg)
	// alt screen and mouse reporting are requested by the model's View
	p := tea.NewProgram(model, tea.WithContext(ctx))

	slog.Info("board opened", "pid", os.Getpid())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("board closed")
	return nil
}
