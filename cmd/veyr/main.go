package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/veyr/cmd"
	"github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/config"
	"github.com/thenoetrevino/veyr/internal/logging"
)

func main() {
	// a missing .env is the normal case
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(cli.ExitError)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}
	if err := logging.Init(dataDir, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(cli.ExitError)
	}

	if err := cmd.Execute(context.Background(), cfg); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// already reported by the command
			os.Exit(exitErr.Code)
		}
		slog.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}
}
