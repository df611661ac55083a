package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// LogFileName is the log file inside <data dir>/logs
const LogFileName = "veyr.log"

// Init initializes the logging system, writing logs to <dataDir>/logs/veyr.log
// at the given level. Uses text format for human readability.
func Init(dataDir, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, LogFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: lvl,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output (used by migrate) to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags) // Include timestamp

	return nil
}

// ParseLevel maps a config level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
