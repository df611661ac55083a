package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/models"
	columnservice "github.com/thenoetrevino/veyr/internal/services/column"
	labelservice "github.com/thenoetrevino/veyr/internal/services/label"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
)

// validationErrors are the service sentinels reported as ExitValidation
var validationErrors = []error{
	taskservice.ErrEmptyTitle,
	taskservice.ErrTitleTooLong,
	taskservice.ErrInvalidTaskID,
	taskservice.ErrInvalidColumnID,
	taskservice.ErrNothingToUpdate,
	taskservice.ErrInvalidTimeRange,
	columnservice.ErrEmptyName,
	columnservice.ErrNameTooLong,
	columnservice.ErrInvalidColumnID,
	columnservice.ErrNothingToUpdate,
	labelservice.ErrEmptyName,
	labelservice.ErrNameTooLong,
	labelservice.ErrInvalidColor,
	labelservice.ErrInvalidLabelID,
	labelservice.ErrInvalidTaskID,
	labelservice.ErrAlreadyAttached,
	labelservice.ErrNotAttached,
}

// Classify maps an error to an error code for JSON output and an exit code
func Classify(err error) (code string, exit int) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return "NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrStoreLocked):
		return "STORE_LOCKED", ExitError
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return "VALIDATION_ERROR", ExitValidation
		}
	}
	return "ERROR", ExitError
}

// Fail reports err through the formatter and returns an ExitError with the
// matching exit code
func Fail(formatter *OutputFormatter, err error) error {
	code, exit := Classify(err)
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitError{Code: exit, Err: err}
}

// FailUsage reports a usage problem and returns an ExitError with ExitUsage
func FailUsage(formatter *OutputFormatter, err error, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion("USAGE_ERROR", err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitError{Code: ExitUsage, Err: err}
}

// NewFormatter builds the output formatter from the --json and --quiet flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// ParseID parses a positional ID argument
func ParseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %q", what, arg)
	}
	return id, nil
}

// ResolveColumn finds a column by numeric ID or by case-insensitive name.
// An empty ref selects the leftmost column.
func ResolveColumn(ctx context.Context, columns columnservice.Service, ref string) (*models.Column, error) {
	all, err := columns.ListColumns(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %w", columnservice.ErrColumnNotFound, models.ErrNotFound)
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return all[0], nil
	}
	id, convErr := strconv.Atoi(ref)
	for _, col := range all {
		if convErr == nil && col.ID == id {
			return col, nil
		}
		if strings.EqualFold(col.Name, ref) {
			return col, nil
		}
	}
	return nil, fmt.Errorf("%w: column %q: %w", columnservice.ErrColumnNotFound, ref, models.ErrNotFound)
}
