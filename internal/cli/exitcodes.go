package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, a locked data directory, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, column not found, label not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable times or durations.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, bad colors, duplicate label attachments,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command.
// The error has already been reported to the user when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
