package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task at the end of a column.

Examples:
  # Simple task in the first column (human-readable output)
  veyr task create --title="Fix bug"

  # Into a named column
  veyr task create --title="Fix bug" --column="In Progress"

  # JSON output for agents
  veyr task create --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(veyr task create --title="Fix bug" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("column", "", "Column ID or name (defaults to first column)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	columnRef, _ := cmd.Flags().GetString("column")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	column, err := cli.ResolveColumn(ctx, cliInstance.App.ColumnService, columnRef)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    title,
		ColumnID: column.ID,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %d created successfully\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	fmt.Printf("  Column: %s (position %d)\n", column.Name, task.Position)
	return nil
}
