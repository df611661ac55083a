package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task",
		Long: `Update a task's title, column, or position.

A task moved to another column without --position is appended there.
Positions are zero-based and clamped to the column.

Examples:
  # Rename
  veyr task update 12 --title="Fix login bug"

  # Send to the top of Done
  veyr task update 12 --column=Done --position=0
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("column", "", "New column (ID or name)")
	cmd.Flags().Int("position", 0, "New zero-based position")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(args[0], "task")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr task update <task-id> --title=<title>")
	}

	flags := cmd.Flags()
	if !flags.Changed("title") && !flags.Changed("column") && !flags.Changed("position") {
		return cli.FailUsage(formatter, errors.New("nothing to update"),
			"Pass at least one of --title, --column, or --position")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
	}
	if flags.Changed("column") {
		columnRef, _ := flags.GetString("column")
		column, err := cli.ResolveColumn(ctx, cliInstance.App.ColumnService, columnRef)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		req.ColumnID = &column.ID
	}
	if flags.Changed("position") {
		position, _ := flags.GetInt("position")
		req.Position = &position
	}

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %d updated successfully\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	fmt.Printf("  Column ID: %d, position %d\n", task.ColumnID, task.Position)
	return nil
}
