package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to a column and position",
		Long: `Move a task the way a drag and drop on the board does.

Without --position the task is appended to the target column.

Examples:
  # Move to the end of In Progress
  veyr task move 12 --column="In Progress"

  # Reorder within the current column
  veyr task move 12 --column=1 --position=0
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("column", "", "Target column ID or name (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("position", models.AppendPosition, "Target zero-based position (default: end of column)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(args[0], "task")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr task move <task-id> --column=<column>")
	}

	columnRef, _ := cmd.Flags().GetString("column")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	column, err := cli.ResolveColumn(ctx, cliInstance.App.ColumnService, columnRef)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	task, err := cliInstance.App.TaskService.MoveTask(ctx, taskID, column.ID, position)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %d moved to '%s' at position %d\n", task.ID, column.Name, task.Position)
	return nil
}
