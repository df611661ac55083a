package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Long: `Delete a task. Remaining tasks in its column close the gap.

Examples:
  veyr task delete 12
  veyr task delete 12 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(args[0], "task")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr task delete <task-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"task_id": taskID, "deleted": true})
	}

	fmt.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil
}
