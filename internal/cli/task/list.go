package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks column by column, in board order.

Examples:
  # Every task on the board
  veyr task list

  # Only one column
  veyr task list --column="Done"

  # IDs only
  veyr task list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list tasks in this column (ID or name)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	board, err := cliInstance.App.TaskService.LoadBoard(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	columns := board.Columns
	if cmd.Flags().Changed("column") {
		columnRef, _ := cmd.Flags().GetString("column")
		column, err := cli.ResolveColumn(ctx, cliInstance.App.ColumnService, columnRef)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		columns = []*models.Column{column}
	}

	tasks := make([]*models.Task, 0)
	for _, col := range columns {
		tasks = append(tasks, board.TasksFor(col.ID)...)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(tasks)
	}

	// Human-readable output
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, col := range columns {
		colTasks := board.TasksFor(col.ID)
		fmt.Printf("%s (%d)\n", col.Name, len(colTasks))
		for _, task := range colTasks {
			fmt.Printf("  [%d] %s\n", task.ID, task.Title)
		}
	}
	return nil
}
