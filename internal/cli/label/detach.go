package label

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	labelservice "github.com/thenoetrevino/veyr/internal/services/label"
)

// DetachCmd returns the label detach subcommand
func DetachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach <task-id> <label-id>",
		Short: "Detach a label from a task",
		Long: `Detach one label from a task. Other labels on the task are kept.

Examples:
  veyr label detach 12 3
`,
		Args: cobra.ExactArgs(2),
		RunE: runDetach,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDetach(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, labelID, err := parsePair(args)
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr label detach <task-id> <label-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	removed, err := cliInstance.App.LabelService.DetachLabel(ctx, taskID, labelID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if !removed {
		return cli.Fail(formatter, fmt.Errorf("%w: task %d, label %d", labelservice.ErrNotAttached, taskID, labelID))
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"task_id": taskID, "label_id": labelID, "detached": true})
	}

	fmt.Printf("✓ Label %d detached from task %d\n", labelID, taskID)
	return nil
}
