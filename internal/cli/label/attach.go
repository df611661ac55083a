package label

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
)

// AttachCmd returns the label attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach <task-id> <label-id>",
		Short: "Attach a label to a task",
		Long: `Attach a label to a task. Attaching twice is a validation error.

Examples:
  veyr label attach 12 3
`,
		Args: cobra.ExactArgs(2),
		RunE: runAttach,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAttach(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, labelID, err := parsePair(args)
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr label attach <task-id> <label-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	link, err := cliInstance.App.LabelService.AttachLabel(ctx, taskID, labelID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(link)
	}

	fmt.Printf("✓ Label %d attached to task %d\n", labelID, taskID)
	return nil
}

// parsePair parses the <task-id> <label-id> arguments
func parsePair(args []string) (int, int, error) {
	taskID, err := cli.ParseID(args[0], "task")
	if err != nil {
		return 0, 0, err
	}
	labelID, err := cli.ParseID(args[1], "label")
	if err != nil {
		return 0, 0, err
	}
	return taskID, labelID, nil
}
