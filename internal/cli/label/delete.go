package label

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
)

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <label-id>",
		Short: "Delete a label",
		Long: `Delete a label. It is detached from every task that carries it.

Examples:
  veyr label delete 3
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

	labelID, err := cli.ParseID(args[0], "label")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr label delete <label-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	if err := cliInstance.App.LabelService.DeleteLabel(ctx, labelID); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"label_id": labelID, "deleted": true})
	}

	fmt.Printf("✓ Label %d deleted successfully\n", labelID)
	return nil
}
