package label

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	labelservice "github.com/thenoetrevino/veyr/internal/services/label"
)

// UpdateCmd returns the label update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <label-id>",
		Short: "Update a label",
		Long: `Update a label's name and/or color.

Examples:
  veyr label update 3 --name="defect"
  veyr label update 3 --color="#00FF00" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New label name")
	cmd.Flags().String("color", "", "New hex color")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	labelID, err := cli.ParseID(args[0], "label")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr label update <label-id> --name=<name>")
	}

	req := labelservice.UpdateLabelRequest{ID: labelID}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		req.Color = &color
	}
	if req.Name == nil && req.Color == nil {
		return cli.FailUsage(formatter, errors.New("nothing to update"), "Pass --name and/or --color")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	label, err := cliInstance.App.LabelService.UpdateLabel(ctx, req)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(label)
	}

	fmt.Printf("✓ Label %d updated: %s (%s)\n", label.ID, label.Name, label.Color)
	return nil
}
