package column

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	columnservice "github.com/thenoetrevino/veyr/internal/services/column"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <column-id>",
		Short: "Rename or describe a column",
		Long: `Update a column's name and/or description. Columns cannot be added,
removed or reordered.

Examples:
  veyr column update 1 --name="Backlog"
  veyr column update 3 --description="Shipped this week" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New column name")
	cmd.Flags().String("description", "", "New column description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	columnID, err := cli.ParseID(args[0], "column")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr column update <column-id> --name=<name>")
	}

	req := columnservice.UpdateColumnRequest{ID: columnID}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if req.Name == nil && req.Description == nil {
		return cli.FailUsage(formatter, errors.New("nothing to update"), "Pass --name and/or --description")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	col, err := cliInstance.App.ColumnService.UpdateColumn(ctx, req)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(col)
	}

	fmt.Printf("✓ Column %d updated successfully: %s\n", col.ID, col.Name)
	return nil
}
