package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List the board's columns from left to right.

Examples:
  veyr column list
  veyr column list --json
  veyr column list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

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

	columns, err := cliInstance.App.ColumnService.ListColumns(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(columns)
	}

	if len(columns) == 0 {
		fmt.Println("No columns found")
		return nil
	}

	fmt.Println("Columns:")
	for _, col := range columns {
		fmt.Printf("  %d. %s (ID: %d)\n", col.Position+1, col.Name, col.ID)
		if col.Description != "" {
			fmt.Printf("     %s\n", col.Description)
		}
	}
	return nil
}
