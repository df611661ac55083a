package label

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long: `List all labels by name.

Examples:
  veyr label list
  veyr label list --json
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

	labels, err := cliInstance.App.LabelService.ListLabels(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(labels)
	}

	if len(labels) == 0 {
		fmt.Println("No labels found")
		return nil
	}

	fmt.Println("Labels:")
	for _, label := range labels {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(label.Color)).Render("●")
		fmt.Printf("  %s %s (ID: %d, %s)\n", swatch, label.Name, label.ID, label.Color)
	}
	return nil
}
