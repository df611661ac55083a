package label

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	labelservice "github.com/thenoetrevino/veyr/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a new label.

Examples:
  # Label with the default gray
  veyr label create --name="bug"

  # With a color, quiet mode for bash capture
  LABEL_ID=$(veyr label create --name="bug" --color="#FF5733" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Label name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("color", "", "Hex color like #FF5733 (default gray)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	label, err := cliInstance.App.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{
		Name:  name,
		Color: color,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(label)
	}

	fmt.Printf("✓ Label '%s' created (ID: %d, color %s)\n", label.Name, label.ID, label.Color)
	return nil
}
