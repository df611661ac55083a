package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli/column"
	"github.com/thenoetrevino/veyr/internal/cli/label"
	"github.com/thenoetrevino/veyr/internal/cli/task"
	"github.com/thenoetrevino/veyr/internal/config"
	"github.com/thenoetrevino/veyr/internal/launcher"
)

// NewRootCmd builds the veyr command tree. Run without a subcommand it
// opens the board UI.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "veyr",
		Short: "Veyr - A terminal-based kanban board",
		Long: `Veyr is a terminal-based kanban board. Run it without arguments to open
the board, or use the subcommands to script columns, tasks and labels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cfg)
		},
	}

	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(label.LabelCmd())
	return rootCmd
}

// Execute runs the command tree
func Execute(ctx context.Context, cfg *config.Config) error {
	return NewRootCmd(cfg).ExecuteContext(ctx)
}
