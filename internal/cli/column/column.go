package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
		Long:  "List the board's columns and rename or describe them.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())

	return cmd
}
