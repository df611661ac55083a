package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  "Create, update, move, and delete tasks on the board.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(TimeCmd())

	return cmd
}
