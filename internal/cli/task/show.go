package task

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	"github.com/thenoetrevino/veyr/internal/config/colors"
	"github.com/thenoetrevino/veyr/internal/models"
)

// taskDetail is a task plus the context shown by task show
type taskDetail struct {
	*models.Task
	ColumnName  string              `json:"column_name"`
	TimeEntries []*models.TimeEntry `json:"time_entries"`
	TimeSpent   int                 `json:"time_spent_seconds"`
}

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show task details",
		Long: `Display a task with its column, labels, and tracked time.

Examples:
  # Human-readable card
  veyr task show 12

  # JSON output for agents
  veyr task show 12 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(args[0], "task")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr task show <task-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	column, err := cliInstance.App.ColumnService.GetColumn(ctx, task.ColumnID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	entries, err := cliInstance.App.TaskService.TimeEntries(ctx, taskID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	detail := &taskDetail{Task: task, ColumnName: column.Name, TimeEntries: entries}
	for _, e := range entries {
		detail.TimeSpent += e.DurationSeconds
	}

	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(detail)
	}

	fmt.Println(renderCard(detail, cliInstance.App.Config.ColorScheme))
	return nil
}

// renderCard draws the human-readable task card
func renderCard(task *taskDetail, scheme colors.ColorScheme) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		Underline(true)

	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Title)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		labelStyle.Render("Column:"),
		valueStyle.Render(task.ColumnName),
		labelStyle.Render("Position:"),
		valueStyle.Render(fmt.Sprintf("%d", task.Position+1)),
	))
	content.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Created:"),
		subtitleStyle.Render(task.CreatedAt.Format("Jan 2, 2006 3:04 PM")),
	))
	if !task.UpdatedAt.IsZero() && !task.UpdatedAt.Equal(task.CreatedAt) {
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Updated:"),
			subtitleStyle.Render(task.UpdatedAt.Format("Jan 2, 2006 3:04 PM")),
		))
	}

	if len(task.Labels) > 0 {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render("Labels"))
		content.WriteString("\n  ")
		chips := make([]string, 0, len(task.Labels))
		for _, label := range task.Labels {
			chip := lipgloss.NewStyle().
				Foreground(lipgloss.Color(label.Color)).
				Bold(true).
				Render("[" + label.Name + "]")
			chips = append(chips, chip)
		}
		content.WriteString(strings.Join(chips, " "))
		content.WriteString("\n")
	}

	if len(task.TimeEntries) > 0 {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render("Time"))
		content.WriteString("\n")
		for _, e := range task.TimeEntries {
			content.WriteString(fmt.Sprintf("  %s  %s\n",
				subtitleStyle.Render(e.StartTime.Local().Format("Jan 2 15:04")),
				valueStyle.Render(e.Duration().String()),
			))
		}
		total := time.Duration(task.TimeSpent) * time.Second
		content.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Total:"), valueStyle.Render(total.String())))
	}

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}
