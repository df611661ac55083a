package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/veyr/internal/cli"
	taskservice "github.com/thenoetrevino/veyr/internal/services/task"
)

// TimeCmd returns the task time subcommand
func TimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time <task-id>",
		Short: "Log or list time spent on a task",
		Long: `Record time spent on a task, or list what has been recorded.

With --duration the entry ends at --end (default now).
With --start the entry runs from --start to --end.
With neither, the recorded entries are listed.

Examples:
  # Log the last 45 minutes
  veyr task time 12 --duration=45m

  # Log an explicit range
  veyr task time 12 --start=2026-01-05T09:00:00Z --end=2026-01-05T10:30:00Z

  # List entries
  veyr task time 12
`,
		Args: cobra.ExactArgs(1),
		RunE: runTime,
	}

	cmd.Flags().Duration("duration", 0, "Time spent (e.g. 30m, 1h15m)")
	cmd.Flags().String("start", "", "Start time (RFC3339)")
	cmd.Flags().String("end", "", "End time (RFC3339, default now)")
	cmd.MarkFlagsMutuallyExclusive("duration", "start")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runTime(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(args[0], "task")
	if err != nil {
		return cli.FailUsage(formatter, err, "Usage: veyr task time <task-id> [--duration=<d>]")
	}

	flags := cmd.Flags()
	logging := flags.Changed("duration") || flags.Changed("start")

	var start, end time.Time
	if logging {
		end = time.Now().UTC()
		if flags.Changed("end") {
			raw, _ := flags.GetString("end")
			if end, err = time.Parse(time.RFC3339, raw); err != nil {
				return cli.FailUsage(formatter, fmt.Errorf("invalid --end: %w", err), "Use RFC3339, e.g. 2026-01-05T10:30:00Z")
			}
		}
		if flags.Changed("start") {
			raw, _ := flags.GetString("start")
			if start, err = time.Parse(time.RFC3339, raw); err != nil {
				return cli.FailUsage(formatter, fmt.Errorf("invalid --start: %w", err), "Use RFC3339, e.g. 2026-01-05T09:00:00Z")
			}
		} else {
			d, _ := flags.GetDuration("duration")
			start = end.Add(-d)
		}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cliInstance.CloseQuietly()

	if !logging {
		entries, err := cliInstance.App.TaskService.TimeEntries(ctx, taskID)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		if formatter.JSON || formatter.Quiet {
			return formatter.Success(entries)
		}
		if len(entries) == 0 {
			fmt.Printf("No time logged for task %d\n", taskID)
			return nil
		}
		var total time.Duration
		for _, e := range entries {
			fmt.Printf("  %s  %s\n", e.StartTime.Local().Format("2006-01-02 15:04"), e.Duration())
			total += e.Duration()
		}
		fmt.Printf("Total: %s\n", total)
		return nil
	}

	entry, err := cliInstance.App.TaskService.LogTime(ctx, taskservice.LogTimeRequest{
		TaskID: taskID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(entry)
	}

	fmt.Printf("✓ Logged %s on task %d\n", entry.Duration(), taskID)
	return nil
}
