package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexttick/internal/dates"
	"nexttick/internal/navigation"
)

// newListCommand creates the list command
func (r *RootCommand) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenTaskList); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			tasks, err := r.api.ListTasks(cmd.Context())
			if err != nil {
				return r.errorHandler.Handle("list tasks", err)
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found")
				return nil
			}

			formatter := dates.NewFormatter(r.config.Display.DateFormat)
			for _, task := range tasks {
				fmt.Fprintf(out, "%d: %s (%s - %s, %s)\n",
					task.ID,
					task.Title,
					formatter.FormatDate(task.StartTime),
					formatter.FormatDate(task.EndTime),
					dates.DayDifference(task.StartTime, task.EndTime),
				)
				if task.Description != "" {
					fmt.Fprintf(out, "    %s\n", task.Description)
				}
			}
			return nil
		},
	}
}
