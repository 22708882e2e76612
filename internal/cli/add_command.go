package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"nexttick/internal/domain"
	"nexttick/internal/errors"
	"nexttick/internal/navigation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// acceptedTimeLayouts are tried in order when parsing --start and --end
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// newAddCommand creates the add command
func (r *RootCommand) newAddCommand() *cobra.Command {
	var (
		title       string
		description string
		start       string
		end         string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Add creates a new time-bounded task. Start and end accept a date
(2006-01-02), a date with time (2006-01-02 15:04), an RFC3339
timestamp, or epoch milliseconds; both default to now.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenNewTask); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			startMillis, err := parseTimestamp(start)
			if err != nil {
				return r.errorHandler.HandleSimple(err)
			}
			endMillis, err := parseTimestamp(end)
			if err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			task, err := r.api.SubmitTask(cmd.Context(), domain.TaskDraft{
				Title:       title,
				Description: description,
				StartTime:   startMillis,
				EndTime:     endMillis,
			})
			if err != nil {
				return r.errorHandler.Handle("add task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "Task title (1-100 characters)")
	flags.StringVar(&description, "description", "", "Task description (up to 300 characters)")
	flags.StringVar(&start, "start", "", "Start time (defaults to now)")
	flags.StringVar(&end, "end", "", "End time (defaults to now)")
	cmd.MarkFlagRequired("title")

	return cmd
}

// parseTimestamp converts user time input to epoch milliseconds. An
// empty value means now.
func parseTimestamp(value string) (int64, error) {
	if value == "" {
		return timeNow().UnixMilli(), nil
	}

	for _, layout := range acceptedTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.UnixMilli(), nil
		}
	}

	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return millis, nil
	}

	return 0, errors.NewInvalidInputError("time", value,
		"expected 2006-01-02, 2006-01-02 15:04, RFC3339, or epoch milliseconds")
}
