package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexttick/internal/navigation"
)

// newClearCommand creates the clear command
func (r *RootCommand) newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenTaskList); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					"Are you sure you want to delete ALL tasks?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Clear cancelled.")
					return nil
				}
			}

			if err := r.api.DeleteAllTasks(cmd.Context()); err != nil {
				return r.errorHandler.Handle("delete all tasks", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All tasks deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
