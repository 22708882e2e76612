package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nexttick/internal/errors"
	"nexttick/internal/navigation"
)

// newDeleteCommand creates the delete command
func (r *RootCommand) newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one task by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenTaskList); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return r.errorHandler.HandleSimple(
					errors.NewInvalidInputError("id", args[0], "must be an integer task id"))
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					"Are you sure you want to delete this task?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled.")
					return nil
				}
			}

			if err := r.api.DeleteTask(cmd.Context(), id); err != nil {
				return r.errorHandler.Handle("delete task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
