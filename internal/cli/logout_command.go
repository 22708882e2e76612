package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexttick/internal/navigation"
)

// newLogoutCommand creates the logout command
func (r *RootCommand) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and remove the stored account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenProfile); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			route, err := r.api.Logout(cmd.Context())
			if err != nil {
				return r.errorHandler.Handle("logout", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged out. Continue with 'nt %s'.\n", route)
			return nil
		},
	}
}
