package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexttick/internal/domain"
	"nexttick/internal/navigation"
)

// newLoginCommand creates the login command
func (r *RootCommand) newLoginCommand() *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		Long: `Login checks the email and password shape and unlocks the task
commands for this run. The credentials are not compared against the
stored account; any well-formed pair is accepted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenLogin); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			if _, err := r.api.Login(creds); err != nil {
				return r.errorHandler.Handle("login", err)
			}

			record, err := r.api.CurrentSession(cmd.Context())
			if err == nil && record != nil && record.FullName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", record.FullName)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&creds.Email, "email", "", "Email address")
	flags.StringVar(&creds.Password, "password", "", "Password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
