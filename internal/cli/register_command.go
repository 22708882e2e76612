package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexttick/internal/domain"
	"nexttick/internal/navigation"
)

// newRegisterCommand creates the register command
func (r *RootCommand) newRegisterCommand() *cobra.Command {
	var fields domain.RegistrationFields

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create the local user account",
		Long: `Register creates the single local user account. Registration stores
the account on this device and returns to the login screen; log in (or
restart) to reach the task commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenRegister); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			if fields.ConfirmPassword == "" {
				fields.ConfirmPassword = fields.Password
			}

			route, err := r.api.Register(cmd.Context(), fields)
			if err != nil {
				return r.errorHandler.Handle("register", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered. Continue with 'nt %s'.\n", route)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fields.FullName, "name", "", "Full name (letters and spaces only)")
	flags.StringVar(&fields.Email, "email", "", "Email address")
	flags.StringVar(&fields.Password, "password", "", "Password (minimum 8 characters)")
	flags.StringVar(&fields.ConfirmPassword, "confirm", "", "Password confirmation (defaults to --password)")
	flags.StringVar(&fields.PhoneNumber, "phone", "", "Phone number")
	flags.StringVar(&fields.PhoneExt, "ext", "", "Phone extension")
	flags.StringVar(&fields.DateOfBirth, "dob", "", "Date of birth")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
