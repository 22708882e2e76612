package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexttick/internal/navigation"
)

// newProfileCommand creates the profile command
func (r *RootCommand) newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the stored account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.requireScreen(navigation.ScreenProfile); err != nil {
				return r.errorHandler.HandleSimple(err)
			}

			record, err := r.api.CurrentSession(cmd.Context())
			if err != nil {
				return r.errorHandler.Handle("read profile", err)
			}
			if record == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No account stored.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Full Name:       %s\n", record.FullName)
			fmt.Fprintf(out, "Email:           %s\n", record.Email)
			if record.PhoneNumber != "" {
				fmt.Fprintf(out, "Phone Number:    %s\n", record.PhoneNumber)
			}
			if record.PhoneExt != "" {
				fmt.Fprintf(out, "Phone Extension: %s\n", record.PhoneExt)
			}
			if record.DateOfBirth != "" {
				fmt.Fprintf(out, "Date of Birth:   %s\n", record.DateOfBirth)
			}
			return nil
		},
	}
}
