package cli

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"nexttick/internal/logging"
)

// newForgotPasswordCommand creates the forgot-password command
func (r *RootCommand) newForgotPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password",
		Short: "Open the external password reset page",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := r.api.ForgotPasswordURL()
			fmt.Fprintf(cmd.OutOrStdout(), "Password reset: %s\n", url)

			// Fire-and-forget; the result is not consumed
			openBrowser(url)
			return nil
		},
	}
}

// openBrowser launches the default browser for the URL, best effort
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		logging.Debugf("failed to open browser: %v\n", err)
	}
}
