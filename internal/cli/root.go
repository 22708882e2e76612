package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"nexttick/internal/api"
	"nexttick/internal/config"
	"nexttick/internal/errors"
	"nexttick/internal/navigation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	api          api.API
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "nt",
		Short: "NextTick is a local, single-user task manager",
		Long: `NextTick (nt) keeps a personal list of time-bounded tasks on this
device. Register once, log in, and manage tasks from the command line.

EXAMPLES:
  nt register --name "Ana Li" --email a@b.com --password secret12   # Create the local account
  nt login --email a@b.com --password secret12                     # Check in
  nt add --title "Write report" --start 2024-03-01 --end 2024-03-02
  nt list                                                          # Show all tasks
  nt delete 1700000000000                                          # Delete one task by id
  nt clear                                                         # Delete every task
  nt profile                                                       # Show the stored account
  nt logout                                                        # Clear the stored account

CONFIGURATION:
  NT_DB_DIR                     Database directory (default: ~/.nexttick)
  NT_DB_FILENAME                Database filename (default: nexttick.db)
  NT_DATE_FORMAT                Date display layout (default: 2006-01-02)
  NT_FORGOT_PASSWORD_URL        Password reset URL
  NT_DEBUG                      Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command, used by tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addSubcommands registers all subcommands
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.newRegisterCommand())
	r.cmd.AddCommand(r.newLoginCommand())
	r.cmd.AddCommand(r.newLogoutCommand())
	r.cmd.AddCommand(r.newProfileCommand())
	r.cmd.AddCommand(r.newAddCommand())
	r.cmd.AddCommand(r.newListCommand())
	r.cmd.AddCommand(r.newDeleteCommand())
	r.cmd.AddCommand(r.newClearCommand())
	r.cmd.AddCommand(r.newForgotPasswordCommand())
}

// requireScreen fails when the named screen is outside the gate's
// current reachable set
func (r *RootCommand) requireScreen(screen navigation.Screen) error {
	if r.api.IsReachable(screen) {
		return nil
	}
	if r.api.State() == navigation.StateAuthenticated {
		return errors.NewInvalidInputError("command", string(screen), "already logged in; run 'nt logout' first")
	}
	return errors.NewInvalidInputError("command", string(screen), "not logged in; run 'nt login' or 'nt register' first")
}

// confirm prompts for an explicit yes/no answer before a destructive
// operation runs
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
