package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nexttick/internal/api"
	"nexttick/internal/config"
	"nexttick/internal/repository/sqlite"
)

// setupTestRoot creates a root command backed by a real API over a
// temporary database
func setupTestRoot(t *testing.T) *RootCommand {
	t.Helper()

	cfg := config.NewConfig()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewRootCommand(api.New(context.Background(), cfg, store), cfg)
}

// runCommand executes the root command with the given arguments and
// returns the combined output
func runCommand(t *testing.T, root *RootCommand, stdin string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := root.Command()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// loginTestUser unlocks the task commands for the current run
func loginTestUser(t *testing.T, root *RootCommand) {
	t.Helper()

	_, err := runCommand(t, root, "",
		"login", "--email", "ana@example.com", "--password", "password1")
	require.NoError(t, err)
}
