package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutCommand_Execute(t *testing.T) {
	t.Run("logs out and removes the stored account", func(t *testing.T) {
		root := setupTestRoot(t)

		_, err := runCommand(t, root, "",
			"register",
			"--name", "Ana Li",
			"--email", "ana@example.com",
			"--password", "password1")
		require.NoError(t, err)
		loginTestUser(t, root)

		out, err := runCommand(t, root, "", "logout")
		require.NoError(t, err)
		assert.Contains(t, out, "Logged out. Continue with 'nt login'.")

		// Task commands are locked again
		_, err = runCommand(t, root, "", "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")

		// The stored account is gone; logging back in shows no name
		loginTestUser(t, root)
		out, err = runCommand(t, root, "", "profile")
		require.NoError(t, err)
		assert.Contains(t, out, "No account stored.")
	})
}
