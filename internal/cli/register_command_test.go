package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCommand_Execute(t *testing.T) {
	t.Run("registers and routes back to login", func(t *testing.T) {
		root := setupTestRoot(t)

		out, err := runCommand(t, root, "",
			"register",
			"--name", "Ana Li",
			"--email", "ana@example.com",
			"--password", "password1")
		require.NoError(t, err)
		assert.Contains(t, out, "Registered. Continue with 'nt login'.")

		// Registration alone does not unlock the task commands
		_, err = runCommand(t, root, "", "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		root := setupTestRoot(t)

		_, err := runCommand(t, root, "",
			"register", "--email", "not-an-email", "--password", "password1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format.")
	})

	t.Run("rejects short password", func(t *testing.T) {
		root := setupTestRoot(t)

		_, err := runCommand(t, root, "",
			"register", "--email", "ana@example.com", "--password", "short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Password must be at least 8 characters long.")
	})

	t.Run("rejects mismatched confirmation", func(t *testing.T) {
		root := setupTestRoot(t)

		_, err := runCommand(t, root, "",
			"register",
			"--email", "ana@example.com",
			"--password", "password1",
			"--confirm", "password2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Passwords do not match.")
	})

	t.Run("sanitizes the stored full name", func(t *testing.T) {
		root := setupTestRoot(t)

		_, err := runCommand(t, root, "",
			"register",
			"--name", "Ana-Li 3rd!",
			"--email", "ana@example.com",
			"--password", "password1")
		require.NoError(t, err)

		loginTestUser(t, root)

		out, err := runCommand(t, root, "", "profile")
		require.NoError(t, err)
		assert.Contains(t, out, "AnaLi rd")
	})
}
