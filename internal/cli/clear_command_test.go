package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCommand_Execute(t *testing.T) {
	t.Run("deletes every task after confirmation", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)
		addTask(t, root, "Task one")
		addTask(t, root, "Task two")

		out, err := runCommand(t, root, "y\n", "clear")
		require.NoError(t, err)
		assert.Contains(t, out, "Are you sure you want to delete ALL tasks?")
		assert.Contains(t, out, "All tasks deleted.")

		out, err = runCommand(t, root, "", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "No tasks found")
	})

	t.Run("keeps the tasks when declined", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)
		addTask(t, root, "Task one")

		out, err := runCommand(t, root, "n\n", "clear")
		require.NoError(t, err)
		assert.Contains(t, out, "Clear cancelled.")

		out, err = runCommand(t, root, "", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Task one")
	})

	t.Run("skips the prompt with --yes", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)
		addTask(t, root, "Task one")

		out, err := runCommand(t, root, "", "clear", "--yes")
		require.NoError(t, err)
		assert.NotContains(t, out, "Are you sure")
		assert.Contains(t, out, "All tasks deleted.")
	})

	t.Run("clearing an empty list succeeds", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		out, err := runCommand(t, root, "", "clear", "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "All tasks deleted.")
	})
}
