package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Execute(t *testing.T) {
	t.Run("creates a task with explicit times", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		out, err := runCommand(t, root, "",
			"add",
			"--title", "Write report",
			"--description", "Quarterly numbers",
			"--start", "2024-03-01",
			"--end", "2024-03-02")
		require.NoError(t, err)
		assert.Contains(t, out, "Created task")
		assert.Contains(t, out, "Write report")
	})

	t.Run("defaults start and end to now", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		out, err := runCommand(t, root, "", "add", "--title", "Quick task")
		require.NoError(t, err)
		assert.Contains(t, out, "Created task")
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		_, err := runCommand(t, root, "", "add", "--title", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Task title must be between 1 and 100 characters.")
	})

	t.Run("rejects an overlong description", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		_, err := runCommand(t, root, "",
			"add", "--title", "Task", "--description", strings.Repeat("d", 301))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Task description must not exceed 300 characters.")
	})

	t.Run("rejects an end before the start", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		_, err := runCommand(t, root, "",
			"add", "--title", "Task", "--start", "2024-03-02", "--end", "2024-03-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "End date can't be before the start date!")
	})

	t.Run("rejects unparseable times", func(t *testing.T) {
		root := setupTestRoot(t)
		loginTestUser(t, root)

		_, err := runCommand(t, root, "",
			"add", "--title", "Task", "--start", "yesterday")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid input for time")
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("empty value means now", func(t *testing.T) {
		fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		previous := timeNow
		timeNow = func() time.Time { return fixed }
		defer func() { timeNow = previous }()

		millis, err := parseTimestamp("")
		require.NoError(t, err)
		assert.Equal(t, fixed.UnixMilli(), millis)
	})

	t.Run("parses accepted layouts", func(t *testing.T) {
		for _, value := range []string{
			"2024-03-01",
			"2024-03-01 15:04",
			"2024-03-01T15:04",
			"2024-03-01T15:04:05Z",
		} {
			millis, err := parseTimestamp(value)
			require.NoError(t, err, "value %q should parse", value)
			assert.Positive(t, millis)
		}
	})

	t.Run("passes epoch milliseconds through", func(t *testing.T) {
		millis, err := parseTimestamp("1700000000000")
		require.NoError(t, err)
		assert.Equal(t, int64(1700000000000), millis)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := parseTimestamp("not a time")
		assert.Error(t, err)
	})
}
