package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("should be disabled when NT_DEBUG is unset", func(t *testing.T) {
		t.Setenv("NT_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("should be enabled when NT_DEBUG is set", func(t *testing.T) {
		t.Setenv("NT_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})

	t.Run("should be enabled for any non-empty value", func(t *testing.T) {
		t.Setenv("NT_DEBUG", "true")
		assert.True(t, DebugEnabled())
	})
}
