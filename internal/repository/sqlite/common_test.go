package sqlite

import (
	"path/filepath"
	"testing"

	"nexttick/internal/validation"

	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteRecordStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nexttick.db")
	store, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func setupTaskRepository(t *testing.T) *TaskRepository {
	t.Helper()
	return setupTaskRepositoryOver(t, setupTestStore(t))
}

func setupTaskRepositoryOver(t *testing.T, store RecordStore) *TaskRepository {
	t.Helper()
	return NewTaskRepository(store, validation.NewTaskValidator())
}

// withFixedClock pins the id clock for the duration of a test
func withFixedClock(t *testing.T, millis int64) {
	t.Helper()

	previous := nowMillis
	nowMillis = func() int64 { return millis }
	t.Cleanup(func() {
		nowMillis = previous
	})
}
