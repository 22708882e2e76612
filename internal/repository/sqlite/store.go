package sqlite

import (
	"context"
	"database/sql"

	"nexttick/internal/errors"
	"nexttick/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// RecordStore defines the persisted key/value blob mechanism shared by
// the task and session stores. Each key holds one serialized JSON blob;
// an absent key is not an error.
type RecordStore interface {
	// Get returns the blob stored under key. The boolean reports
	// whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores the blob under key, overwriting any existing value.
	Put(ctx context.Context, key string, value string) error

	// Delete removes the key entirely; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Utility
	Close() error
}

// SQLiteRecordStore implements RecordStore over a single records table
type SQLiteRecordStore struct {
	db *sql.DB
}

// New creates a new SQLite record store instance
func New(dbPath string) (*SQLiteRecordStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRecordStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

// Get returns the blob stored under key, reporting absence without error
func (s *SQLiteRecordStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM records WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("read record "+key, err)
	}

	return value, true, nil
}

// Put stores the blob under key, overwriting any existing value
func (s *SQLiteRecordStore) Put(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO records (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("write record "+key, err)
	}

	return nil
}

// Delete removes the key entirely
func (s *SQLiteRecordStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM records WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewStorageError("delete record "+key, err)
	}

	return nil
}
