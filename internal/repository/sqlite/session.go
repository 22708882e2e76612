package sqlite

import (
	"context"
	"encoding/json"

	"nexttick/internal/domain"
	"nexttick/internal/errors"
)

// userKey is the fixed record name the single user record persists under
const userKey = "user"

// SessionStore owns the at-most-one persisted user record. The store
// performs no validation; callers validate before writing.
type SessionStore struct {
	store RecordStore
}

// NewSessionStore creates a new session store over the given record store
func NewSessionStore(store RecordStore) *SessionStore {
	return &SessionStore{store: store}
}

// Read returns the persisted user record, or nil when absent.
func (s *SessionStore) Read(ctx context.Context) (*domain.UserRecord, error) {
	blob, found, err := s.store.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var record domain.UserRecord
	if err := json.Unmarshal([]byte(blob), &record); err != nil {
		return nil, errors.NewStorageError("decode user", err)
	}

	return &record, nil
}

// Write persists the record, overwriting any existing one. Single slot,
// no merge.
func (s *SessionStore) Write(ctx context.Context, record domain.UserRecord) error {
	blob, err := json.Marshal(record)
	if err != nil {
		return errors.NewStorageError("encode user", err)
	}

	return s.store.Put(ctx, userKey, string(blob))
}

// Clear removes the record entirely
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, userKey)
}
