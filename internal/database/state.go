package database

import (
	"errors"
	"fmt"

	"github.com/mrlokans/bookshelf/internal/crypto"
	"github.com/mrlokans/bookshelf/internal/database/settings"
)

// ErrStateNotFound is returned when no snapshot has been saved under a key yet.
var ErrStateNotFound = errors.New("state not found")

// StateStore persists opaque store snapshots as settings rows.
// Snapshots contain plaintext credentials, so they are sealed when an encryptor is set.
type StateStore struct {
	db        *Database
	encryptor *crypto.Encryptor
}

// NewStateStore creates a StateStore. encryptor may be nil.
func NewStateStore(db *Database, encryptor *crypto.Encryptor) *StateStore {
	return &StateStore{db: db, encryptor: encryptor}
}

// LoadState returns the snapshot stored under key.
func (s *StateStore) LoadState(key string) ([]byte, error) {
	setting, err := s.db.GetSetting(key)
	if err != nil {
		if settings.IsNotFound(err) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load state %q: %w", key, err)
	}

	if s.encryptor == nil {
		return []byte(setting.Value), nil
	}

	plaintext, err := s.encryptor.DecryptString(setting.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt state %q: %w", key, err)
	}
	return []byte(plaintext), nil
}

// SaveState replaces the snapshot stored under key.
func (s *StateStore) SaveState(key string, data []byte) error {
	value := string(data)
	if s.encryptor != nil {
		sealed, err := s.encryptor.EncryptString(value)
		if err != nil {
			return fmt.Errorf("failed to encrypt state %q: %w", key, err)
		}
		value = sealed
	}

	if err := s.db.SetSetting(key, value); err != nil {
		return fmt.Errorf("failed to save state %q: %w", key, err)
	}
	return nil
}

// IsStateNotFound reports whether err means no snapshot exists.
func IsStateNotFound(err error) bool {
	return errors.Is(err, ErrStateNotFound)
}
