package settingsstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type Repository interface {
	GetSetting(key string) (*entities.Setting, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

// Priority: database > environment > default
type SettingsStore struct {
	db  Repository
	env config.UsersSync
}

// New wraps db. env carries the values read from the environment at startup.
func New(db Repository, env config.UsersSync) *SettingsStore {
	return &SettingsStore{db: db, env: env}
}

func (s *SettingsStore) lookup(key string) (string, bool) {
	setting, err := s.db.GetSetting(key)
	if err != nil || setting.Value == "" {
		return "", false
	}
	return setting.Value, true
}

func (s *SettingsStore) clear(key string) error {
	err := s.db.DeleteSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
