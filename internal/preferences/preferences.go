// Package preferences keeps the display preferences: dark mode and the reader's
// typography. Every field is persisted as its own settings row and restored by Load.
package preferences

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	DefaultReaderFontSize   = 18
	DefaultReaderLineHeight = 1.6
	DefaultReaderFontFamily = "Georgia"
)

const themePrefix = "theme."

// Theme is the snapshot of all display preferences.
type Theme struct {
	IsDarkMode       bool    `json:"isDarkMode"`
	ReaderFontSize   int     `json:"readerFontSize"`
	ReaderLineHeight float64 `json:"readerLineHeight"`
	ReaderFontFamily string  `json:"readerFontFamily"`
}

func DefaultTheme() Theme {
	return Theme{
		IsDarkMode:       false,
		ReaderFontSize:   DefaultReaderFontSize,
		ReaderLineHeight: DefaultReaderLineHeight,
		ReaderFontFamily: DefaultReaderFontFamily,
	}
}

// SettingsRepository is the slice of the database the store needs.
type SettingsRepository interface {
	GetSettingsByPrefix(prefix string) (map[string]string, error)
	SetSetting(key, value string) error
}

// Store holds the current Theme. Setters do no validation.
type Store struct {
	repo SettingsRepository

	mu    sync.RWMutex
	theme Theme
}

// New creates a store with default values. repo may be nil to keep preferences in memory.
func New(repo SettingsRepository) *Store {
	return &Store{repo: repo, theme: DefaultTheme()}
}

// Load replaces the in-memory values with persisted ones. Unparseable rows are
// skipped and the current value kept.
func (s *Store) Load() error {
	if s.repo == nil {
		return nil
	}

	values, err := s.repo.GetSettingsByPrefix(themePrefix)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range values {
		value = strings.TrimSpace(value)
		switch key {
		case entities.SettingKeyThemeDarkMode:
			if v, err := strconv.ParseBool(value); err == nil {
				s.theme.IsDarkMode = v
				continue
			}
		case entities.SettingKeyThemeReaderFontSize:
			if v, err := strconv.Atoi(value); err == nil {
				s.theme.ReaderFontSize = v
				continue
			}
		case entities.SettingKeyThemeReaderLineHeight:
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				s.theme.ReaderLineHeight = v
				continue
			}
		case entities.SettingKeyThemeReaderFontFamily:
			s.theme.ReaderFontFamily = value
			continue
		default:
			continue
		}
		log.Printf("Preferences: ignoring invalid value %q for %s", value, key)
	}
	return nil
}

func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme.IsDarkMode
}

func (s *Store) ToggleDarkMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme.IsDarkMode = !s.theme.IsDarkMode
	s.persist(entities.SettingKeyThemeDarkMode, strconv.FormatBool(s.theme.IsDarkMode))
}

func (s *Store) SetDarkMode(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme.IsDarkMode = dark
	s.persist(entities.SettingKeyThemeDarkMode, strconv.FormatBool(dark))
}

func (s *Store) ChangeReaderFontSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme.ReaderFontSize = size
	s.persist(entities.SettingKeyThemeReaderFontSize, strconv.Itoa(size))
}

func (s *Store) ChangeReaderLineHeight(height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme.ReaderLineHeight = height
	s.persist(entities.SettingKeyThemeReaderLineHeight, strconv.FormatFloat(height, 'f', -1, 64))
}

func (s *Store) ChangeReaderFontFamily(family string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme.ReaderFontFamily = family
	s.persist(entities.SettingKeyThemeReaderFontFamily, family)
}

// persist writes one row. Callers hold the lock. Failures are logged only.
func (s *Store) persist(key, value string) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SetSetting(key, value); err != nil {
		log.Printf("Preferences: failed to save %s: %v", key, err)
	}
}
