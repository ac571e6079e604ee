package entities

import (
	"time"
)

// Setting is a persisted key/value row. Stores serialize their state into it.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Session/domain store snapshot (JSON, optionally encrypted)
	SettingKeyUserStore = "user"

	// Theme preferences, one row per field
	SettingKeyThemeDarkMode         = "theme.isDarkMode"
	SettingKeyThemeReaderFontSize   = "theme.readerFontSize"
	SettingKeyThemeReaderLineHeight = "theme.readerLineHeight"
	SettingKeyThemeReaderFontFamily = "theme.readerFontFamily"
)

// Users sync overrides and last-run status
const (
	SettingKeyUsersSyncEnabled     = "users_sync.enabled"
	SettingKeyUsersSyncSchedule    = "users_sync.schedule"
	SettingKeyUsersSyncLastAt      = "users_sync.last_at"
	SettingKeyUsersSyncLastStatus  = "users_sync.last_status"
	SettingKeyUsersSyncLastMessage = "users_sync.last_message"
)
