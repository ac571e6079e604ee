package settingsstore

import (
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// DefaultUsersSyncSchedule is used when neither the database nor the
// environment provide one.
const DefaultUsersSyncSchedule = "*/15 * * * *"

// UsersSyncConfig is the effective configuration for the periodic user refresh
type UsersSyncConfig struct {
	Enabled  bool   `json:"enabled"`
	Schedule string `json:"schedule"`
}

// UsersSyncConfigInfo includes source information for each field
type UsersSyncConfigInfo struct {
	Enabled       bool   `json:"enabled"`
	EnabledSource string `json:"enabled_source"` // "database", "environment", "default"

	Schedule       string `json:"schedule"`
	ScheduleSource string `json:"schedule_source"`
}

// UsersSyncStatus is the outcome of the last run
type UsersSyncStatus struct {
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	Status     string     `json:"status,omitempty"` // "success", "failed", ""
	Message    string     `json:"message,omitempty"`
}

func (s *SettingsStore) GetUsersSyncEnabled() bool {
	if v, ok := s.lookup(entities.SettingKeyUsersSyncEnabled); ok {
		return v == "true" || v == "1"
	}
	return s.env.Enabled
}

func (s *SettingsStore) GetUsersSyncEnabledSource() string {
	if _, ok := s.lookup(entities.SettingKeyUsersSyncEnabled); ok {
		return "database"
	}
	if s.env.Enabled {
		return "environment"
	}
	return "default"
}

func (s *SettingsStore) SetUsersSyncEnabled(enabled bool) error {
	return s.db.SetSetting(entities.SettingKeyUsersSyncEnabled, strconv.FormatBool(enabled))
}

func (s *SettingsStore) GetUsersSyncSchedule() string {
	if v, ok := s.lookup(entities.SettingKeyUsersSyncSchedule); ok {
		return v
	}
	if s.env.Schedule != "" {
		return s.env.Schedule
	}
	return DefaultUsersSyncSchedule
}

func (s *SettingsStore) GetUsersSyncScheduleSource() string {
	if _, ok := s.lookup(entities.SettingKeyUsersSyncSchedule); ok {
		return "database"
	}
	if s.env.Schedule != "" && s.env.Schedule != DefaultUsersSyncSchedule {
		return "environment"
	}
	return "default"
}

// SetUsersSyncSchedule validates schedule before saving it
func (s *SettingsStore) SetUsersSyncSchedule(schedule string) error {
	if err := ValidateCronSchedule(schedule); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyUsersSyncSchedule, schedule)
}

func (s *SettingsStore) GetUsersSyncConfig() UsersSyncConfig {
	return UsersSyncConfig{
		Enabled:  s.GetUsersSyncEnabled(),
		Schedule: s.GetUsersSyncSchedule(),
	}
}

func (s *SettingsStore) GetUsersSyncConfigInfo() UsersSyncConfigInfo {
	return UsersSyncConfigInfo{
		Enabled:        s.GetUsersSyncEnabled(),
		EnabledSource:  s.GetUsersSyncEnabledSource(),
		Schedule:       s.GetUsersSyncSchedule(),
		ScheduleSource: s.GetUsersSyncScheduleSource(),
	}
}

func (s *SettingsStore) GetUsersSyncStatus() UsersSyncStatus {
	status := UsersSyncStatus{}

	if v, ok := s.lookup(entities.SettingKeyUsersSyncLastAt); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			status.LastSyncAt = &ts
		}
	}
	status.Status, _ = s.lookup(entities.SettingKeyUsersSyncLastStatus)
	status.Message, _ = s.lookup(entities.SettingKeyUsersSyncLastMessage)

	return status
}

func (s *SettingsStore) SetUsersSyncStatus(status, message string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.db.SetSetting(entities.SettingKeyUsersSyncLastAt, now); err != nil {
		return err
	}
	if err := s.db.SetSetting(entities.SettingKeyUsersSyncLastStatus, status); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyUsersSyncLastMessage, message)
}

// ClearUsersSyncSettings drops the database overrides, reverting to env/default
func (s *SettingsStore) ClearUsersSyncSettings() error {
	for _, key := range []string{entities.SettingKeyUsersSyncEnabled, entities.SettingKeyUsersSyncSchedule} {
		if err := s.clear(key); err != nil {
			return err
		}
	}
	return nil
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateCronSchedule accepts five-field specs and descriptors like "@hourly"
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// GetCronDescription returns a human-readable description of a cron schedule
func GetCronDescription(schedule string) string {
	switch schedule {
	case "*/5 * * * *":
		return "Every 5 minutes"
	case "*/15 * * * *":
		return "Every 15 minutes"
	case "*/30 * * * *":
		return "Every 30 minutes"
	case "0 * * * *":
		return "Every hour at :00"
	case "0 0 * * *":
		return "Daily at midnight"
	default:
		return "Custom schedule: " + schedule
	}
}

// GetNextRunTime calculates when the schedule next fires after from
func GetNextRunTime(schedule string, from time.Time) (*time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(from)
	return &next, nil
}
