package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		API
		Database
		State
		Navigation
		Demo
		UsersSync
		Theme
		Covers
		Tracing
	}

	HTTP struct {
		Port int32
		Host string

		// CSRFSecret enables CSRF protection on mutating routes when non-empty
		CSRFSecret    string
		SecureCookies bool

		// AllowedOrigins enables CORS for browser clients served from elsewhere
		AllowedOrigins []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	API struct {
		BaseURL   string
		Timeout   time.Duration // 0 disables the client timeout
		RateLimit float64       // requests per second, 0 means unlimited
	}
	Database struct {
		Path string
	}
	State struct {
		EncryptionKey string // base64, 32 bytes
		Passphrase    string // used to derive a key when EncryptionKey is empty
	}
	Navigation struct {
		Delay time.Duration // artificial loading delay applied before each guarded route
	}
	Demo struct {
		Enabled  bool  // Block write operations on the local HTTP surface
		SeedData bool  // Populate users/books from the mock generator on first start
		Seed     int64 // Generator seed, 0 picks one from the clock

		// IncludeContent generates full book text. Adds roughly 20MB to the snapshot.
		IncludeContent bool
	}
	UsersSync struct {
		Enabled  bool
		Schedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Theme struct {
		FollowSystem bool
		PollSchedule string // Cron spec for colour-scheme polling
	}
	Tracing struct {
		Endpoint    string // OTLP/HTTP host:port, empty disables export
		Insecure    bool
		ServiceName string
	}
	Covers struct {
		CacheDir string // Empty means "covers" next to the database file
		Disabled bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("api_timeout", "30s")
	v.SetDefault("api_rate_limit", 0)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("state_encryption_key", "")
	v.SetDefault("state_passphrase", "")

	// Matches the 500ms fake delay the web client shipped with
	v.SetDefault("navigation_delay", "500ms")

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_seed_data", true)
	v.SetDefault("demo_seed", 0)
	v.SetDefault("demo_include_content", false)

	v.SetDefault("users_sync_enabled", false)
	v.SetDefault("users_sync_schedule", "*/15 * * * *")

	v.SetDefault("theme_follow_system", true)
	v.SetDefault("theme_poll_schedule", "@every 30s")

	v.SetDefault("otel_exporter_endpoint", "")
	v.SetDefault("otel_exporter_insecure", true)
	v.SetDefault("otel_service_name", "bookshelf")

	v.SetDefault("covers_cache_dir", "")
	v.SetDefault("covers_cache_disabled", false)

	return &Config{
		HTTP: HTTP{
			Port:          v.GetInt32("PORT"),
			Host:          v.GetString("HOST"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),

			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		API: API{
			BaseURL:   v.GetString("API_BASE_URL"),
			Timeout:   v.GetDuration("API_TIMEOUT"),
			RateLimit: v.GetFloat64("API_RATE_LIMIT"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		State: State{
			EncryptionKey: v.GetString("STATE_ENCRYPTION_KEY"),
			Passphrase:    v.GetString("STATE_PASSPHRASE"),
		},
		Navigation: Navigation{
			Delay: v.GetDuration("NAVIGATION_DELAY"),
		},
		Demo: Demo{
			Enabled:  v.GetBool("DEMO_MODE"),
			SeedData: v.GetBool("DEMO_SEED_DATA"),
			Seed:     v.GetInt64("DEMO_SEED"),

			IncludeContent: v.GetBool("DEMO_INCLUDE_CONTENT"),
		},
		UsersSync: UsersSync{
			Enabled:  v.GetBool("USERS_SYNC_ENABLED"),
			Schedule: v.GetString("USERS_SYNC_SCHEDULE"),
		},
		Theme: Theme{
			FollowSystem: v.GetBool("THEME_FOLLOW_SYSTEM"),
			PollSchedule: v.GetString("THEME_POLL_SCHEDULE"),
		},
		Tracing: Tracing{
			Endpoint:    v.GetString("OTEL_EXPORTER_ENDPOINT"),
			Insecure:    v.GetBool("OTEL_EXPORTER_INSECURE"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
		},
		Covers: Covers{
			CacheDir: v.GetString("COVERS_CACHE_DIR"),
			Disabled: v.GetBool("COVERS_CACHE_DISABLED"),
		},
	}
}

// splitList parses a comma-separated env value, dropping empty items.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
