package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/language"
)

// Version is stamped at build time with -ldflags "-X ...config.Version=".
var Version = "0.1.0"

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Version string

	// Storage
	DataDir    string
	DBPath     string
	MarkerPath string

	// RPC surface for the UI, loopback only
	Addr  string
	UIURL string // where the calendar/editor pages are served, optional

	// Reminders
	CheckOnStart   bool
	Location       *time.Location
	DailyCheckSpec string
	ReminderSpec   string
	NotifierMode   string // "desktop" or "log"
	Language       language.Tag

	// Editor
	SyncDebounce time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	appEnv := envString("APP_ENV", "production")
	dataDir := envPath("DATA_DIR", "~/.millers-journal")

	cfg := &Config{
		AppName: envString("APP_NAME", "Miller's Journal"),
		AppEnv:  appEnv,
		Version: Version,

		DataDir:    dataDir,
		DBPath:     envPath("DB_PATH", filepath.Join(dataDir, "millers-journal.db")),
		MarkerPath: envPath("MARKER_PATH", filepath.Join(dataDir, "mj_config.json")),

		Addr:  envString("ADDR", "127.0.0.1:7767"),
		UIURL: envString("UI_URL", ""),

		CheckOnStart:   envBool("CHECK_ON_START", true),
		Location:       envLocation("TIMEZONE", time.Local),
		DailyCheckSpec: envString("DAILY_CHECK_SPEC", "0 9 * * *"),
		ReminderSpec:   envString("REMINDER_SPEC", "0 * * * *"),
		NotifierMode:   envString("NOTIFIER", defaultNotifier(appEnv)),
		Language:       envLanguage("LANGUAGE", language.English),

		SyncDebounce: envDuration("SYNC_DEBOUNCE", 600*time.Millisecond),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	return cfg
}

func defaultNotifier(appEnv string) string {
	if appEnv == "development" {
		return "log"
	}
	return "desktop"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

// envPath reads a path and expands a leading ~ to the user's home.
func envPath(key, def string) string {
	v := envString(key, def)
	expanded, err := homedir.Expand(v)
	if err != nil {
		slog.Warn("config invalid path, using as is", "key", key, "value", v, "error", err)
		return v
	}
	return expanded
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envLocation(key string, def *time.Location) *time.Location {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		slog.Warn("config invalid time zone, using default", "key", key, "value", v, "default", def.String())
		return def
	}
	return loc
}

func envLanguage(key string, def language.Tag) language.Tag {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	tag, err := language.Parse(v)
	if err != nil {
		slog.Warn("config invalid language, using default", "key", key, "value", v, "default", def.String())
		return def
	}
	return tag
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
