// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Supported dashboard languages.
const (
	LanguageIndonesian = "id"
	LanguageEnglish    = "en"
)

// Log levels accepted by LOG_LEVEL.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds the application configuration.
type Config struct {
	DayCSVPath    string `validate:"required"`
	HourCSVPath   string `validate:"required"`
	DatabasePath  string `validate:"required"`
	Language      string `validate:"required,oneof=id en"`
	ExportDir     string `validate:"required"`
	WatchFiles    bool
	DesktopNotify bool

	Log LogSettings
}

// LogSettings configures the rotating log file. An empty File disables logging.
type LogSettings struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	File       string
	MaxSizeMB  int `validate:"gte=1,lte=100"`
	MaxBackups int `validate:"gte=0,lte=10"`
	MaxAgeDays int `validate:"gte=1,lte=365"`
}

// Default values
const (
	defaultDayCSV        = "day.csv"
	defaultHourCSV       = "hour.csv"
	defaultExportDir     = "charts"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 28
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DayCSVPath:    getEnvString("DAY_CSV_PATH", workingDirPath(defaultDayCSV)),
		HourCSVPath:   getEnvString("HOUR_CSV_PATH", workingDirPath(defaultHourCSV)),
		DatabasePath:  getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		Language:      strings.ToLower(getEnvString("DASHBOARD_LANG", LanguageIndonesian)),
		ExportDir:     getEnvString("EXPORT_DIR", workingDirPath(defaultExportDir)),
		WatchFiles:    getEnvBool("WATCH_FILES", true),
		DesktopNotify: getEnvBool("DESKTOP_NOTIFY", false),
		Log: LogSettings{
			Level:      strings.ToLower(getEnvString("LOG_LEVEL", LogLevelInfo)),
			File:       getEnvString("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE", defaultLogMaxSizeMB),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", defaultLogMaxBackups),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE", defaultLogMaxAgeDays),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Ensure database directory exists
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "bike-rental-dashboard", ".env"),
		)
	}

	return paths
}

// workingDirPath resolves name against the current directory.
func workingDirPath(name string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return name
	}
	return filepath.Join(cwd, name)
}

// getDefaultDatabasePath returns the default path for the SQLite cache.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rentals.db"
	}
	return filepath.Join(home, ".config", "bike-rental-dashboard", "rentals.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
// Accepts the values understood by strconv.ParseBool.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
