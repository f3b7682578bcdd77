// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/j-veylop/workload-dashboard-tui/internal/db"
)

// Config holds the application configuration.
type Config struct {
	Location             *time.Location
	DatabaseDriver       string
	DatabasePath         string
	DatabaseDSN          string
	Timezone             string
	LogPath              string
	LogLevel             string
	CostPerCall          float64
	DefaultRangeDays     int
	RefreshDebounce      time.Duration
	WatchDatabase        bool
	DesktopNotifications bool
}

// Default values
const (
	defaultDriver           = db.DriverSQLite
	defaultTimezone         = "Asia/Seoul"
	defaultCostPerCall      = 0.25
	defaultRangeDays        = 365
	defaultRefreshDebounce  = 500 * time.Millisecond
	defaultLogLevel         = "info"
	defaultMySQLPort        = "3306"
	appConfigDirName        = "wdt"
	defaultDatabaseFileName = "workload.db"
	defaultLogFileName      = "wdt.log"
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
		DatabaseDriver:       strings.ToLower(getEnvString("DATABASE_DRIVER", defaultDriver)),
		DatabasePath:         getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		DatabaseDSN:          getEnvString("DATABASE_DSN", ""),
		Timezone:             getEnvString("DASHBOARD_TIMEZONE", defaultTimezone),
		CostPerCall:          getEnvFloat("COST_PER_CALL", defaultCostPerCall),
		DefaultRangeDays:     getEnvInt("DEFAULT_RANGE_DAYS", defaultRangeDays),
		WatchDatabase:        getEnvBool("WATCH_DATABASE", true),
		DesktopNotifications: getEnvBool("DESKTOP_NOTIFICATIONS", true),
		LogPath:              getEnvString("LOG_PATH", getDefaultLogPath()),
		LogLevel:             getEnvString("LOG_LEVEL", defaultLogLevel),
		RefreshDebounce:      getEnvDuration("REFRESH_DEBOUNCE", defaultRefreshDebounce),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.CostPerCall <= 0 {
		cfg.CostPerCall = defaultCostPerCall
	}
	if cfg.DefaultRangeDays < 1 {
		cfg.DefaultRangeDays = defaultRangeDays
	}

	switch cfg.DatabaseDriver {
	case db.DriverSQLite:
	case db.DriverMySQL:
		if cfg.DatabaseDSN == "" {
			cfg.DatabaseDSN = mysqlParamsFromEnv().DSN(loc)
		}
		// Only a local SQLite file can be watched.
		cfg.WatchDatabase = false
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q (want %s or %s)",
			cfg.DatabaseDriver, db.DriverSQLite, db.DriverMySQL)
	}

	// Ensure log directory exists
	if cfg.LogPath != "" {
		if err := ensureDir(filepath.Dir(cfg.LogPath)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DBOptions returns the record store options for read-only dashboard access.
func (c *Config) DBOptions() db.Options {
	opts := db.Options{
		Driver:   c.DatabaseDriver,
		Location: c.Location,
	}
	if c.DatabaseDriver == db.DriverMySQL {
		opts.DSN = c.DatabaseDSN
	} else {
		opts.DSN = c.DatabasePath
	}
	return opts
}

// Source describes the configured record store without credentials.
func (c *Config) Source() string {
	if c.DatabaseDriver == db.DriverMySQL {
		return "mysql " + redactDSN(c.DatabaseDSN)
	}
	return "sqlite " + c.DatabasePath
}

// redactDSN strips the password from a user:password@... DSN.
func redactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	creds := dsn[:at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		creds = creds[:colon] + ":****"
	}
	return creds + dsn[at:]
}

func mysqlParamsFromEnv() db.MySQLParams {
	return db.MySQLParams{
		Host:     getEnvString("DB_HOST", "localhost"),
		Port:     getEnvString("DB_PORT", defaultMySQLPort),
		User:     getEnvString("DB_USER", ""),
		Password: getEnvString("DB_PASSWORD", ""),
		Database: getEnvString("DB_NAME", ""),
	}
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
		paths = append(paths, filepath.Join(home, ".config", appConfigDirName, ".env"))
	}

	// Parent directories (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		parent := filepath.Dir(cwd)
		paths = append(paths, filepath.Join(parent, ".env"))
		grandparent := filepath.Dir(parent)
		paths = append(paths, filepath.Join(grandparent, ".env"))
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDatabaseFileName
	}
	return filepath.Join(home, ".config", appConfigDirName, defaultDatabaseFileName)
}

// getDefaultLogPath returns the default path for the log file.
func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultLogFileName
	}
	return filepath.Join(home, ".config", appConfigDirName, defaultLogFileName)
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

// getEnvFloat retrieves a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
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
