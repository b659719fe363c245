// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	APIBaseURL       string
	DatabasePath     string
	BookmarksPath    string
	HTTPTimeout      time.Duration
	QueryPageSize    int
	MassWorkers      int
	SlowLookupNotify time.Duration
}

// Default values
const (
	defaultHTTPTimeout      = 30 * time.Second
	defaultQueryPageSize    = 100
	defaultMassWorkers      = 5
	defaultSlowLookupNotify = 10 * time.Second
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
		APIBaseURL:       getEnvString("SPACEX_API_URL", ""),
		DatabasePath:     getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		BookmarksPath:    getEnvString("BOOKMARKS_PATH", getDefaultBookmarksPath()),
		HTTPTimeout:      getEnvDuration("HTTP_TIMEOUT", defaultHTTPTimeout),
		QueryPageSize:    getEnvInt("QUERY_PAGE_SIZE", defaultQueryPageSize),
		MassWorkers:      getEnvInt("MASS_WORKERS", defaultMassWorkers),
		SlowLookupNotify: getEnvDuration("SLOW_LOOKUP_NOTIFY", defaultSlowLookupNotify),
	}

	// Ensure database directory exists
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	// Ensure bookmarks directory exists
	if err := ensureDir(filepath.Dir(cfg.BookmarksPath)); err != nil {
		return nil, err
	}

	return cfg, nil
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
			filepath.Join(home, ".config", "launchdeck", ".env"),
			filepath.Join(home, ".launchdeck", ".env"),
		)
	}

	// Parent directories (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		parent := filepath.Dir(cwd)
		paths = append(paths, filepath.Join(parent, ".env"))
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lookups.db"
	}
	return filepath.Join(home, ".config", "launchdeck", "lookups.db")
}

// getDefaultBookmarksPath returns the default path for the bookmarks JSON file.
func getDefaultBookmarksPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookmarks.json"
	}
	return filepath.Join(home, ".config", "launchdeck", "bookmarks.json")
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
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
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
