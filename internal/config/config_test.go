package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	os.Setenv(key, val)
	defer os.Unsetenv(key)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_ENV_INT"

	tests := []struct {
		name   string
		envVal string
		want   int
	}{
		{"Valid", "42", 42},
		{"Zero", "0", 7},
		{"Negative", "-3", 7},
		{"Invalid", "lots", 7},
		{"Empty", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvInt(key, 7); got != tt.want {
				t.Errorf("getEnvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("directory was not created")
	}

	if err := ensureDir(""); err != nil {
		t.Error("ensureDir(\"\") should not error")
	}
}

func TestGetDefaultPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Skipping test because user home dir cannot be found")
	}

	dbPath := getDefaultDatabasePath()
	expectedDB := filepath.Join(home, ".config", "launchdeck", "lookups.db")
	if dbPath != expectedDB {
		t.Errorf("getDefaultDatabasePath() = %q, want %q", dbPath, expectedDB)
	}

	bmPath := getDefaultBookmarksPath()
	expectedBM := filepath.Join(home, ".config", "launchdeck", "bookmarks.json")
	if bmPath != expectedBM {
		t.Errorf("getDefaultBookmarksPath() = %q, want %q", bmPath, expectedBM)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("DATABASE_PATH", filepath.Join(tmpDir, "db", "lookups.db"))
	t.Setenv("BOOKMARKS_PATH", filepath.Join(tmpDir, "bookmarks.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultHTTPTimeout)
	}
	if cfg.QueryPageSize != defaultQueryPageSize {
		t.Errorf("QueryPageSize = %d, want %d", cfg.QueryPageSize, defaultQueryPageSize)
	}
	if cfg.MassWorkers != defaultMassWorkers {
		t.Errorf("MassWorkers = %d, want %d", cfg.MassWorkers, defaultMassWorkers)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "db")); os.IsNotExist(err) {
		t.Error("database directory was not created")
	}
}
