package db

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	database, err := New(path)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() { _ = database.Close() }()

	if database.Path() != path {
		t.Errorf("Path() = %q, want %q", database.Path(), path)
	}

	// Schema is idempotent
	if err := database.createSchema(); err != nil {
		t.Errorf("createSchema() second run failed: %v", err)
	}
}

func TestVacuum(t *testing.T) {
	database := newTestDB(t)
	if err := database.Vacuum(); err != nil {
		t.Errorf("Vacuum() failed: %v", err)
	}
}
