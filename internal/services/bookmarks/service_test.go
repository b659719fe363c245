package bookmarks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"launchdeck/internal/models"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	tmpDir := t.TempDir()
	bookmarksPath := filepath.Join(tmpDir, "bookmarks.json")

	svc, err := New(bookmarksPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Logf("Close() failed: %v", err)
		}
	})

	return svc, bookmarksPath
}

func year2020() models.DateRange {
	return models.RangeBetween(
		models.NewDate(2020, time.January, 1),
		models.NewDate(2020, time.December, 31),
	)
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	bookmarksPath := filepath.Join(tmpDir, "bookmarks.json")

	svc, err := New(bookmarksPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() {
		_ = svc.Close()
	}()

	if _, err := os.Stat(bookmarksPath); err != nil {
		t.Errorf("bookmarks file was not created: %v", err)
	}
}

func TestAdd(t *testing.T) {
	svc, path := newTestService(t)

	if err := svc.Add("falcon-era", year2020()); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	bookmarks := svc.All()
	if len(bookmarks) != 1 {
		t.Fatalf("All() returned %d bookmarks, want 1", len(bookmarks))
	}
	if bookmarks[0].Name != "falcon-era" {
		t.Errorf("name = %q, want %q", bookmarks[0].Name, "falcon-era")
	}
	if bookmarks[0].AddedAt.IsZero() {
		t.Error("AddedAt should be set")
	}
	if got := bookmarks[0].Range().String(); got != "2020-01-01 .. 2020-12-31" {
		t.Errorf("range = %q", got)
	}

	// Persisted to disk
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read bookmarks file: %v", err)
	}
	var file BookmarksFile
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatalf("failed to parse bookmarks file: %v", err)
	}
	if len(file.Bookmarks) != 1 || file.Bookmarks[0].Name != "falcon-era" {
		t.Errorf("persisted file = %+v", file)
	}
}

func TestAdd_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Add("", year2020()); err == nil {
		t.Error("Add() with empty name should fail")
	}

	if err := svc.Add("dup", year2020()); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := svc.Add("dup", models.AllTime()); err == nil {
		t.Error("Add() with duplicate name should fail")
	}
	if svc.Count() != 1 {
		t.Errorf("Count() = %d, want 1", svc.Count())
	}
}

func TestGetAndDelete(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Add("all", models.AllTime()); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	got := svc.Get("all")
	if got == nil {
		t.Fatal("Get() returned nil for existing bookmark")
	}
	if !got.Range().Unbounded() {
		t.Errorf("range = %v, want unbounded", got.Range())
	}
	if svc.Get("missing") != nil {
		t.Error("Get() should return nil for unknown bookmark")
	}

	if err := svc.Delete("all"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if svc.Count() != 0 {
		t.Errorf("Count() = %d after delete, want 0", svc.Count())
	}
	if err := svc.Delete("all"); err == nil {
		t.Error("Delete() of missing bookmark should fail")
	}
}

func TestLoadExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	bookmarksPath := filepath.Join(tmpDir, "bookmarks.json")

	start := models.NewDate(2021, time.June, 1)
	file := BookmarksFile{
		Bookmarks: []models.Bookmark{{Name: "since-summer", Start: &start}},
		Version:   1,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	if err := os.WriteFile(bookmarksPath, data, 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	svc, err := New(bookmarksPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() {
		_ = svc.Close()
	}()

	got := svc.Get("since-summer")
	if got == nil {
		t.Fatal("existing bookmark not loaded")
	}
	if got.End != nil || got.Start == nil || got.Start.String() != "2021-06-01" {
		t.Errorf("loaded bookmark = %+v", got)
	}
}

func TestParseBookmarks_BareArray(t *testing.T) {
	data := []byte(`[{"name": "legacy"}]`)
	bookmarks, err := parseBookmarks(data)
	if err != nil {
		t.Fatalf("parseBookmarks() failed: %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].Name != "legacy" {
		t.Errorf("bookmarks = %+v", bookmarks)
	}

	if _, err := parseBookmarks([]byte("not json")); err == nil {
		t.Error("parseBookmarks() should reject invalid content")
	}
}

func TestExternalFileChangeEvent(t *testing.T) {
	svc, path := newTestService(t)

	// Drain startup events
	deadline := time.After(2 * time.Second)
	for drained := false; !drained; {
		select {
		case <-svc.Events():
		default:
			drained = true
		}
	}

	file := BookmarksFile{
		Bookmarks: []models.Bookmark{{Name: "external"}},
		Version:   1,
	}
	data, _ := json.Marshal(file)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to rewrite bookmarks file: %v", err)
	}

	for {
		select {
		case ev := <-svc.Events():
			if ev.Type == EventBookmarksChanged {
				if svc.Get("external") == nil {
					t.Error("external change not reloaded")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
