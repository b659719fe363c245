package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"launchdeck/internal/config"
	"launchdeck/internal/models"
)

// newFakeAPI serves a fixed catalog of launches and payload masses in the
// remote service's wire format.
func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	launches := []map[string]any{
		{"id": "L1", "date_unix": 1580000000, "payloads": []string{"P1"}},
		{"id": "L2", "date_unix": 1590000000, "payloads": []string{"P2", "P3"}},
	}
	payloads := []map[string]any{
		{"id": "P1", "mass_kg": 1200.0},
		{"id": "P2", "mass_kg": 3000.0},
		{"id": "P3", "mass_kg": 1500.0},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/launches/query", func(w http.ResponseWriter, r *http.Request) {
		writePage(t, w, launches)
	})
	mux.HandleFunc("/payloads/query", func(w http.ResponseWriter, r *http.Request) {
		writePage(t, w, payloads)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writePage(t *testing.T, w http.ResponseWriter, docs []map[string]any) {
	t.Helper()
	page := map[string]any{
		"docs":        docs,
		"totalDocs":   len(docs),
		"page":        1,
		"totalPages":  1,
		"hasNextPage": false,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		t.Errorf("failed to encode page: %v", err)
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	server := newFakeAPI(t)
	tmpDir := t.TempDir()

	cfg := &config.Config{
		APIBaseURL:    server.URL,
		DatabasePath:  filepath.Join(tmpDir, "lookups.db"),
		BookmarksPath: filepath.Join(tmpDir, "bookmarks.json"),
		HTTPTimeout:   5 * time.Second,
		QueryPageSize: 100,
		MassWorkers:   2,
		// Notification threshold high enough to never fire in tests
		SlowLookupNotify: time.Hour,
	}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Logf("Close() failed: %v", err)
		}
	})
	return m
}

func TestLookupRange(t *testing.T) {
	m := newTestManager(t)

	result, err := m.LookupRange(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("LookupRange() failed: %v", err)
	}

	if len(result.Launches) != 2 {
		t.Fatalf("got %d launches, want 2", len(result.Launches))
	}
	if result.Launches[0].TotalPayloadMassKg != 1200 {
		t.Errorf("L1 mass = %v, want 1200", result.Launches[0].TotalPayloadMassKg)
	}
	if result.Heaviest == nil || result.Heaviest.ID != "L2" {
		t.Fatalf("heaviest = %v, want L2", result.Heaviest)
	}
	if result.Heaviest.TotalPayloadMassKg != 4500 {
		t.Errorf("heaviest mass = %v, want 4500", result.Heaviest.TotalPayloadMassKg)
	}
}

func TestLookupRange_RecordsHistory(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.LookupRange(context.Background(), models.AllTime()); err != nil {
		t.Fatalf("LookupRange() failed: %v", err)
	}

	lookups, err := m.History(10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(lookups) != 1 {
		t.Fatalf("got %d history entries, want 1", len(lookups))
	}
	if lookups[0].LaunchCount != 2 || lookups[0].HeaviestID != "L2" {
		t.Errorf("recorded lookup = %+v", lookups[0])
	}

	stats, err := m.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.TotalLookups != 1 || stats.MaxHeaviestKg != 4500 {
		t.Errorf("stats = %+v", stats)
	}

	if err := m.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	lookups, err = m.History(10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(lookups) != 0 {
		t.Errorf("history not cleared: %+v", lookups)
	}
}

func TestHeaviestLaunch(t *testing.T) {
	m := newTestManager(t)

	got, err := m.HeaviestLaunch(context.Background(), models.AllTime())
	if err != nil {
		t.Fatalf("HeaviestLaunch() failed: %v", err)
	}
	if got == nil || got.ID != "L2" {
		t.Errorf("heaviest = %v, want L2", got)
	}
}

func TestBookmarkRoundTrip(t *testing.T) {
	m := newTestManager(t)

	r := models.RangeBetween(
		models.NewDate(2020, time.January, 1),
		models.NewDate(2020, time.December, 31),
	)
	if err := m.SaveBookmark("twenty-twenty", r); err != nil {
		t.Fatalf("SaveBookmark() failed: %v", err)
	}
	if m.Bookmarks().Get("twenty-twenty") == nil {
		t.Error("bookmark not stored")
	}
	if err := m.DeleteBookmark("twenty-twenty"); err != nil {
		t.Fatalf("DeleteBookmark() failed: %v", err)
	}
	if m.Bookmarks().Get("twenty-twenty") != nil {
		t.Error("bookmark not removed")
	}
}

func TestSubscribeReceivesLookupEvents(t *testing.T) {
	m := newTestManager(t)

	ch, _ := m.Subscribe()
	defer m.Unsubscribe(ch)

	if _, err := m.LookupRange(context.Background(), models.AllTime()); err != nil {
		t.Fatalf("LookupRange() failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	var sawStarted, sawCompleted bool
	for !(sawStarted && sawCompleted) {
		select {
		case ev := <-ch:
			switch ev.(type) {
			case LookupStartedEvent:
				sawStarted = true
			case LookupCompletedEvent:
				sawCompleted = true
			}
		case <-deadline:
			t.Fatalf("missing events: started=%v completed=%v", sawStarted, sawCompleted)
		}
	}
}
