package info

import (
	"strings"
	"testing"
	"time"

	"launchdeck/internal/app"
	"launchdeck/internal/config"
)

func TestNew(t *testing.T) {
	state := app.NewState()
	cfg := &config.Config{}
	m := New(state, cfg)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	m := New(app.NewState(), &config.Config{})
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestModel_Update(t *testing.T) {
	m := New(app.NewState(), &config.Config{})

	updated, _ := m.Update(nil)
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	cfg := &config.Config{
		APIBaseURL:    "https://api.spacexdata.com/v4",
		DatabasePath:  "/tmp/lookups.db",
		BookmarksPath: "/tmp/bookmarks.json",
		HTTPTimeout:   30 * time.Second,
		QueryPageSize: 100,
		MassWorkers:   5,
	}
	m := New(state, cfg)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Configuration") {
		t.Error("view should contain the configuration card")
	}
	if !strings.Contains(view, "api.spacexdata.com") {
		t.Error("view should show the API URL")
	}
	if !strings.Contains(view, "About Launchdeck") {
		t.Error("view should contain the about card")
	}
}

func TestModel_View_NilConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Configuration not loaded") {
		t.Error("nil config should render a placeholder")
	}
}

func TestModel_SetSize(t *testing.T) {
	m := New(app.NewState(), &config.Config{})
	m.SetSize(100, 50)
	if m.width != 100 || m.height != 50 {
		t.Errorf("SetSize stored %dx%d", m.width, m.height)
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState(), &config.Config{})
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp() should not be empty")
	}
}
