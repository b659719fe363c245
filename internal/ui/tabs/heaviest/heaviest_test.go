package heaviest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"launchdeck/internal/app"
	"launchdeck/internal/models"
	"launchdeck/internal/services"
)

func resultWithHeaviest() *services.LookupResult {
	l1 := models.WeighedLaunch{
		Launch: models.Launch{
			ID:         "5e9d0d95eda69955f709d1eb",
			LaunchTime: time.Date(2020, 1, 7, 2, 19, 0, 0, time.UTC),
			PayloadIDs: []string{"P1"},
		},
		TotalPayloadMassKg: 1200,
	}
	l2 := models.WeighedLaunch{
		Launch: models.Launch{
			ID:         "5e9d0d95eda69973a809d1ec",
			LaunchTime: time.Date(2020, 5, 30, 19, 22, 0, 0, time.UTC),
			PayloadIDs: []string{"P2", "P3"},
		},
		TotalPayloadMassKg: 4500,
	}
	return &services.LookupResult{
		Range:    models.AllTime(),
		Launches: []models.WeighedLaunch{l1, l2},
		Heaviest: &l2,
	}
}

func TestNew(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_View_NoResult(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Run a lookup first") {
		t.Error("View should show the empty hint")
	}
}

func TestModel_View_EmptyRange(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetResult(&services.LookupResult{
		Range:    models.AllTime(),
		Launches: []models.WeighedLaunch{},
	})
	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "No launches in this range") {
		t.Error("View should state the range is empty")
	}
}

func TestModel_View_WithHeaviest(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetResult(resultWithHeaviest())
	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "HEAVIEST") {
		t.Error("View should show the heaviest badge")
	}
	if !strings.Contains(view, "5e9d0d95eda69973a809d1ec") {
		t.Error("View should show the heaviest launch ID")
	}
	if !strings.Contains(view, "4.5 t") {
		t.Error("View should show the formatted mass")
	}
	if !strings.Contains(view, "Top Launches by Mass") {
		t.Error("View should show the ranking")
	}
}

func TestModel_View_ZeroMassHeaviest(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)

	lone := models.WeighedLaunch{
		Launch: models.Launch{ID: "L0", LaunchTime: time.Now().UTC()},
	}
	state.SetResult(&services.LookupResult{
		Range:    models.AllTime(),
		Launches: []models.WeighedLaunch{lone},
		Heaviest: &lone,
	})

	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "still ranks first") {
		t.Error("View should explain a zero-mass heaviest launch")
	}
}

func TestModel_Update(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(100, 40)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_Help(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
