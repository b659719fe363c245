package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.Label() != "Loading" {
		t.Errorf("Label = %s, want Loading", s.Label())
	}

	if s.View() == "" {
		t.Error("View returned empty")
	}
	if s.ViewWithLabel() == "" {
		t.Error("ViewWithLabel returned empty")
	}
	if s.Init() == nil {
		t.Error("Init should return command")
	}
	if s.Tick() == nil {
		t.Error("Tick should return command")
	}

	_, cmd := s.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Update should return command for tick")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	view := RenderSpinnerCentered(s, 20, 5)
	if view == "" {
		t.Error("RenderSpinnerCentered returned empty")
	}
}

func TestRenderMassChart(t *testing.T) {
	data := []float64{1200, 3000, 4500, 500}
	s := RenderMassChart(data, 20, 5, "payload mass")
	if s == "" {
		t.Error("RenderMassChart returned empty")
	}

	// Empty data gets a placeholder
	s = RenderMassChart(nil, 20, 5, "")
	if !strings.Contains(s, "No data") {
		t.Error("RenderMassChart should render placeholder for empty data")
	}

	// A single launch should still plot
	s = RenderMassChart([]float64{9600}, 20, 5, "")
	if s == "" {
		t.Error("RenderMassChart returned empty for single value")
	}
}

func TestRenderBarChart(t *testing.T) {
	values := []float64{1200, 4500}
	labels := []string{"L1", "L2"}
	s := RenderBarChart(values, labels, 40)
	if s == "" {
		t.Error("RenderBarChart returned empty")
	}
	if !strings.Contains(s, "L1") {
		t.Error("RenderBarChart should contain labels")
	}
}

func TestRenderSparkline(t *testing.T) {
	data := []float64{1, 2, 3}
	s := RenderSparkline(data, 10)
	if s == "" {
		t.Error("RenderSparkline returned empty")
	}
}

func TestFormatMass(t *testing.T) {
	tests := []struct {
		massKg float64
		want   string
	}{
		{0, "0 kg"},
		{450, "450 kg"},
		{1200, "1.2 t"},
		{12500, "12.5 t"},
	}

	for _, tt := range tests {
		if got := FormatMass(tt.massKg); got != tt.want {
			t.Errorf("FormatMass(%v) = %q, want %q", tt.massKg, got, tt.want)
		}
	}
}

func TestRenderLegend(t *testing.T) {
	items := []LegendItem{
		{Label: "A", Color: lipgloss.Color("#ffffff")},
	}
	s := RenderLegend(items)
	if s == "" {
		t.Error("RenderLegend returned empty")
	}
}
