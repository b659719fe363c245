// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"launchdeck/internal/ui/styles"
)

// RenderMassChart plots payload masses across a sequence of launches.
func RenderMassChart(massesKg []float64, width, height int, caption string) string {
	if len(massesKg) == 0 {
		return styles.HelpStyle.Render("No data available")
	}
	// asciigraph needs at least two points to draw a line
	if len(massesKg) == 1 {
		massesKg = []float64{massesKg[0], massesKg[0]}
	}

	width = max(width, 20)
	height = max(height, 3)

	return asciigraph.Plot(massesKg,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderBarChart creates a simple horizontal bar chart.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 12 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		paddedLabel := fmt.Sprintf("%*s", maxLabelLen, label)

		barLen := int((v / maxVal) * float64(barWidth))
		barLen = max(barLen, 0)

		bar := styles.GetMassStyle(v).Render(strings.Repeat("█", barLen))
		valueStr := fmt.Sprintf(" %s", FormatMass(v))

		lines = append(lines, paddedLabel+" │"+bar+valueStr)
	}

	return strings.Join(lines, "\n")
}

// RenderSparkline creates a compact inline sparkline chart.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var result strings.Builder
	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		idx := int(float64(i) * step)
		val := values[idx]
		normalized := int((val / maxVal) * float64(len(sparkChars)-1))
		if normalized >= len(sparkChars) {
			normalized = len(sparkChars) - 1
		}
		normalized = max(normalized, 0)
		result.WriteRune(sparkChars[normalized])
	}

	return result.String()
}

// FormatMass renders a payload mass in kilograms with a compact unit.
func FormatMass(massKg float64) string {
	if massKg >= 1000 {
		return fmt.Sprintf("%.1f t", massKg/1000)
	}
	return fmt.Sprintf("%.0f kg", massKg)
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
