package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"launchdeck/internal/logger"
	"launchdeck/internal/ui/styles"
)

// MassBar renders a launch's payload mass as a progress bar scaled
// against the heaviest launch of the range.
type MassBar struct {
	progress progress.Model
}

// NewMassBar creates a new mass bar with gradient colors.
func NewMassBar() MassBar {
	return NewMassBarWithWidth(30)
}

// NewMassBarWithWidth creates a mass bar with a specific width.
func NewMassBarWithWidth(width int) MassBar {
	p := progress.New(
		progress.WithScaledGradient("#51cf66", "#ff6b6b"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	return MassBar{progress: p}
}

// SetWidth sets the progress bar width.
func (m *MassBar) SetWidth(width int) {
	m.progress.Width = width
}

// View renders the bar for massKg relative to maxKg, with a label and value.
func (m MassBar) View(massKg, maxKg float64, label string, width int) string {
	barWidth := width - 30 // Reserve space for label and mass value
	barWidth = max(barWidth, 10)
	m.progress.Width = barWidth

	fraction := 0.0
	if maxKg > 0 {
		fraction = massKg / maxKg
	}
	fraction = min(fraction, 1)

	bar := m.progress.ViewAs(fraction)

	massStr := styles.GetMassStyle(massKg).
		Width(10).
		Align(lipgloss.Right).
		Render(FormatMass(massKg))

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(15).
		Render(label)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		massStr,
	)
}

// RenderGradientBar renders just the bar part with gradient colors.
// percent is 0-100.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	filled = min(filled, width)
	filled = max(filled, 0)

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#51cf66", "#ff6b6b", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleMassBar renders an ASCII mass bar scaled against maxKg.
func SimpleMassBar(massKg, maxKg float64, label string, width int) string {
	labelWidth := len(label) + 1
	massWidth := 10
	barWidth := width - labelWidth - massWidth - 4
	barWidth = max(barWidth, 5)

	percent := 0.0
	if maxKg > 0 {
		percent = (massKg / maxKg) * 100
	}

	bar := RenderGradientBar(percent, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	massStr := styles.GetMassStyle(massKg).
		Width(massWidth).
		Align(lipgloss.Right).
		Render(FormatMass(massKg))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, massStr)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
