package heaviest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"launchdeck/internal/models"
	"launchdeck/internal/ui/components"
	"launchdeck/internal/ui/styles"
)

// View renders the heaviest tab.
func (m *Model) View() string {
	if m.state.IsLookupRunning() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	result := m.state.GetResult()

	var sections []string
	sections = append(sections, m.renderTitle())

	switch {
	case result == nil:
		sections = append(sections, m.renderEmpty("Run a lookup first to see the heaviest launch."))
	case result.Heaviest == nil:
		sections = append(sections, m.renderEmpty("No launches in this range."))
	default:
		sections = append(sections,
			m.renderHeaviestCard(result.Heaviest),
			m.renderRanking(result.Launches),
			m.renderMassChart(result.Launches),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Heaviest Launch")

	r := m.state.GetCurrentRange()
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Range: %s", r.String()))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderEmpty(hint string) string {
	cardWidth := max(m.width-6, 40)

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.HelpStyle.Render(hint),
		"",
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

func (m *Model) renderHeaviestCard(heaviest *models.WeighedLaunch) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	rows = append(rows, fmt.Sprintf("%s %s",
		styles.HeaviestBadgeStyle.Render("◆ HEAVIEST"),
		styles.CardTitleStyle.Render(heaviest.ID),
	))
	rows = append(rows, "")
	rows = append(rows, m.renderDetailRow("Launched", heaviest.LaunchTime.UTC().Format("2006-01-02 15:04 UTC")))
	rows = append(rows, m.renderDetailRow("Payloads", fmt.Sprintf("%d", len(heaviest.PayloadIDs))))

	massStr := styles.GetMassStyle(heaviest.TotalPayloadMassKg).
		Render(components.FormatMass(heaviest.TotalPayloadMassKg))
	rows = append(rows, m.renderDetailRow("Total mass", massStr))

	if heaviest.TotalPayloadMassKg == 0 {
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("No payload mass on record; the launch still ranks first."))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderDetailRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(12).
		Foreground(styles.TextMuted)

	return labelStyle.Render(label+":") + " " + value
}

func (m *Model) renderRanking(launches []models.WeighedLaunch) string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Top Launches by Mass"), "")

	ranked := make([]models.WeighedLaunch, len(launches))
	copy(ranked, launches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPayloadMassKg > ranked[j].TotalPayloadMassKg
	})
	if len(ranked) > topLaunchCount {
		ranked = ranked[:topLaunchCount]
	}

	maxKg := 0.0
	if len(ranked) > 0 {
		maxKg = ranked[0].TotalPayloadMassKg
	}

	barWidth := max(cardWidth-8, 30)
	for _, l := range ranked {
		label := l.ID
		if len(label) > 12 {
			label = label[:12]
		}
		rows = append(rows, "  "+components.SimpleMassBar(l.TotalPayloadMassKg, maxKg, label, barWidth))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderMassChart(launches []models.WeighedLaunch) string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Payload Mass over Range"), "")

	masses := make([]float64, len(launches))
	for i, l := range launches {
		masses[i] = l.TotalPayloadMassKg
	}

	chartWidth := max(cardWidth-12, 30)
	chart := components.RenderMassChart(masses, chartWidth, 8,
		fmt.Sprintf("%d launches in chronological order (kg)", len(launches)))

	for line := range strings.SplitSeq(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
