package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"launchdeck/internal/ui/components"
	"launchdeck/internal/ui/styles"
)

// View renders the history tab.
func (m *Model) View() string {
	if m.state.IsHistoryLoading() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.SubTitleStyle.Render("Loading history..."))
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	if m.confirmClear {
		b.WriteString(m.renderClearConfirm())
		b.WriteString("\n")
	}

	history := m.state.GetHistory()
	if len(history) == 0 {
		b.WriteString(m.renderEmpty())
	} else {
		b.WriteString(m.renderStats())
		b.WriteString("\n\n")
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return styles.DocStyle.Render(b.String())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Lookup History")

	count := ""
	if n := len(m.state.GetHistory()); n > 0 {
		count = styles.SubTitleStyle.Render(fmt.Sprintf("  %d recorded", n))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, count)
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render("No History"),
		"",
		"Completed lookups are recorded here.",
		styles.SubTitleStyle.Render("Run one from the Launches tab to get started."),
	)
	return styles.CardStyle.Render(content)
}

// renderStats renders the aggregate card plus a sparkline of heaviest masses.
func (m *Model) renderStats() string {
	stats := m.state.GetHistoryStats()
	if stats == nil {
		return ""
	}

	rows := []string{
		renderStatRow("Lookups", fmt.Sprintf("%d (%d empty)", stats.TotalLookups, stats.EmptyLookups)),
		renderStatRow("Launches seen", formatCount(stats.TotalLaunches)),
		renderStatRow("Avg duration", formatDurationMs(int64(stats.AvgDurationMs))),
	}

	if stats.MaxHeaviestID != "" {
		rows = append(rows, renderStatRow("Record mass",
			fmt.Sprintf("%s  %s",
				styles.GetMassStyle(stats.MaxHeaviestKg).Render(components.FormatMass(stats.MaxHeaviestKg)),
				styles.SubTitleStyle.Render(stats.MaxHeaviestID))))
	}

	if !stats.FirstLookup.IsZero() {
		rows = append(rows, renderStatRow("Recorded over",
			fmt.Sprintf("%s to %s",
				stats.FirstLookup.Local().Format("2006-01-02"),
				stats.LastLookup.Local().Format("2006-01-02"))))
	}

	card := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{styles.CardTitleStyle.Render("Totals"), ""}, rows...)...))

	spark := m.renderSparkline()
	if spark == "" {
		return card
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", spark)
}

func renderStatRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(15)
	return labelStyle.Render(label) + value
}

// renderSparkline plots heaviest mass per lookup, oldest first.
func (m *Model) renderSparkline() string {
	history := m.state.GetHistory()
	if len(history) < 2 {
		return ""
	}

	masses := make([]float64, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		masses = append(masses, history[i].HeaviestMassKg)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render("Heaviest per Lookup"),
		"",
		components.RenderSparkline(masses, min(len(masses), 40)),
		styles.SubTitleStyle.Render("oldest to newest (kg)"),
	)
	return styles.CardStyle.Render(content)
}

func (m *Model) renderClearConfirm() string {
	history := m.state.GetHistory()

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.WarningTextStyle.Render("Clear History"),
		"",
		fmt.Sprintf("Delete all %d recorded lookups?", len(history)),
		"",
		styles.SubTitleStyle.Render("y: confirm | n/Esc: cancel"),
	)

	return styles.ModalContentStyle.Render(content)
}

func (m *Model) renderFooter() string {
	if m.confirmClear {
		return styles.HelpStyle.Render("y: clear | n: keep")
	}
	return styles.HelpStyle.Render("Enter: re-run | x: clear | r: reload | ↑/↓: navigate")
}

func formatCount(n int) string {
	return fmt.Sprintf("%d", n)
}

func formatDurationMs(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d >= time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dms", ms)
}
