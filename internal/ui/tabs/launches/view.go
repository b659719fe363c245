package launches

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"launchdeck/internal/ui/components"
	"launchdeck/internal/ui/styles"
)

// View renders the launches tab.
func (m *Model) View() string {
	if m.state.IsLookupRunning() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	switch {
	case m.editing:
		sections = append(sections, m.renderRangeForm())
	case m.savingBookmark:
		sections = append(sections, m.renderBookmarkForm())
	case m.pickingBookmark:
		sections = append(sections, m.renderBookmarkPicker())
	default:
		sections = append(sections, m.renderResult())
	}

	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Launch Lookup")

	r := m.state.GetCurrentRange()
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Range: %s", r.String()))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderResult() string {
	result := m.state.GetResult()

	cardWidth := max(m.width-6, 60)

	if result == nil {
		content := lipgloss.JoinVertical(lipgloss.Center,
			"",
			styles.SubTitleStyle.Render("No Lookup Yet"),
			"",
			styles.HelpStyle.Render("Query the launch catalog for a date range."),
			"",
			styles.InfoTextStyle.Render("Press 'e' to enter a range or 'a' for all time"),
			"",
		)
		return styles.CardStyle.Width(cardWidth).Render(content)
	}

	var rows []string

	summary := m.renderSummary(cardWidth)
	rows = append(rows, summary, "")

	if len(result.Launches) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No launches in this range."))
	} else {
		m.updateTableData()
		rows = append(rows, m.table.View())
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSummary(width int) string {
	result := m.state.GetResult()

	countStr := lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).
		Render(fmt.Sprintf("%d launches", len(result.Launches)))

	heaviestStr := styles.HelpStyle.Render("no heaviest (empty range)")
	if result.Heaviest != nil {
		heaviestStr = fmt.Sprintf("%s %s %s",
			styles.HeaviestBadgeStyle.Render("◆ heaviest"),
			lipgloss.NewStyle().Bold(true).Render(result.Heaviest.ID),
			styles.GetMassStyle(result.Heaviest.TotalPayloadMassKg).
				Render(components.FormatMass(result.Heaviest.TotalPayloadMassKg)),
		)
	}

	durationStr := styles.HelpStyle.Render(fmt.Sprintf("fetched in %s", result.Duration.Round(time.Millisecond)))

	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("  %s  %s", countStr, durationStr),
		"  "+heaviestStr,
	)
}

func (m *Model) renderRangeForm() string {
	cardWidth := max(m.width-10, 50)
	cardWidth = min(cardWidth, 70)

	var rows []string

	rows = append(rows, styles.CardTitleStyle.Render("Query Date Range"), "")

	rows = append(rows, m.renderFormField("Start date", m.startInput.View(), m.focusedField == fieldStart, cardWidth))
	rows = append(rows, "")
	rows = append(rows, m.renderFormField("End date", m.endInput.View(), m.focusedField == fieldEnd, cardWidth))
	rows = append(rows, "")

	submitStyle := styles.ButtonInactiveStyle
	cancelStyle := styles.ButtonInactiveStyle
	if m.focusedField == fieldSubmit {
		submitStyle = styles.ButtonActiveStyle
	}
	if m.focusedField == fieldCancel {
		cancelStyle = styles.ButtonActiveStyle
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		submitStyle.Render(" Run Lookup "),
		"  ",
		cancelStyle.Render(" Cancel "),
	)
	rows = append(rows, buttons, "")

	if m.formError != "" {
		rows = append(rows, styles.ErrorTextStyle.Render("  "+m.formError), "")
	}

	rows = append(rows, styles.HelpStyle.Render("Empty field leaves that bound open | Tab: next | Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.ModalContentStyle.Width(cardWidth).Render(content)
}

func (m *Model) renderFormField(label, input string, focused bool, width int) string {
	labelStr := styles.BlurredStyle.Render("  " + label + ":")
	inputStyle := styles.BlurredBorderStyle
	if focused {
		labelStr = styles.FocusedStyle.Render("> " + label + ":")
		inputStyle = styles.FocusedBorderStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStr,
		inputStyle.Width(width-10).Render(input),
	)
}

func (m *Model) renderBookmarkForm() string {
	cardWidth := 50

	r := m.state.GetCurrentRange()

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render("Save Bookmark"),
		"",
		styles.HelpStyle.Render("Range: "+r.String()),
		"",
		styles.FocusedBorderStyle.Width(cardWidth-8).Render(m.nameInput.View()),
		"",
		styles.HelpStyle.Render("Enter: save | Esc: cancel"),
	)

	return styles.CenterHorizontal(
		styles.ModalContentStyle.Width(cardWidth).Render(content),
		m.width,
	)
}

func (m *Model) renderBookmarkPicker() string {
	cardWidth := max(m.width-10, 50)
	cardWidth = min(cardWidth, 70)

	bookmarks := m.state.GetBookmarks()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Bookmarks"), "")

	for i, bm := range bookmarks {
		line := fmt.Sprintf("%s  %s", bm.Name, styles.HelpStyle.Render(bm.Range().String()))
		if i == m.selectedBookmark {
			rows = append(rows, styles.SelectedListItemStyle.Render("")+styles.FocusedStyle.Render(line))
		} else {
			rows = append(rows, styles.ListItemStyle.Render(line))
		}
	}

	rows = append(rows, "", styles.HelpStyle.Render("Enter: run lookup | d: delete | Esc: close"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.ModalContentStyle.Width(cardWidth).Render(content)
}

func (m *Model) renderFooter() string {
	var shortcuts []string

	switch {
	case m.editing:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Tab") + " next",
			styles.HelpKeyStyle.Render("Enter") + " run",
			styles.HelpKeyStyle.Render("Esc") + " cancel",
		}
	case m.savingBookmark:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Enter") + " save",
			styles.HelpKeyStyle.Render("Esc") + " cancel",
		}
	case m.pickingBookmark:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Enter") + " run",
			styles.HelpKeyStyle.Render("d") + " delete",
			styles.HelpKeyStyle.Render("Esc") + " close",
		}
	default:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("e") + " range",
			styles.HelpKeyStyle.Render("a") + " all time",
			styles.HelpKeyStyle.Render("s") + " bookmark",
			styles.HelpKeyStyle.Render("b") + " bookmarks",
		}
	}

	footer := ""
	for i, s := range shortcuts {
		if i > 0 {
			footer += styles.HelpStyle.Render(" | ")
		}
		footer += s
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		Foreground(styles.TextMuted).
		Render(footer)
}
