// Package history provides the tab over the recorded lookup history.
package history

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"launchdeck/internal/app"
	"launchdeck/internal/models"
	"launchdeck/internal/ui/components"
	"launchdeck/internal/ui/styles"
)

// keyMap defines the key bindings specific to the history tab.
type keyMap struct {
	Rerun   key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
}

// defaultKeyMap returns the default key bindings for the history tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Rerun: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "re-run lookup"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear history"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// Model represents the history tab state.
type Model struct {
	state  *app.State
	table  table.Model
	keys   keyMap
	width  int
	height int

	confirmClear bool
}

// New creates a new history model.
func New(state *app.State) *Model {
	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Range", Width: 26},
		{Title: "Launches", Width: 9},
		{Title: "Heaviest", Width: 12},
		{Title: "Took", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state: state,
		table: t,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the history tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if m.confirmClear {
		return m.updateClearConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case app.HistoryLoadedMsg:
		m.updateTableData()

	case app.ServiceEventMsg:
		m.updateTableData()
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Rerun):
		if lookup, ok := m.selectedLookup(); ok {
			r := lookup.Range()
			return m, func() tea.Msg {
				return app.LookupRequestedMsg{Range: r}
			}
		}

	case key.Matches(msg, m.keys.Clear):
		if len(m.state.GetHistory()) > 0 {
			m.confirmClear = true
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, func() tea.Msg {
			return app.RefreshMsg{Resource: "history"}
		}

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateClearConfirm handles the clear-history confirmation.
func (m *Model) updateClearConfirm(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			m.confirmClear = false
			return m, func() tea.Msg {
				return app.ClearHistoryMsg{}
			}
		case "n", "N", "esc":
			m.confirmClear = false
		}
	}
	return m, nil
}

func (m *Model) selectedLookup() (models.Lookup, bool) {
	history := m.state.GetHistory()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(history) {
		return models.Lookup{}, false
	}
	return history[idx], true
}

// updateTableData updates the table with the recorded history.
func (m *Model) updateTableData() {
	history := m.state.GetHistory()

	rows := make([]table.Row, 0, len(history))
	for _, l := range history {
		heaviest := "-"
		if l.HeaviestID != "" {
			heaviest = components.FormatMass(l.HeaviestMassKg)
		}

		rows = append(rows, table.Row{
			l.CreatedAt.Local().Format("2006-01-02 15:04"),
			l.Range().String(),
			formatCount(l.LaunchCount),
			heaviest,
			formatDurationMs(l.DurationMs),
		})
	}

	m.table.SetRows(rows)
}

// SetSize sets the available size for the history tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-14, 4))

	rangeWidth := width - 52
	rangeWidth = max(rangeWidth, 22)
	rangeWidth = min(rangeWidth, 30)

	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Range", Width: rangeWidth},
		{Title: "Launches", Width: 9},
		{Title: "Heaviest", Width: 12},
		{Title: "Took", Width: 8},
	}
	m.table.SetColumns(columns)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Rerun,
		m.keys.Clear,
		m.keys.Refresh,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Rerun, m.keys.Clear},
		{m.keys.Refresh, m.keys.Up, m.keys.Down},
	}
}
