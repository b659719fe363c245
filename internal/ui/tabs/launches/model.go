// Package launches provides the main lookup tab: a date-range form and
// the launch table for the current result.
package launches

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"launchdeck/internal/app"
	"launchdeck/internal/models"
	"launchdeck/internal/ui/components"
	"launchdeck/internal/ui/styles"
)

// formField represents which field is currently focused in the range form.
type formField int

const (
	fieldStart formField = iota
	fieldEnd
	fieldSubmit
	fieldCancel
)

// keyMap defines the key bindings specific to the launches tab.
type keyMap struct {
	EditRange    key.Binding
	AllTime      key.Binding
	SaveBookmark key.Binding
	Bookmarks    key.Binding
	Enter        key.Binding
	Delete       key.Binding
	Escape       key.Binding
}

// defaultKeyMap returns the default key bindings for the launches tab.
func defaultKeyMap() keyMap {
	return keyMap{
		EditRange: key.NewBinding(
			key.WithKeys("e", "/"),
			key.WithHelp("e", "edit range"),
		),
		AllTime: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all time"),
		),
		SaveBookmark: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save bookmark"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmarks"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run lookup"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete bookmark"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model represents the launches tab state.
type Model struct {
	state   *app.State
	table   table.Model
	spinner components.LoadingSpinner
	keys    keyMap
	width   int
	height  int

	// Range form
	editing      bool
	focusedField formField
	startInput   textinput.Model
	endInput     textinput.Model
	formError    string

	// Bookmark save form
	savingBookmark bool
	nameInput      textinput.Model

	// Bookmark picker
	pickingBookmark  bool
	selectedBookmark int
}

// New creates a new launches model.
func New(state *app.State) *Model {
	startInput := textinput.New()
	startInput.Placeholder = "2020-01-01 (empty = open)"
	startInput.CharLimit = 10
	startInput.Width = 30

	endInput := textinput.New()
	endInput.Placeholder = "2020-12-31 (empty = open)"
	endInput.CharLimit = 10
	endInput.Width = 30

	nameInput := textinput.New()
	nameInput.Placeholder = "Bookmark name"
	nameInput.CharLimit = 60
	nameInput.Width = 30

	columns := []table.Column{
		{Title: "Launch", Width: 26},
		{Title: "Date (UTC)", Width: 18},
		{Title: "Payloads", Width: 9},
		{Title: "Mass", Width: 10},
		{Title: "", Width: 10},
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
		state:        state,
		table:        t,
		spinner:      components.NewSpinner("Querying launch catalog..."),
		keys:         defaultKeyMap(),
		startInput:   startInput,
		endInput:     endInput,
		nameInput:    nameInput,
		focusedField: fieldStart,
	}
}

// Init initializes the launches tab.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), textinput.Blink)
}

// Update handles messages for the launches tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if m.editing {
		return m.updateRangeForm(msg)
	}
	if m.savingBookmark {
		return m.updateBookmarkForm(msg)
	}
	if m.pickingBookmark {
		return m.updateBookmarkPicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case app.LookupFinishedMsg:
		m.updateTableData()

	case app.ServiceEventMsg:
		m.updateTableData()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.EditRange):
		m.openRangeForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.AllTime):
		return m, func() tea.Msg {
			return app.LookupRequestedMsg{Range: models.AllTime()}
		}

	case key.Matches(msg, m.keys.SaveBookmark):
		m.savingBookmark = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Bookmarks):
		if len(m.state.GetBookmarks()) > 0 {
			m.pickingBookmark = true
			m.selectedBookmark = 0
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m *Model) openRangeForm() {
	m.editing = true
	m.formError = ""
	m.focusedField = fieldStart

	r := m.state.GetCurrentRange()
	if r.Start != nil {
		m.startInput.SetValue(r.Start.String())
	} else {
		m.startInput.SetValue("")
	}
	if r.End != nil {
		m.endInput.SetValue(r.End.String())
	} else {
		m.endInput.SetValue("")
	}

	m.startInput.Focus()
	m.endInput.Blur()
}

// updateRangeForm handles the date range form.
func (m *Model) updateRangeForm(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeRangeForm()
			return m, nil

		case "tab", "down":
			m.focusedField = (m.focusedField + 1) % 4
			m.updateFormFocus()
			return m, textinput.Blink

		case "shift+tab", "up":
			m.focusedField = (m.focusedField - 1 + 4) % 4
			m.updateFormFocus()
			return m, textinput.Blink

		case "enter":
			switch m.focusedField {
			case fieldSubmit:
				return m.submitRangeForm()
			case fieldCancel:
				m.closeRangeForm()
				return m, nil
			default:
				m.focusedField = (m.focusedField + 1) % 4
				m.updateFormFocus()
				return m, textinput.Blink
			}
		}
	}

	var cmd tea.Cmd
	switch m.focusedField {
	case fieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldEnd:
		m.endInput, cmd = m.endInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) submitRangeForm() (app.Tab, tea.Cmd) {
	r, err := parseRange(m.startInput.Value(), m.endInput.Value())
	if err != nil {
		m.formError = err.Error()
		return m, nil
	}

	m.closeRangeForm()
	return m, func() tea.Msg {
		return app.LookupRequestedMsg{Range: r}
	}
}

func (m *Model) closeRangeForm() {
	m.editing = false
	m.formError = ""
	m.startInput.Blur()
	m.endInput.Blur()
}

// parseRange builds a date range from form values. Empty fields leave
// the corresponding bound open.
func parseRange(startStr, endStr string) (models.DateRange, error) {
	var r models.DateRange

	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	if startStr != "" {
		start, err := models.ParseDate(startStr)
		if err != nil {
			return r, fmt.Errorf("start date: use YYYY-MM-DD")
		}
		r.Start = &start
	}
	if endStr != "" {
		end, err := models.ParseDate(endStr)
		if err != nil {
			return r, fmt.Errorf("end date: use YYYY-MM-DD")
		}
		r.End = &end
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return r, fmt.Errorf("end date is before start date")
	}

	return r, nil
}

// updateBookmarkForm handles the bookmark name form.
func (m *Model) updateBookmarkForm(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.savingBookmark = false
			m.nameInput.Blur()
			return m, nil

		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			m.savingBookmark = false
			m.nameInput.Blur()
			if name == "" {
				return m, nil
			}
			r := m.state.GetCurrentRange()
			return m, func() tea.Msg {
				return app.SaveBookmarkMsg{Name: name, Range: r}
			}
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// updateBookmarkPicker handles the bookmark picker list.
func (m *Model) updateBookmarkPicker(msg tea.Msg) (app.Tab, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	bookmarks := m.state.GetBookmarks()
	count := len(bookmarks)

	switch keyMsg.String() {
	case "esc", "b":
		m.pickingBookmark = false

	case "down", "j":
		if count > 0 {
			m.selectedBookmark = (m.selectedBookmark + 1) % count
		}

	case "up", "k":
		if count > 0 {
			m.selectedBookmark = (m.selectedBookmark - 1 + count) % count
		}

	case "enter":
		if m.selectedBookmark < count {
			bm := bookmarks[m.selectedBookmark]
			m.pickingBookmark = false
			return m, func() tea.Msg {
				return app.LookupRequestedMsg{Range: bm.Range()}
			}
		}

	case "d", "delete":
		if m.selectedBookmark < count {
			name := bookmarks[m.selectedBookmark].Name
			m.pickingBookmark = false
			return m, func() tea.Msg {
				return app.DeleteBookmarkMsg{Name: name}
			}
		}
	}

	return m, nil
}

func (m *Model) updateFormFocus() {
	m.startInput.Blur()
	m.endInput.Blur()

	switch m.focusedField {
	case fieldStart:
		m.startInput.Focus()
	case fieldEnd:
		m.endInput.Focus()
	}
}

// updateTableData updates the table with the current lookup result.
func (m *Model) updateTableData() {
	result := m.state.GetResult()
	if result == nil {
		m.table.SetRows(nil)
		return
	}

	var heaviestID string
	if result.Heaviest != nil {
		heaviestID = result.Heaviest.ID
	}

	rows := make([]table.Row, 0, len(result.Launches))
	for _, l := range result.Launches {
		badge := ""
		if l.ID == heaviestID && heaviestID != "" {
			badge = "◆ heaviest"
		}

		mass := "-"
		if l.TotalPayloadMassKg > 0 {
			mass = components.FormatMass(l.TotalPayloadMassKg)
		}

		rows = append(rows, table.Row{
			l.ID,
			l.LaunchTime.UTC().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", len(l.PayloadIDs)),
			mass,
			badge,
		})
	}

	m.table.SetRows(rows)
}

// SetSize sets the available size for the launches tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-12, 4))

	idWidth := width - 55
	idWidth = max(idWidth, 20)
	idWidth = min(idWidth, 30)

	columns := []table.Column{
		{Title: "Launch", Width: idWidth},
		{Title: "Date (UTC)", Width: 18},
		{Title: "Payloads", Width: 9},
		{Title: "Mass", Width: 10},
		{Title: "", Width: 10},
	}
	m.table.SetColumns(columns)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.editing {
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
			m.keys.Escape,
		}
	}
	return []key.Binding{
		m.keys.EditRange,
		m.keys.AllTime,
		m.keys.SaveBookmark,
		m.keys.Bookmarks,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.EditRange, m.keys.AllTime},
		{m.keys.SaveBookmark, m.keys.Bookmarks, m.keys.Delete},
	}
}
