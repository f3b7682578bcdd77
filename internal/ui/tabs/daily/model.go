// Package daily provides the custom range tab with per-day tables.
package daily

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/workload-dashboard-tui/internal/app"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

// Dataset selects which event table is shown.
type Dataset int

const (
	// DatasetContent shows ai_response aggregates.
	DatasetContent Dataset = iota
	// DatasetModels shows model_create aggregates.
	DatasetModels
	// DatasetPhotos shows photo_upload aggregates.
	DatasetPhotos
)

var datasetNames = []string{"Content", "Models", "Photos"}

// String returns the display name of the dataset.
func (d Dataset) String() string {
	if int(d) < len(datasetNames) {
		return datasetNames[d]
	}
	return "Unknown"
}

func (d Dataset) next() Dataset { return (d + 1) % Dataset(len(datasetNames)) }

func (d Dataset) prev() Dataset {
	n := Dataset(len(datasetNames))
	return (d + n - 1) % n
}

// keyMap defines the key bindings specific to the daily tab.
type keyMap struct {
	Edit        key.Binding
	Apply       key.Binding
	Cancel      key.Binding
	SwitchInput key.Binding
	Reset       key.Binding
	NextDataset key.Binding
	PrevDataset key.Binding
	Up          key.Binding
	Down        key.Binding
}

// defaultKeyMap returns the default key bindings for the daily tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Edit: key.NewBinding(
			key.WithKeys("e", "/"),
			key.WithHelp("e", "edit range"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply range"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
		SwitchInput: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "start/end date"),
		),
		Reset: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "default range"),
		),
		NextDataset: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next table"),
		),
		PrevDataset: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev table"),
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

// Model represents the daily tab state.
type Model struct {
	state        *app.State
	defaultRange func() models.DateRange
	keys         keyMap
	spinner      components.LoadingSpinner

	start   textinput.Model
	end     textinput.Model
	editing bool
	focus   int

	dataset Dataset
	table   table.Model

	// tableFor records what the table was last built from.
	tableFor struct {
		summary *models.RangeSummary
		dataset Dataset
		width   int
		height  int
	}

	width  int
	height int
}

// New creates a new daily model. defaultRange backs the reset key and may be nil.
func New(state *app.State, defaultRange func() models.DateRange) *Model {
	return &Model{
		state:        state,
		defaultRange: defaultRange,
		keys:         defaultKeyMap(),
		spinner:      components.NewSpinner("Building report..."),
		start:        newDateInput("start_date"),
		end:          newDateInput("end_date"),
	}
}

func newDateInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = len(models.DateLayout)
	ti.Width = len(models.DateLayout) + 1
	ti.PromptStyle = styles.FocusedStyle
	ti.TextStyle = styles.CardValueStyle
	return ti
}

// Init initializes the daily tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick()
}

// Update handles messages for the daily tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m, m.handleEditKey(msg)
		}
		return m, m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.startEditing()

	case key.Matches(msg, m.keys.Reset):
		if m.defaultRange == nil {
			return nil
		}
		r := m.defaultRange()
		return func() tea.Msg { return app.SetRangeMsg{Range: r} }

	case key.Matches(msg, m.keys.NextDataset):
		m.dataset = m.dataset.next()

	case key.Matches(msg, m.keys.PrevDataset):
		m.dataset = m.dataset.prev()

	default:
		m.syncTable()
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) startEditing() tea.Cmd {
	r := m.state.GetRange()
	m.start.SetValue(formatDate(r.Start))
	m.end.SetValue(formatDate(r.End))
	m.start.CursorEnd()
	m.end.CursorEnd()

	m.editing = true
	m.focus = 0
	m.end.Blur()
	m.state.SetInputFocused(true)
	return m.start.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.start.Blur()
	m.end.Blur()
	m.state.SetInputFocused(false)
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return nil

	case key.Matches(msg, m.keys.SwitchInput):
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.end.Blur()
			return m.start.Focus()
		}
		m.start.Blur()
		return m.end.Focus()

	case key.Matches(msg, m.keys.Apply):
		return m.apply()
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.start, cmd = m.start.Update(msg)
	} else {
		m.end, cmd = m.end.Update(msg)
	}
	return cmd
}

// apply validates both inputs and requests a report for the new range.
func (m *Model) apply() tea.Cmd {
	start, err := models.ParseDate(m.start.Value())
	if err != nil {
		return warn(fmt.Sprintf("Invalid start date %q, use YYYY-MM-DD", m.start.Value()))
	}
	end, err := models.ParseDate(m.end.Value())
	if err != nil {
		return warn(fmt.Sprintf("Invalid end date %q, use YYYY-MM-DD", m.end.Value()))
	}
	r := models.NewDateRange(start, end)
	if !r.Valid() {
		return warn("Start date must not be after end date")
	}

	m.stopEditing()
	return func() tea.Msg { return app.SetRangeMsg{Range: r} }
}

func warn(message string) tea.Cmd {
	return func() tea.Msg {
		return app.AddNotificationMsg{
			Type:     app.NotificationWarning,
			Message:  message,
			Duration: app.DefaultNotificationDuration,
		}
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

// Editing reports whether the range inputs have focus.
func (m *Model) Editing() bool {
	return m.editing
}

// Dataset returns the table currently shown.
func (m *Model) Dataset() Dataset {
	return m.dataset
}

// SetSize sets the available size for the daily tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.editing {
		return []key.Binding{m.keys.SwitchInput, m.keys.Apply, m.keys.Cancel}
	}
	return []key.Binding{m.keys.Edit, m.keys.Reset, m.keys.PrevDataset, m.keys.NextDataset}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Edit, m.keys.Apply, m.keys.Cancel, m.keys.SwitchInput},
		{m.keys.PrevDataset, m.keys.NextDataset, m.keys.Reset},
		{m.keys.Up, m.keys.Down},
	}
}
