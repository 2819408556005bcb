// Package report provides the chart tabs of the dashboard. One model type
// serves all four reports.
package report

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/app"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	reportsvc "github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/components"
)

// keyMap defines the key bindings specific to the chart tabs.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
}

// defaultKeyMap returns the default key bindings for the chart tabs.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("help.scroll")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("help.scroll")),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", i18n.T("help.scroll")),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", i18n.T("help.scroll")),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
		),
	}
}

// Model is one chart tab.
type Model struct {
	state    *app.State
	kind     models.ReportKind
	width    int
	height   int
	keys     keyMap
	viewport viewport.Model
	markdown *components.MarkdownRenderer

	// summary cache, keyed on the rendered report and wrap width
	summaryFor   *reportsvc.Report
	summaryWidth int
	summary      string
}

// New creates the tab showing reports of kind. md may be shared between tabs.
func New(state *app.State, kind models.ReportKind, md *components.MarkdownRenderer) *Model {
	if md == nil {
		md = components.NewMarkdownRenderer("dark")
	}
	return &Model{
		state:    state,
		kind:     kind,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		markdown: md,
	}
}

// Kind returns the report kind shown by the tab.
func (m *Model) Kind() models.ReportKind {
	return m.kind
}

// Init initializes the tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Top) {
			m.viewport.GotoTop()
			break
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case app.FilterChangedMsg:
		m.viewport.GotoTop()
	}

	return m, tea.Batch(cmds...)
}

// SetSize sets the available size for the tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-docHMargin, 0)
	m.viewport.Height = max(height-docVMargin, 0)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.PageUp, m.keys.PageDown}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.PageUp, m.keys.PageDown},
	}
}

// renderSummary renders the markdown summary, reusing the last result while
// the report and width are unchanged.
func (m *Model) renderSummary(r *reportsvc.Report, width int) string {
	if r == m.summaryFor && width == m.summaryWidth && m.summary != "" {
		return m.summary
	}

	out, err := m.markdown.Render(r.Summary(), width)
	if err != nil {
		logger.Warn("Markdown render failed", "report", r.Kind.Key(), "error", err)
	}

	m.summaryFor = r
	m.summaryWidth = width
	m.summary = out
	return out
}
