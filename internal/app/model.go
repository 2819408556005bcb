// Package app implements the main Bubble Tea application with tab-based navigation.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/export"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/styles"
)

// TabID represents the identifier for a tab in the application.
type TabID int

const (
	// TabWeather shows mean rentals by weather condition.
	TabWeather TabID = iota
	// TabMonthly shows total rentals by month.
	TabMonthly
	// TabHourWeekday shows total rentals by hour and weekday.
	TabHourWeekday
	// TabTimeWeather shows the time-of-day by weather heatmap.
	TabTimeWeather
	// TabInfo shows dataset information and settings.
	TabInfo

	tabCount = 5
)

// String returns the localized tab name.
func (t TabID) String() string {
	if kind, ok := t.ReportKind(); ok {
		return report.TabName(kind)
	}
	if t == TabInfo {
		return i18n.T("tab.info")
	}
	return "Unknown"
}

// ReportKind returns the report shown by a chart tab.
func (t TabID) ReportKind() (models.ReportKind, bool) {
	switch t {
	case TabWeather:
		return models.ReportWeather, true
	case TabMonthly:
		return models.ReportMonthly, true
	case TabHourWeekday:
		return models.ReportHourWeekday, true
	case TabTimeWeather:
		return models.ReportTimeWeather, true
	default:
		return 0, false
	}
}

// Tab defines the interface that all tabs must implement.
type Tab interface {
	// Init initializes the tab and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated tab and any commands.
	Update(msg tea.Msg) (Tab, tea.Cmd)

	// View renders the tab content.
	View() string

	// SetSize sets the available size for the tab.
	SetSize(width, height int)

	// ShortHelp returns key bindings for the short help view.
	ShortHelp() []key.Binding

	// FullHelp returns key bindings for the full help view.
	FullHelp() [][]key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Year    key.Binding
	Reload  key.Binding
	Export  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Up      key.Binding
	Down    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", i18n.T("tab.weather"))),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", i18n.T("tab.monthly"))),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", i18n.T("tab.hour_weekday"))),
		Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", i18n.T("tab.time_weather"))),
		Tab5:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", i18n.T("tab.info"))),
		NextTab: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab/→", i18n.T("help.next_tab"))),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab/←", i18n.T("help.next_tab"))),
		Year:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", i18n.T("help.year"))),
		Reload:  key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", i18n.T("help.reload"))),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", i18n.T("help.export"))),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", i18n.T("help.help"))),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", i18n.T("help.quit"))),
		Escape:  key.NewBinding(key.WithKeys("esc")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", i18n.T("help.scroll"))),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", i18n.T("help.scroll"))),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Year, k.Export, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5},
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Year, k.Reload, k.Export, k.Help, k.Quit},
	}
}

// Styles defines the application styles.
type Styles struct {
	// Tab bar styles
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	// Notification styles
	NotificationSuccess lipgloss.Style
	NotificationError   lipgloss.Style
	NotificationWarning lipgloss.Style
	NotificationInfo    lipgloss.Style

	// Content styles
	Content lipgloss.Style
	Help    lipgloss.Style
	Toast   lipgloss.Style

	// Common styles
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultStyles returns the default application styles.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#D9472B", Dark: "#FF6347"}
	success := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warning := lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FF8C00"}
	errorColor := lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}
	info := lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#5FAFFF"}

	s := Styles{}
	s.TabBar = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(subtle)
	s.ActiveTab = lipgloss.NewStyle().Bold(true).Foreground(highlight).Padding(0, 2)
	s.InactiveTab = lipgloss.NewStyle().Foreground(subtle).Padding(0, 2)

	s.NotificationSuccess = lipgloss.NewStyle().Foreground(success).Padding(0, 1)
	s.NotificationError = lipgloss.NewStyle().Foreground(errorColor).Bold(true).Padding(0, 1)
	s.NotificationWarning = lipgloss.NewStyle().Foreground(warning).Padding(0, 1)
	s.NotificationInfo = lipgloss.NewStyle().Foreground(info).Padding(0, 1)

	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.Help = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)
	s.Toast = styles.ToastStyle

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	s.Subtle = lipgloss.NewStyle().Foreground(subtle)
	s.Highlight = lipgloss.NewStyle().Foreground(highlight)

	return s
}

// Model is the main application model.
type Model struct {
	// Tab management
	activeTab TabID
	tabs      []Tab

	// Shared state
	state    *State
	services *services.Manager
	commands *Commands
	keymap   KeyMap
	styles   Styles

	// UI components
	spinner components.LoadingSpinner

	// Window dimensions
	width  int
	height int

	// UI state
	showHelp bool
	ready    bool

	// Service subscription
	eventChannel chan services.ServiceEvent
}

// NewModel initializes a new application model.
func NewModel(mgr *services.Manager) *Model {
	return &Model{
		activeTab: TabWeather,
		tabs:      make([]Tab, tabCount), // Placeholder - tabs will be set externally
		state:     NewState(),
		services:  mgr,
		commands:  NewCommands(mgr),
		keymap:    DefaultKeyMap(),
		styles:    DefaultStyles(),
		spinner:   components.NewSpinner(i18n.T("status.loading")),
	}
}

// SetTabs sets the tabs for the model.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	if m.width > 0 && m.height > 0 {
		m.updateTabSizes()
	}
}

// GetState returns the application state.
func (m *Model) GetState() *State {
	return m.state
}

// GetKeyMap returns the key bindings.
func (m *Model) GetKeyMap() KeyMap {
	return m.keymap
}

// GetActiveTab returns the currently active tab ID.
func (m *Model) GetActiveTab() TabID {
	return m.activeTab
}

// IsReady returns true if the model is ready (window size received).
func (m *Model) IsReady() bool {
	return m.ready
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	m.state.SetLoadingNotification(i18n.T("status.loading"))

	cmds := []tea.Cmd{
		m.spinner.Tick(),
		m.commands.Tick(DefaultTickInterval),
		m.commands.Subscribe(),
		m.commands.Reload(false),
	}

	for _, tab := range m.tabs {
		if tab != nil {
			cmds = append(cmds, tab.Init())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg, tea.KeyMsg, spinner.TickMsg:
		if cmd := m.handleTeaMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		if appCmds := m.handleAppMsg(msg); len(appCmds) > 0 {
			cmds = append(cmds, appCmds...)
		}
	}

	if cmd := m.updateActiveTab(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleTeaMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleAppMsg(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TickMsg:
		m.state.ClearExpiredNotifications()
		cmds = append(cmds, m.commands.Tick(DefaultTickInterval))
	case SubscriptionEventMsg:
		m.eventChannel = msg.Channel
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	case ServiceEventMsg:
		cmds = append(cmds, m.handleServiceEventMsg(msg)...)
	case DatasetLoadedMsg:
		cmds = append(cmds, m.handleDatasetLoaded(msg)...)
	case ReportsLoadedMsg:
		cmds = append(cmds, m.handleReportsLoaded(msg)...)
	case ExportedMsg:
		cmds = append(cmds, m.handleExported(msg))
	case AddNotificationMsg:
		id := m.state.AddNotification(msg.Type, msg.Message, msg.Duration)
		if msg.Duration > 0 {
			cmds = append(cmds, m.commands.ClearNotification(id, msg.Duration))
		}
	case RemoveNotificationMsg:
		m.state.RemoveNotification(msg.ID)
	}
	return cmds
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.updateTabSizes()
}

func (m *Model) handleServiceEventMsg(msg ServiceEventMsg) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.handleServiceEvent(msg.Event); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.eventChannel != nil {
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	}
	return cmds
}

func (m *Model) handleServiceEvent(event services.ServiceEvent) tea.Cmd {
	switch e := event.(type) {
	case services.DatasetLoadedEvent:
		m.state.SetStats(e.Stats)
		return tea.Batch(
			m.commands.NotifyInfo(loadedText(e.Stats)),
			m.commands.LoadReports(m.state.GetFilter()),
		)

	case services.ErrorEvent:
		return m.commands.NotifyError(fmt.Sprintf("[%s] %s", e.Service, errorText(e.Error)))
	}
	return nil
}

func (m *Model) handleDatasetLoaded(msg DatasetLoadedMsg) []tea.Cmd {
	m.state.SetLoading(false)
	m.state.ClearLoadingNotification()

	if msg.Error != nil {
		logger.Error("Dataset load failed", "error", msg.Error)
		if errors.Is(msg.Error, dataset.ErrFileNotFound) {
			return []tea.Cmd{
				m.commands.NotifyWarning(i18n.T("status.no_data")),
				m.commands.NotifyError(errorText(msg.Error)),
			}
		}
		return []tea.Cmd{m.commands.NotifyError(errorText(msg.Error))}
	}

	m.state.SetStats(msg.Stats)

	var cmds []tea.Cmd
	if msg.Result == nil || msg.Result.Changed() {
		cmds = append(cmds, m.commands.NotifySuccess(loadedText(msg.Stats)))
	}
	return append(cmds, m.commands.LoadReports(m.state.GetFilter()))
}

func (m *Model) handleReportsLoaded(msg ReportsLoadedMsg) []tea.Cmd {
	if msg.Error != nil {
		return []tea.Cmd{m.commands.NotifyError(errorText(msg.Error))}
	}
	if !m.state.SetReports(msg.Filter, msg.Reports) {
		logger.Debug("Discarding stale reports", "filter", msg.Filter.String())
	}
	return nil
}

func (m *Model) handleExported(msg ExportedMsg) tea.Cmd {
	if msg.Error != nil {
		if errors.Is(msg.Error, export.ErrNoData) {
			return m.commands.NotifyWarning(i18n.T("status.no_data"))
		}
		return m.commands.NotifyError(errorText(msg.Error))
	}
	return m.commands.NotifySuccess(i18n.T("status.exported", map[string]any{"Path": msg.Path}))
}

func (m *Model) reload(force bool) tea.Cmd {
	if m.services == nil {
		return nil
	}
	m.state.SetLoading(true)
	m.state.SetLoadingNotification(i18n.T("status.loading"))
	return m.commands.Reload(force)
}

func (m *Model) cycleFilter() tea.Cmd {
	filter := m.state.CycleFilter()
	return tea.Batch(
		func() tea.Msg { return FilterChangedMsg{Filter: filter} },
		m.commands.LoadReports(filter),
	)
}

func (m *Model) exportActive() tea.Cmd {
	kind, ok := m.activeTab.ReportKind()
	if !ok {
		return m.commands.NotifyWarning(i18n.T("status.tab_no_export"))
	}
	return m.commands.Export(kind, m.state.GetFilter())
}

func (m *Model) switchTab(tab TabID) {
	if tab < 0 || int(tab) >= len(m.tabs) {
		return
	}
	m.activeTab = tab
	m.updateTabSizes()
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateTabSizes() {
	contentHeight := max(0, m.height-5)

	for _, tab := range m.tabs {
		if tab != nil {
			tab.SetSize(m.width, contentHeight)
		}
	}
}

// quit detaches from service events and stops the program.
func (m *Model) quit() tea.Cmd {
	if m.services != nil && m.eventChannel != nil {
		m.services.Unsubscribe(m.eventChannel)
		m.eventChannel = nil
	}
	return tea.Quit
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil

	case key.Matches(msg, m.keymap.Escape):
		m.showHelp = false
		return nil
	}

	if m.showHelp {
		return nil
	}

	switch {
	case key.Matches(msg, m.keymap.Tab1):
		m.switchTab(TabWeather)
	case key.Matches(msg, m.keymap.Tab2):
		m.switchTab(TabMonthly)
	case key.Matches(msg, m.keymap.Tab3):
		m.switchTab(TabHourWeekday)
	case key.Matches(msg, m.keymap.Tab4):
		m.switchTab(TabTimeWeather)
	case key.Matches(msg, m.keymap.Tab5):
		m.switchTab(TabInfo)

	case key.Matches(msg, m.keymap.NextTab):
		m.switchTab(TabID((int(m.activeTab) + 1) % len(m.tabs)))

	case key.Matches(msg, m.keymap.PrevTab):
		m.switchTab(TabID((int(m.activeTab) - 1 + len(m.tabs)) % len(m.tabs)))

	case key.Matches(msg, m.keymap.Year):
		return m.cycleFilter()

	case key.Matches(msg, m.keymap.Reload):
		return m.reload(true)

	case key.Matches(msg, m.keymap.Export):
		return m.exportActive()
	}

	// Let the tab handle other keys
	return nil
}

// View renders the application UI.
func (m *Model) View() string {
	var b strings.Builder

	if m.width > 0 {
		b.WriteString(m.renderNavbar())
		b.WriteString("\n")
	}

	if !m.ready {
		b.WriteString(components.RenderSpinnerCentered(m.spinner, m.width, max(m.height-1, 1)))
		return b.String()
	}

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		b.WriteString(m.tabs[m.activeTab].View())
	} else {
		b.WriteString(m.renderPlaceholder())
	}

	mainView := b.String()

	if m.showHelp {
		mainView = m.overlayCentered(mainView, m.renderHelp())
	}

	if notifications := m.renderNotifications(); len(notifications) > 0 {
		return m.overlayToasts(mainView, notifications)
	}

	return mainView
}

func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := lipgloss.Width(overlay)

	y := max((m.height-len(overlayLines))/2, 0)
	x := max((m.width-overlayWidth)/2, 0)

	// Grow the view so the overlay is never cut off at the bottom
	for len(mainLines) < y+len(overlayLines) {
		mainLines = append(mainLines, "")
	}

	for i, overlayLine := range overlayLines {
		mainLine := mainLines[y+i]

		left := ansi.Truncate(mainLine, x, "")
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		if lipgloss.Width(left) < x {
			left += strings.Repeat(" ", x-lipgloss.Width(left))
		}

		mainLines[y+i] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderNavbar() string {
	var tabs []string

	for i := range len(m.tabs) {
		name := TabID(i).String()
		if TabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	badge := styles.FilterBadgeStyle.Render(i18n.T("filter.year", map[string]any{
		"Year": m.state.GetFilter().String(),
	}))
	gap := m.width - lipgloss.Width(tabBar) - lipgloss.Width(badge) - 2
	if gap > 0 {
		tabBar = lipgloss.JoinHorizontal(lipgloss.Top, tabBar, strings.Repeat(" ", gap), badge)
	}

	return m.styles.TabBar.Width(m.width).Render(tabBar)
}

func (m *Model) renderNotifications() []string {
	notifications := m.state.GetNotifications()
	if len(notifications) == 0 {
		return nil
	}

	var toasts []string
	for _, n := range notifications {
		var style lipgloss.Style
		var prefix string

		switch n.Type {
		case NotificationSuccess:
			style = m.styles.NotificationSuccess
			prefix = "[OK]"
		case NotificationError:
			style = m.styles.NotificationError
			prefix = "[ERR]"
		case NotificationWarning:
			style = m.styles.NotificationWarning
			prefix = "[WARN]"
		case NotificationInfo:
			style = m.styles.NotificationInfo
			prefix = "[INFO]"
		case NotificationLoading:
			style = m.styles.NotificationInfo
			prefix = m.spinner.View()
		}

		content := style.Render(fmt.Sprintf("%s %s", prefix, n.Message))
		toasts = append(toasts, m.styles.Toast.Render(content))
	}

	return toasts
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)
	startY := 2

	for len(mainLines) < startY+len(toastLines) {
		mainLines = append(mainLines, "")
	}

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		mainLine := mainLines[lineIdx]
		mainLineWidth := lipgloss.Width(mainLine)

		if mainLineWidth < startX {
			mainLines[lineIdx] = mainLine + strings.Repeat(" ", startX-mainLineWidth) + toastLine
		} else {
			mainLines[lineIdx] = ansi.Truncate(mainLine, startX, "") + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Title.Render(i18n.T("help.title")))
	lines = append(lines, "")

	row := func(keys, desc string) string {
		return fmt.Sprintf("  %s %s",
			styles.HelpKeyStyle.Render(fmt.Sprintf("%-12s", keys)),
			styles.HelpDescStyle.Render(desc))
	}

	lines = append(lines, row("1-5", i18n.T("help.tabs")))
	lines = append(lines, row("tab/shift+tab", i18n.T("help.next_tab")))
	lines = append(lines, row("↑/↓ j/k", i18n.T("help.scroll")))
	lines = append(lines, row("t", i18n.T("help.year")))
	lines = append(lines, row("r", i18n.T("help.reload")))
	lines = append(lines, row("e", i18n.T("help.export")))
	lines = append(lines, row("?", i18n.T("help.help")))
	lines = append(lines, row("q/ctrl+c", i18n.T("help.quit")))

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		if tabHelp := m.tabs[m.activeTab].ShortHelp(); len(tabHelp) > 0 {
			lines = append(lines, "")
			lines = append(lines, m.styles.Highlight.Render(m.activeTab.String()))
			for _, binding := range tabHelp {
				lines = append(lines, row(binding.Help().Key, binding.Help().Desc))
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Subtle.Render(i18n.T("help.close")))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPlaceholder() string {
	return m.styles.Content.Render(m.styles.Subtle.Render(i18n.T("status.no_data")))
}

func loadedText(stats *models.DatasetStats) string {
	if stats == nil {
		return i18n.T("status.no_data")
	}
	return i18n.T("status.loaded", map[string]any{
		"Days":  stats.DayRows,
		"Hours": stats.HourRows,
	})
}

func errorText(err error) string {
	if err == nil {
		return i18n.T("status.error", map[string]any{"Error": "unknown"})
	}
	return i18n.T("status.error", map[string]any{"Error": err.Error()})
}
