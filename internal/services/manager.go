// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/config"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/db"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/export"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/loader"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
)

type (
	// DatasetLoadedEvent is emitted when the CSV files were reimported.
	DatasetLoadedEvent struct {
		Result *loader.Result
		Stats  *models.DatasetStats
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DatasetLoadedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()         {}

// Notifier raises a desktop notification.
type Notifier func(title, body string) error

func beeepNotify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	database    *db.DB
	loader      *loader.Service
	reports     *report.Service
	exporter    *export.Exporter
	notify      Notifier
	stopChan    chan struct{}
	closeOnce   sync.Once
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager. The dataset is not loaded until
// Reload is called.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:      cfg,
		stopChan: make(chan struct{}),
		exporter: export.New(cfg.ExportDir),
	}
	if cfg.DesktopNotify {
		m.notify = beeepNotify
	}

	var err error
	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	m.loader = loader.New(m.database, cfg.DayCSVPath, cfg.HourCSVPath)
	m.reports = report.New(m.database)

	if cfg.WatchFiles {
		if err := m.loader.StartWatching(); err != nil {
			// The dashboard still works without live reload.
			logger.Warn("File watching disabled", "error", err)
		}
	}

	go m.routeEvents()

	return m, nil
}

// SetNotifier replaces the desktop notifier. nil disables notifications.
func (m *Manager) SetNotifier(n Notifier) {
	m.mu.Lock()
	m.notify = n
	m.mu.Unlock()
}

// routeEvents routes events from the loader to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.loader.Events():
			m.handleLoaderEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleLoaderEvent(event loader.Event) {
	switch event.Type {
	case loader.EventLoaded:
		stats, err := m.database.DatasetStats(models.YearAll)
		if err != nil {
			m.broadcast(ErrorEvent{Service: "db", Error: err})
			return
		}
		m.broadcast(DatasetLoadedEvent{Result: event.Result, Stats: stats})
		m.checkNotifications(stats)

	case loader.EventError:
		m.broadcast(ErrorEvent{
			Service: "loader",
			Error:   event.Error,
		})
	}
}

// checkNotifications raises a desktop notification after a background
// reload.
func (m *Manager) checkNotifications(stats *models.DatasetStats) {
	m.mu.RLock()
	notify := m.notify
	m.mu.RUnlock()

	if notify == nil {
		return
	}

	body := i18n.T("notify.reloaded", map[string]any{
		"Days":  stats.DayRows,
		"Hours": stats.HourRows,
	})
	if err := notify(i18n.T("app.title"), body); err != nil {
		logger.Warn("Desktop notification failed", "error", err)
	}
}

// Reload imports the CSV files, skipping unchanged ones unless force is set,
// and returns the resulting dataset statistics.
func (m *Manager) Reload(ctx context.Context, force bool) (*loader.Result, *models.DatasetStats, error) {
	res, err := m.loader.Load(ctx, force)
	if err != nil {
		return nil, nil, err
	}
	if force && res.Changed() {
		// Full replacement leaves free pages behind.
		if err := m.database.Vacuum(); err != nil {
			logger.Warn("Vacuum failed", "db", m.database.Path(), "error", err)
		}
	}
	stats, err := m.database.DatasetStats(models.YearAll)
	if err != nil {
		return res, nil, err
	}
	return res, stats, nil
}

// Report builds one report.
func (m *Manager) Report(kind models.ReportKind, filter models.YearFilter) (*report.Report, error) {
	return m.reports.Build(kind, filter)
}

// Reports builds all reports in tab order.
func (m *Manager) Reports(filter models.YearFilter) ([]*report.Report, error) {
	return m.reports.BuildAll(filter)
}

// Stats returns dataset statistics for the filter.
func (m *Manager) Stats(filter models.YearFilter) (*models.DatasetStats, error) {
	return m.database.DatasetStats(filter)
}

// Export renders one report to a PNG file and returns its path.
func (m *Manager) Export(kind models.ReportKind, filter models.YearFilter) (string, error) {
	r, err := m.reports.Build(kind, filter)
	if err != nil {
		return "", err
	}
	return m.exporter.Export(r)
}

// ExportAll renders every report to PNG files.
func (m *Manager) ExportAll(filter models.YearFilter) ([]string, error) {
	reports, err := m.reports.BuildAll(filter)
	if err != nil {
		return nil, err
	}
	return m.exporter.ExportAll(reports)
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, WaitForEvent(ch)
}

// WaitForEvent returns a tea.Cmd for the next event on a channel. It yields
// nil once the channel is closed.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return event
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Config returns the configuration the manager was created with.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	var errs []error

	m.closeOnce.Do(func() {
		if m.stopChan != nil {
			close(m.stopChan)
		}

		m.mu.Lock()
		for _, sub := range m.subscribers {
			close(sub)
		}
		m.subscribers = nil
		m.mu.Unlock()

		if m.loader != nil {
			if err := m.loader.Close(); err != nil {
				errs = append(errs, err)
			}
		}

		if m.database != nil {
			if err := m.database.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})

	return errors.Join(errs...)
}
