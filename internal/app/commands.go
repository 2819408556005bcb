package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second

	// ReloadTimeout bounds a single dataset import.
	ReloadTimeout = 2 * time.Minute
)

// Commands builds the tea.Cmds the model issues. Service-backed commands
// return nil when no manager is attached.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a command that sends a TickMsg after interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Reload imports the CSV files. Unchanged files are skipped unless force
// is set.
func (c *Commands) Reload(force bool) tea.Cmd {
	if c.manager == nil {
		return nil
	}
	mgr := c.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ReloadTimeout)
		defer cancel()

		res, stats, err := mgr.Reload(ctx, force)
		return DatasetLoadedMsg{Result: res, Stats: stats, Error: err}
	}
}

// LoadReports builds every report for the filter.
func (c *Commands) LoadReports(filter models.YearFilter) tea.Cmd {
	if c.manager == nil {
		return nil
	}
	mgr := c.manager
	return func() tea.Msg {
		reports, err := mgr.Reports(filter)
		return ReportsLoadedMsg{Filter: filter, Reports: reports, Error: err}
	}
}

// Export renders one report to PNG.
func (c *Commands) Export(kind models.ReportKind, filter models.YearFilter) tea.Cmd {
	if c.manager == nil {
		return nil
	}
	mgr := c.manager
	return func() tea.Msg {
		path, err := mgr.Export(kind, filter)
		return ExportedMsg{Kind: kind, Path: path, Error: err}
	}
}

// Subscribe registers for service events.
func (c *Commands) Subscribe() tea.Cmd {
	if c.manager == nil {
		return nil
	}
	ch, _ := c.manager.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// ClearNotification removes a notification after delay.
func (c *Commands) ClearNotification(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

func notifyCmd(t NotificationType, message string, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{Type: t, Message: message, Duration: d}
	}
}

// NotifySuccess adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifyCmd(NotificationSuccess, message, DefaultNotificationDuration)
}

// NotifyError adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyCmd(NotificationError, message, LongNotificationDuration)
}

// NotifyWarning adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyCmd(NotificationWarning, message, DefaultNotificationDuration)
}

// NotifyInfo adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyCmd(NotificationInfo, message, QuickNotificationDuration)
}
