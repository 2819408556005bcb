package app

import (
	"time"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/loader"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
)

// TickMsg is sent periodically to expire notifications.
type TickMsg struct {
	Time time.Time
}

// DatasetLoadedMsg carries the result of a dataset (re)load.
type DatasetLoadedMsg struct {
	Result *loader.Result
	Stats  *models.DatasetStats
	Error  error
}

// ReportsLoadedMsg carries the reports built for a year filter.
type ReportsLoadedMsg struct {
	Filter  models.YearFilter
	Reports []*report.Report
	Error   error
}

// ExportedMsg carries the result of a PNG export.
type ExportedMsg struct {
	Kind  models.ReportKind
	Path  string
	Error error
}

// FilterChangedMsg signals that the year filter changed.
type FilterChangedMsg struct {
	Filter models.YearFilter
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}
