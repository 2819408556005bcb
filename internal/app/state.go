// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"

	maxNotifications = 10
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	case NotificationLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// AppState is the state shared between the root model and the tabs.
type AppState struct {
	mu sync.RWMutex

	Stats   *models.DatasetStats
	Filter  models.YearFilter
	reports map[models.ReportKind]*report.Report

	Loading     bool
	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// State is the name tabs use for the shared application state.
type State = AppState

// NewState creates an empty state. The dataset is considered loading until
// the first load finishes.
func NewState() *State {
	return &AppState{
		Filter:        models.YearAll,
		reports:       make(map[models.ReportKind]*report.Report),
		Loading:       true,
		notifications: make([]Notification, 0),
	}
}

// SetLoading sets the loading flag.
func (s *AppState) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Loading = loading
}

// IsLoading reports whether the dataset is being (re)loaded.
func (s *AppState) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading
}

// SetStats updates the dataset statistics.
func (s *AppState) SetStats(stats *models.DatasetStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stats = stats
	s.LastUpdated = time.Now()
}

// GetStats returns the current dataset statistics.
func (s *AppState) GetStats() *models.DatasetStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Stats
}

// GetFilter returns the active year filter.
func (s *AppState) GetFilter() models.YearFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Filter
}

// CycleFilter advances the year filter and returns the new value.
func (s *AppState) CycleFilter() models.YearFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Filter = s.Filter.Next()
	return s.Filter
}

// SetReports stores reports built for filter. Reports for a filter that is
// no longer active are ignored and false is returned.
func (s *AppState) SetReports(filter models.YearFilter, reports []*report.Report) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filter != s.Filter {
		return false
	}
	for _, r := range reports {
		if r != nil {
			s.reports[r.Kind] = r
		}
	}
	s.LastUpdated = time.Now()
	return true
}

// GetReport returns the current report of a kind, or nil.
func (s *AppState) GetReport(kind models.ReportKind) *report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports[kind]
}

// AddNotification adds a new notification and returns its ID.
func (s *AppState) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *AppState) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *AppState) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *AppState) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	return active
}

// SetLoadingNotification sets a loading notification message.
func (s *AppState) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *AppState) ClearLoadingNotification() {
	s.RemoveNotification(LoadingNotificationID)
}

// GetLastUpdated returns the last time the state was updated.
func (s *AppState) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}
