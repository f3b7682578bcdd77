package app

import (
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// DataLoadedMsg carries the outcome of a snapshot load.
type DataLoadedMsg struct {
	Snapshot *models.Snapshot
	Error    error
	Periods  []models.PeriodSummary
	Reloaded bool
}

// ReloadMsg requests discarding the cache and loading fresh data.
type ReloadMsg struct{}

// SetRangeMsg requests a report for a new custom range.
type SetRangeMsg struct {
	Range models.DateRange
}

// RangeLoadedMsg carries the outcome of a custom range report.
type RangeLoadedMsg struct {
	Error   error
	Summary models.RangeSummary
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Message  string
	Type     NotificationType
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// InputFocusMsg tells the root model whether a tab captures keystrokes.
type InputFocusMsg struct {
	Focused bool
}
