// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
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
	CreatedAt time.Time
	ID        string
	Message   string
	Type      NotificationType
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// Resources tracked by the loading state.
const (
	ResourceInitial = "initial"
	ResourceData    = "data"
	ResourceRange   = "range"
)

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial bool
	Data    bool
	Range   bool
}

// State is shared by the root model and all tabs.
type State struct {
	mu sync.RWMutex

	Snapshot     *models.Snapshot
	Periods      []models.PeriodSummary
	Range        models.DateRange
	RangeSummary *models.RangeSummary
	LastError    error
	LastUpdated  time.Time

	Loading      LoadingState
	InputFocused bool

	notifications   []Notification
	notificationSeq int
}

// NewState creates the initial state, waiting on the first load.
func NewState() *State {
	return &State{
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case ResourceInitial:
		s.Loading.Initial = loading
	case ResourceData:
		s.Loading.Data = loading
	case ResourceRange:
		s.Loading.Range = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial || s.Loading.Data || s.Loading.Range
}

// IsInitialLoading returns true if initial data is still loading.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// IsRangeLoading returns true while a custom range report is computed.
func (s *State) IsRangeLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Range
}

// SetData stores a loaded snapshot with its period summaries and clears the last error.
func (s *State) SetData(snap *models.Snapshot, periods []models.PeriodSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Snapshot = snap
	s.Periods = periods
	s.LastError = nil
	s.LastUpdated = time.Now()
}

// GetSnapshot returns the loaded snapshot, or nil.
func (s *State) GetSnapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Snapshot
}

// GetPeriods returns a copy of the period summaries.
func (s *State) GetPeriods() []models.PeriodSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	periods := make([]models.PeriodSummary, len(s.Periods))
	copy(periods, s.Periods)
	return periods
}

// GetPeriod returns the summary for p.
func (s *State) GetPeriod(p models.Period) (models.PeriodSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ps := range s.Periods {
		if ps.Period == p {
			return ps, true
		}
	}
	return models.PeriodSummary{}, false
}

// SetRange records the custom range the user asked for.
func (s *State) SetRange(r models.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Range = r
}

// GetRange returns the current custom range.
func (s *State) GetRange() models.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Range
}

// SetRangeSummary stores the report for the current custom range.
func (s *State) SetRangeSummary(summary models.RangeSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Range = summary.Range
	s.RangeSummary = &summary
}

// GetRangeSummary returns the custom range report, or nil.
func (s *State) GetRangeSummary() *models.RangeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.RangeSummary
}

// SetError records the last load failure.
func (s *State) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastError = err
}

// GetError returns the last load failure.
func (s *State) GetError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastError
}

// SetInputFocused marks whether a tab is capturing keystrokes.
func (s *State) SetInputFocused(focused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InputFocused = focused
}

// IsInputFocused reports whether global shortcuts are suspended.
func (s *State) IsInputFocused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.InputFocused
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
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
func (s *State) ClearExpiredNotifications() {
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
func (s *State) GetNotifications() []Notification {
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

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
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
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time data was loaded.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
