package app

import (
	"errors"
	"testing"
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if s.GetSnapshot() != nil {
		t.Error("Snapshot should be nil")
	}
	if !s.Loading.Initial {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading(ResourceRange, true)
	if !s.IsRangeLoading() {
		t.Error("Range loading should be true")
	}

	s.SetLoading(ResourceRange, false)
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading(ResourceInitial, false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}
	if s.IsInitialLoading() {
		t.Error("IsInitialLoading should be false")
	}

	s.SetLoading("unknown", true)
	if s.AnyLoading() {
		t.Error("Unknown resources should be ignored")
	}
}

func TestState_Data(t *testing.T) {
	s := NewState()
	s.SetError(errors.New("boom"))

	snap := &models.Snapshot{Epoch: 3}
	periods := []models.PeriodSummary{
		{Period: models.PeriodDaily},
		{Period: models.PeriodWeekly},
	}
	s.SetData(snap, periods)

	if s.GetSnapshot() != snap {
		t.Error("GetSnapshot should return the stored snapshot")
	}
	if s.GetError() != nil {
		t.Error("SetData should clear the last error")
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}

	got := s.GetPeriods()
	got[0].Period = models.PeriodMonthly
	if s.GetPeriods()[0].Period != models.PeriodDaily {
		t.Error("GetPeriods should return a copy")
	}

	if _, ok := s.GetPeriod(models.PeriodWeekly); !ok {
		t.Error("Weekly period should be found")
	}
	if _, ok := s.GetPeriod(models.PeriodMonthly); ok {
		t.Error("Monthly period should be missing")
	}
}

func TestState_Range(t *testing.T) {
	s := NewState()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	s.SetRange(models.NewDateRange(start, end))
	if s.GetRange().Days() != 31 {
		t.Errorf("Range days = %d, want 31", s.GetRange().Days())
	}
	if s.GetRangeSummary() != nil {
		t.Error("RangeSummary should be nil before a report")
	}

	narrow := models.NewDateRange(start, start)
	s.SetRangeSummary(models.RangeSummary{Range: narrow})
	if s.GetRangeSummary() == nil {
		t.Fatal("RangeSummary should be stored")
	}
	if s.GetRange() != narrow {
		t.Error("SetRangeSummary should update the range")
	}
}

func TestState_InputFocus(t *testing.T) {
	s := NewState()
	if s.IsInputFocused() {
		t.Error("Input should start unfocused")
	}
	s.SetInputFocused(true)
	if !s.IsInputFocused() {
		t.Error("Input should be focused")
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_NotificationLimit(t *testing.T) {
	s := NewState()
	for range maxNotifications + 5 {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}
	if got := len(s.GetNotifications()); got != maxNotifications {
		t.Errorf("Notifications = %d, want %d", got, maxNotifications)
	}

	s.ClearAllNotifications()
	if len(s.GetNotifications()) != 0 {
		t.Error("ClearAllNotifications should empty the list")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("Expected active notification, got %s", notifs[0].ID)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != LoadingNotificationID {
		t.Errorf("Expected ID %s, got %s", LoadingNotificationID, notifs[0].ID)
	}

	s.SetLoadingNotification("still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification after update")
	}
	if notifs[0].Message != "still loading..." {
		t.Errorf("Expected message still loading..., got %s", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("Loading notification should be cleared")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationLoading, "loading"},
		{NotificationType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestState_TimeSinceUpdate(t *testing.T) {
	s := NewState()
	if s.TimeSinceUpdate() != 0 {
		t.Error("TimeSinceUpdate should be zero before data")
	}
	s.SetData(&models.Snapshot{}, nil)
	if s.TimeSinceUpdate() < 0 {
		t.Error("TimeSinceUpdate should not be negative")
	}
}
