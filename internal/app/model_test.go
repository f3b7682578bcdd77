package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/workload-dashboard-tui/internal/db"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/report"
	"github.com/j-veylop/workload-dashboard-tui/internal/services"
)

func readyModel(mgr *services.Manager) *Model {
	model := NewModel(mgr)
	model.ready = true
	model.width = 100
	model.height = 30
	return model
}

func TestNewModel(t *testing.T) {
	model := NewModel(nil)
	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if model.state == nil {
		t.Error("State should be initialized")
	}
	if model.activeTab != TabOverview {
		t.Error("Default tab should be Overview")
	}
	if len(model.tabs) != 4 {
		t.Errorf("Should have 4 tab placeholders, got %d", len(model.tabs))
	}
}

func TestNewModel_DefaultRange(t *testing.T) {
	mgr := newTestManager(t, sampleStore())
	model := NewModel(mgr)

	r := model.GetState().GetRange()
	if got := r.End.Format(models.DateLayout); got != "2024-01-02" {
		t.Errorf("Range end = %s, want 2024-01-02", got)
	}
	if got := r.Start.Format(models.DateLayout); got != "2023-01-02" {
		t.Errorf("Range start = %s, want 2023-01-02", got)
	}
}

func TestModel_Init(t *testing.T) {
	model := NewModel(nil)
	if model.Init() == nil {
		t.Error("Init returned nil command")
	}
	notifs := model.state.GetNotifications()
	if len(notifs) != 1 || notifs[0].ID != LoadingNotificationID {
		t.Error("Init should show the loading notification")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	model := NewModel(nil)
	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	m, ok := newModel.(*Model)
	if !ok {
		t.Fatal("Update returned wrong model type")
	}
	if m.width != 100 || m.height != 50 {
		t.Errorf("Size = %dx%d, want 100x50", m.width, m.height)
	}
	if !m.ready {
		t.Error("Model should be ready after WindowSizeMsg")
	}
}

func TestModel_TabKeys(t *testing.T) {
	tests := []struct {
		key  string
		want TabID
	}{
		{"1", TabOverview},
		{"2", TabDaily},
		{"3", TabCharts},
		{"4", TabInfo},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			model := readyModel(nil)
			model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if model.activeTab != tt.want {
				t.Errorf("ActiveTab = %v, want %v", model.activeTab, tt.want)
			}
		})
	}
}

func TestModel_CycleTabs(t *testing.T) {
	model := readyModel(nil)

	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyShiftTab})
	if model.activeTab != TabInfo {
		t.Errorf("ActiveTab = %v, want Info", model.activeTab)
	}
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	if model.activeTab != TabOverview {
		t.Errorf("ActiveTab = %v, want Overview", model.activeTab)
	}

	model.Update(TabSwitchMsg{Tab: TabCharts})
	if model.activeTab != TabCharts {
		t.Errorf("ActiveTab = %v, want Charts", model.activeTab)
	}
}

func TestModel_InputFocusSuspendsShortcuts(t *testing.T) {
	model := readyModel(nil)
	model.Update(InputFocusMsg{Focused: true})

	if cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd != nil {
		t.Error("q should be typed into the input, not quit")
	}
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if model.activeTab != TabOverview {
		t.Error("Tab keys should be ignored while an input is focused")
	}

	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should still quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce QuitMsg")
	}
}

func TestModel_ReloadKey(t *testing.T) {
	model := readyModel(nil)
	if cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}}); cmd != nil {
		t.Error("Reload without services should be a no-op")
	}

	mgr := newTestManager(t, sampleStore())
	model = readyModel(mgr)
	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}})
	if cmd == nil {
		t.Fatal("R should request a reload")
	}
	if _, ok := cmd().(ReloadMsg); !ok {
		t.Error("R should produce ReloadMsg")
	}

	model.Update(ReloadMsg{})
	if !model.state.Loading.Data {
		t.Error("ReloadMsg should mark data as loading")
	}
}

func TestModel_Update_Tick(t *testing.T) {
	model := NewModel(nil)
	_, cmd := model.Update(TickMsg{Time: time.Now()})
	if cmd == nil {
		t.Error("TickMsg should return a command (next tick)")
	}
}

func TestModel_DataLoaded(t *testing.T) {
	mgr := newTestManager(t, sampleStore())
	model := readyModel(mgr)
	model.Init()

	msg := NewCommands(mgr).LoadData()()
	model.Update(msg)

	if model.state.IsInitialLoading() {
		t.Error("Initial loading should be cleared")
	}
	if model.state.GetSnapshot() == nil {
		t.Fatal("Snapshot should be stored")
	}
	if len(model.state.GetPeriods()) != 3 {
		t.Error("Period summaries should be stored")
	}
	if !model.state.IsRangeLoading() {
		t.Error("A range report should be requested after the data loads")
	}
	for _, n := range model.state.GetNotifications() {
		if n.ID == LoadingNotificationID {
			t.Error("Loading notification should be cleared")
		}
	}
}

func TestModel_DataLoadFailure(t *testing.T) {
	model := readyModel(nil)
	_, cmd := model.Update(DataLoadedMsg{Error: errors.New("record store unreachable")})

	if model.state.GetError() == nil {
		t.Error("Error should be stored")
	}
	if cmd == nil {
		t.Error("Failure should raise a notification")
	}
}

func TestModel_RangeMessages(t *testing.T) {
	model := readyModel(nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	model.Update(SetRangeMsg{Range: models.NewDateRange(end, start)})
	if model.state.GetRange().Valid() {
		t.Error("An inverted range should be rejected")
	}

	model.Update(SetRangeMsg{Range: models.NewDateRange(start, end)})
	if got := model.state.GetRange(); !got.Start.Equal(start) || !got.End.Equal(end) {
		t.Errorf("Range = %v, want %s..%s", got, start, end)
	}

	summary := models.RangeSummary{Range: models.NewDateRange(start, end)}
	summary.Content.Count = 4
	model.state.SetLoading(ResourceRange, true)
	model.Update(RangeLoadedMsg{Summary: summary})
	if model.state.IsRangeLoading() {
		t.Error("Range loading should be cleared")
	}
	if got := model.state.GetRangeSummary(); got == nil || got.Content.Count != 4 {
		t.Error("Range summary should be stored")
	}

	_, cmd := model.Update(RangeLoadedMsg{Error: errors.New("bad range")})
	if cmd == nil {
		t.Error("Range failure should raise a notification")
	}
}

func TestModel_View(t *testing.T) {
	model := NewModel(nil)

	view := model.View()
	if !strings.Contains(view, "Loading...") {
		t.Error("View should show Loading when not ready")
	}

	model.ready = true
	model.width = 80
	model.height = 24

	view = model.View()
	if !strings.Contains(view, "Overview") {
		t.Error("View should show Overview tab")
	}
	if !strings.Contains(view, "not available") {
		t.Error("View should show placeholder text")
	}
}

func TestModel_Help(t *testing.T) {
	model := readyModel(nil)

	model.Update(ToggleHelpMsg{})
	if !model.showHelp {
		t.Error("showHelp should be true")
	}

	view := model.View()
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("View should show help modal")
	}

	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	if model.showHelp {
		t.Error("showHelp should be false after escape")
	}
}

func TestModel_Notifications(t *testing.T) {
	model := NewModel(nil)
	model.state.ClearAllNotifications()

	model.Update(AddNotificationMsg{Message: "Test Note", Type: NotificationInfo})

	if len(model.state.GetNotifications()) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(model.state.GetNotifications()))
	}

	model.ready = true
	model.width = 80
	model.height = 24
	if !strings.Contains(model.View(), "Test Note") {
		t.Error("View should show notification")
	}
}

func TestModel_HandleServiceEvent(t *testing.T) {
	model := NewModel(nil)

	if cmd := model.handleServiceEvent(services.ErrorEvent{Service: "loader", Error: errors.New("x")}); cmd == nil {
		t.Error("Error event should trigger notification command")
	}
	if cmd := model.handleServiceEvent(services.DataReloadedEvent{Reason: "events.db"}); cmd != nil {
		t.Error("Reload event without services should be ignored")
	}

	mgr := newTestManager(t, sampleStore())
	model = NewModel(mgr)
	if cmd := model.handleServiceEvent(services.DataReloadedEvent{Reason: "events.db"}); cmd == nil {
		t.Error("Reload event should fetch the new snapshot")
	}
}

func TestModel_Update_LoadingMessages(t *testing.T) {
	model := NewModel(nil)
	model.state.SetLoading(ResourceInitial, false)

	model.Update(StartLoadingMsg{Resource: ResourceData})
	if !model.state.Loading.Data {
		t.Error("Loading.Data should be true")
	}

	model.Update(StopLoadingMsg{Resource: ResourceData})
	if model.state.Loading.Data {
		t.Error("Loading.Data should be false")
	}
	for _, n := range model.state.GetNotifications() {
		if n.ID == LoadingNotificationID {
			t.Error("Loading notification should be cleared when idle")
		}
	}

	_, cmd := model.Update(ErrorMsg{Error: errors.New("boom"), Context: "test"})
	if cmd == nil {
		t.Error("ErrorMsg should trigger a notification")
	}
}

func TestModel_HandleSpinnerTick(t *testing.T) {
	model := NewModel(nil)
	msg := spinner.TickMsg{Time: time.Now(), ID: model.spinner.ID()}
	if _, cmd := model.Update(msg); cmd == nil {
		t.Error("Spinner tick should schedule the next tick")
	}
}

func TestTabID_String(t *testing.T) {
	tests := []struct {
		tab  TabID
		want string
	}{
		{TabOverview, "Overview"},
		{TabDaily, "Daily"},
		{TabCharts, "Charts"},
		{TabInfo, "Info"},
		{TabID(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.tab.String(); got != tt.want {
			t.Errorf("TabID(%d).String() = %s, want %s", tt.tab, got, tt.want)
		}
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, km.Reload) {
		t.Error("r should reload")
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(km.FullHelp()) != 4 {
		t.Errorf("FullHelp groups = %d, want 4", len(km.FullHelp()))
	}
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()
	if s.Title.Render("x") == "" {
		t.Error("Title style should render")
	}
}

func TestModel_HandleRangeLoadedErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  NotificationType
		wantText  string
		wantState bool
	}{
		{
			name:     "InvalidRange",
			err:      fmt.Errorf("%w: 2024-01-03 ~ 2024-01-01", report.ErrInvalidRange),
			wantType: NotificationWarning,
			wantText: "Invalid range",
		},
		{
			name:      "Connection",
			err:       fmt.Errorf("failed to load: %w", db.ErrConnection),
			wantType:  NotificationError,
			wantText:  "Failed to load data",
			wantState: true,
		},
		{
			name:      "Schema",
			err:       &db.SchemaError{Table: db.TablePhotoUploads, Column: "sgno"},
			wantType:  NotificationError,
			wantText:  "Failed to load data",
			wantState: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel(nil)
			model.state.SetLoading(ResourceRange, true)

			cmds := model.handleRangeLoaded(RangeLoadedMsg{Error: tt.err})
			if len(cmds) != 1 {
				t.Fatalf("Expected one command, got %d", len(cmds))
			}
			msg, ok := cmds[0]().(AddNotificationMsg)
			if !ok {
				t.Fatal("Expected an AddNotificationMsg")
			}
			if msg.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", msg.Type, tt.wantType)
			}
			if !strings.HasPrefix(msg.Message, tt.wantText) {
				t.Errorf("Message = %q, want prefix %q", msg.Message, tt.wantText)
			}
			if model.state.IsRangeLoading() {
				t.Error("Range loading should be cleared")
			}
			if got := model.state.GetError() != nil; got != tt.wantState {
				t.Errorf("State error set = %v, want %v", got, tt.wantState)
			}
		})
	}
}
