package overview

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/workload-dashboard-tui/internal/app"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/report"
)

var today = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func loadedState(t *testing.T) *app.State {
	t.Helper()
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	one := 1
	snap := &models.Snapshot{
		ContentResponses: []models.ContentResponse{
			{JobID: "a", Tokens: 100, Date: day1},
			{JobID: "b", Tokens: 50, Date: day1},
			{JobID: "c", Tokens: 200, Date: today},
		},
		ModelCreations: []models.ModelCreation{{ModelID: "m", Date: today, Standard: &one}},
		PhotoUploads:   []models.PhotoUpload{{SGNo: "SG", Date: today, ImageCount: 7, WebOpen: 1}},
	}
	periods, err := report.NewEngine(report.DefaultCostPerCall).Periods(snap, today)
	if err != nil {
		t.Fatalf("Periods failed: %v", err)
	}

	state := app.NewState()
	state.SetLoading(app.ResourceInitial, false)
	state.SetData(snap, periods)
	return state
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Selected() != models.PeriodDaily {
		t.Error("Daily should be selected first")
	}
}

func TestModel_Init(t *testing.T) {
	m := New(app.NewState())
	if m.Init() == nil {
		t.Error("Init should start the spinner")
	}
}

func TestModel_ViewLoading(t *testing.T) {
	m := New(app.NewState())
	m.SetSize(80, 20)
	if !strings.Contains(m.View(), "Loading workload data") {
		t.Error("View should show the spinner while loading")
	}
}

func TestModel_ViewError(t *testing.T) {
	state := app.NewState()
	state.SetLoading(app.ResourceInitial, false)
	state.SetError(errors.New("record store unreachable"))

	m := New(state)
	m.SetSize(80, 20)
	view := m.View()
	if !strings.Contains(view, "record store unreachable") {
		t.Error("View should show the load error")
	}
}

func TestModel_ViewData(t *testing.T) {
	m := New(loadedState(t))
	m.SetSize(120, 60)

	view := m.View()
	for _, want := range []string{"Daily Summary", "Weekly Summary", "Monthly Summary", "$0.25", "2024-01-02"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModel_CyclePeriods(t *testing.T) {
	m := New(loadedState(t))
	m.SetSize(120, 60)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Selected() != models.PeriodWeekly {
		t.Errorf("Selected = %v, want Weekly", m.Selected())
	}
	view := m.View()
	if !strings.Contains(view, "API calls per day") {
		t.Error("Weekly detail should chart calls per day")
	}
	if !strings.Contains(view, "$0.75") {
		t.Error("Weekly detail should show the 3-call cost")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Selected() != models.PeriodMonthly {
		t.Errorf("Selected = %v, want Monthly", m.Selected())
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState())
	if len(m.ShortHelp()) != 2 {
		t.Error("ShortHelp should list the period keys")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp returned empty")
	}
}
