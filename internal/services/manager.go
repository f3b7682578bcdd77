// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/j-veylop/workload-dashboard-tui/internal/config"
	"github.com/j-veylop/workload-dashboard-tui/internal/db"
	"github.com/j-veylop/workload-dashboard-tui/internal/logger"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/report"
	"github.com/j-veylop/workload-dashboard-tui/internal/services/loader"
	"github.com/j-veylop/workload-dashboard-tui/internal/services/watcher"
)

type (
	// DataReloadedEvent is emitted when a background reload produced a new snapshot.
	DataReloadedEvent struct {
		Snapshot *models.Snapshot
		Reason   string
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

func (DataReloadedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()        {}

// Manager owns the loader, engine and clock shared by the TUI and CLI.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	loader      *loader.Loader
	engine      *report.Engine
	watcher     *watcher.Watcher
	now         func() time.Time
	notify      func(title, body string) error
	stopChan    chan struct{}
	subscribers []chan ServiceEvent
	closeOnce   sync.Once
}

// NewManager creates a manager reading from the configured record store.
func NewManager(cfg *config.Config) (*Manager, error) {
	return NewManagerWithOpener(cfg, loader.DBOpener(cfg.DBOptions()))
}

// NewManagerWithOpener creates a manager reading through open.
func NewManagerWithOpener(cfg *config.Config, open loader.Opener) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	m := &Manager{
		cfg:      cfg,
		loader:   loader.New(open, loc),
		engine:   report.NewEngine(cfg.CostPerCall),
		now:      time.Now,
		notify:   notifyDesktop,
		stopChan: make(chan struct{}),
	}

	if cfg.WatchDatabase && cfg.DatabaseDriver == db.DriverSQLite {
		w, err := watcher.New(cfg.DatabasePath, cfg.RefreshDebounce)
		if err != nil {
			// The dashboard works without live reload
			logger.Warn("Database watcher disabled", "path", cfg.DatabasePath, "error", err)
		} else {
			m.watcher = w
			go m.routeEvents()
		}
	}

	return m, nil
}

func notifyDesktop(title, body string) error {
	return beeep.Notify(title, body, "")
}

// routeEvents turns file changes into cache invalidations and reloads.
func (m *Manager) routeEvents() {
	for {
		select {
		case event, ok := <-m.watcher.Events():
			if !ok {
				return
			}
			m.handleWatchEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleWatchEvent(event watcher.Event) {
	switch event.Type {
	case watcher.EventSourceChanged:
		m.backgroundReload("database file changed")

	case watcher.EventError:
		m.broadcast(ErrorEvent{
			Service: "watcher",
			Error:   event.Error,
		})
	}
}

// backgroundReload reloads outside any user action and reports the outcome.
func (m *Manager) backgroundReload(reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap, err := m.Reload(ctx)
	if err != nil {
		logger.Error("Background reload failed", "reason", reason, "error", err)
		m.broadcast(ErrorEvent{Service: "loader", Error: err})
		if m.cfg.DesktopNotifications && m.notify != nil {
			_ = m.notify("Workload dashboard reload failed", err.Error())
		}
		return
	}

	m.broadcast(DataReloadedEvent{Snapshot: snap, Reason: reason})
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

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
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

// SetClock replaces the clock used to compute today.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Today returns the current calendar date in the dashboard timezone.
func (m *Manager) Today() time.Time {
	m.mu.RLock()
	now := m.now
	m.mu.RUnlock()
	return models.ToCalendarDate(now(), m.Location())
}

// Location returns the dashboard timezone.
func (m *Manager) Location() *time.Location {
	if m.cfg.Location == nil {
		return time.Local
	}
	return m.cfg.Location
}

// DefaultRange returns the custom range shown before the user picks one.
func (m *Manager) DefaultRange() models.DateRange {
	return report.DefaultRange(m.Today(), m.cfg.DefaultRangeDays)
}

// Config returns the active configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Engine returns the aggregation engine.
func (m *Manager) Engine() *report.Engine {
	return m.engine
}

// Epoch returns the loader's cache epoch.
func (m *Manager) Epoch() uint64 {
	return m.loader.Epoch()
}

// Snapshot returns the cached snapshot, loading it on first use.
func (m *Manager) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	return m.loader.Load(ctx)
}

// Reload discards the cached snapshot and loads a fresh one.
func (m *Manager) Reload(ctx context.Context) (*models.Snapshot, error) {
	m.loader.Invalidate()
	return m.loader.Load(ctx)
}

// PeriodStats aggregates the trailing window of days ending today.
func (m *Manager) PeriodStats(ctx context.Context, days int) (models.RangeSummary, error) {
	snap, err := m.loader.Load(ctx)
	if err != nil {
		return models.RangeSummary{}, err
	}
	return m.engine.PeriodStats(snap, days, m.Today())
}

// PeriodSummaries aggregates the daily, weekly and monthly windows.
func (m *Manager) PeriodSummaries(ctx context.Context) ([]models.PeriodSummary, error) {
	snap, err := m.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return m.engine.Periods(snap, m.Today())
}

// RangeReport aggregates an inclusive custom date range.
func (m *Manager) RangeReport(ctx context.Context, r models.DateRange) (models.RangeSummary, error) {
	snap, err := m.loader.Load(ctx)
	if err != nil {
		return models.RangeSummary{}, err
	}
	return m.engine.RangeReport(snap, r)
}

// Close stops the watcher and closes subscriber channels.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.stopChan)

		if m.watcher != nil {
			err = m.watcher.Close()
		}

		m.mu.Lock()
		for _, sub := range m.subscribers {
			close(sub)
		}
		m.subscribers = nil
		m.mu.Unlock()
	})
	return err
}
