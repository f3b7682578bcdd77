// Package watcher reports changes to a local database file with debouncing.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/j-veylop/workload-dashboard-tui/internal/logger"
)

// DefaultDebounce is used when no debounce interval is configured.
const DefaultDebounce = 500 * time.Millisecond

// Event represents a watcher event.
type Event struct {
	Type  EventType
	Path  string
	Error error
}

// EventType defines the type of watcher event.
type EventType int

const (
	EventSourceChanged EventType = iota
	EventError
)

// Watcher signals when the watched file or its SQLite sidecar files change.
type Watcher struct {
	mu            sync.Mutex
	filePath      string
	debounce      time.Duration
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
	last          signature
	closed        bool
}

// signature captures the on-disk state of the database and its WAL.
// An empty WAL counts as absent: readers create one on open.
type signature struct {
	dbMod   int64
	walMod  int64
	dbSize  int64
	walSize int64
}

func statSignature(path string) signature {
	var sig signature
	if fi, err := os.Stat(path); err == nil {
		sig.dbSize = fi.Size()
		sig.dbMod = fi.ModTime().UnixNano()
	}
	if fi, err := os.Stat(path + "-wal"); err == nil && fi.Size() > 0 {
		sig.walSize = fi.Size()
		sig.walMod = fi.ModTime().UnixNano()
	}
	return sig
}

// New starts watching filePath. The parent directory must exist.
func New(filePath string, debounce time.Duration) (*Watcher, error) {
	if filePath == "" {
		return nil, errors.New("watch path is empty")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		filePath:  filePath,
		debounce:  debounce,
		eventChan: make(chan Event, 16),
		stopChan:  make(chan struct{}),
		last:      statSignature(filePath),
	}

	if err := w.startWatcher(); err != nil {
		return nil, err
	}
	return w, nil
}

// Events returns the event channel.
func (w *Watcher) Events() <-chan Event {
	return w.eventChan
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.filePath
}

func (w *Watcher) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	// Watch the directory (to catch file replacement and WAL writes)
	dir := filepath.Dir(w.filePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go w.watchLoop()
	return nil
}

// matches reports whether name is the database file or one of its
// -wal, -shm or -journal companions.
func (w *Watcher) matches(name string) bool {
	base := filepath.Base(w.filePath)
	got := filepath.Base(name)
	if got == base {
		return true
	}
	suffix, ok := strings.CutPrefix(got, base)
	if !ok {
		return false
	}
	switch suffix {
	case "-wal", "-shm", "-journal":
		return true
	}
	return false
}

// watchLoop handles file system events with debouncing.
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.matches(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.schedule(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendEvent(Event{Type: EventError, Error: err})

		case <-w.stopChan:
			return
		}
	}
}

// schedule restarts the debounce timer so a burst of writes yields one event.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounce, func() {
		w.fire(name)
	})
}

// fire emits a change event unless the file contents look untouched.
func (w *Watcher) fire(name string) {
	sig := statSignature(w.filePath)

	w.mu.Lock()
	if w.closed || sig == w.last {
		w.mu.Unlock()
		return
	}
	w.last = sig
	w.mu.Unlock()

	logger.Debug("Database file changed", "path", name)
	w.sendEvent(Event{Type: EventSourceChanged, Path: w.filePath})
}

func (w *Watcher) sendEvent(event Event) {
	select {
	case w.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-w.eventChan:
		default:
		}
		select {
		case w.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	close(w.stopChan)

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
