package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "events.db")
	if err := os.WriteFile(dbPath, nil, 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	w, err := New(dbPath, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := w.Close(); err != nil {
			t.Logf("Close() failed: %v", err)
		}
	})

	return w, dbPath
}

func TestNew_EmptyPath(t *testing.T) {
	if _, err := New("", time.Second); err == nil {
		t.Error("New(\"\") should fail")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "events.db")
	if _, err := New(path, time.Second); err == nil {
		t.Error("New() should fail when the directory does not exist")
	}
}

func TestNew_DefaultDebounce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "events.db")
	w, err := New(dbPath, 0)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer w.Close()

	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
	}
	if w.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", w.Path(), dbPath)
	}
}

func TestWatchFileChange(t *testing.T) {
	w, dbPath := newTestWatcher(t)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(dbPath, []byte{byte(i)}, 0600); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}

	select {
	case event := <-w.Events():
		if event.Type != EventSourceChanged {
			t.Errorf("event type = %v, want EventSourceChanged", event.Type)
		}
		if event.Path != dbPath {
			t.Errorf("event path = %q, want %q", event.Path, dbPath)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for EventSourceChanged")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	w, dbPath := newTestWatcher(t)

	other := filepath.Join(filepath.Dir(dbPath), "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	select {
	case event := <-w.Events():
		t.Errorf("unexpected event for unrelated file: %+v", event)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestMatches(t *testing.T) {
	w := &Watcher{filePath: "/data/events.db"}

	tests := []struct {
		name string
		want bool
	}{
		{"/data/events.db", true},
		{"/data/events.db-wal", true},
		{"/data/events.db-shm", true},
		{"/data/events.db-journal", true},
		{"/data/events.db.bak", false},
		{"/data/other.db", false},
	}
	for _, tt := range tests {
		if got := w.matches(tt.name); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSendEvent_Full(t *testing.T) {
	w, _ := newTestWatcher(t)

	// Fill channel
	for i := 0; i < 20; i++ {
		w.sendEvent(Event{Type: EventSourceChanged})
	}

	if len(w.Events()) != cap(w.eventChan) {
		t.Errorf("expected %d events, got %d", cap(w.eventChan), len(w.Events()))
	}
}

func TestClose_Idempotent(t *testing.T) {
	w, _ := newTestWatcher(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestFire_SkipsUntouchedFile(t *testing.T) {
	w, dbPath := newTestWatcher(t)

	// Touching only an empty WAL leaves the signature unchanged
	if err := os.WriteFile(dbPath+"-wal", nil, 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	w.fire(dbPath + "-wal")

	select {
	case event := <-w.Events():
		t.Errorf("unexpected event: %+v", event)
	default:
	}

	if err := os.WriteFile(dbPath+"-wal", []byte("frame"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	w.fire(dbPath + "-wal")

	select {
	case event := <-w.Events():
		if event.Type != EventSourceChanged {
			t.Errorf("event type = %v, want EventSourceChanged", event.Type)
		}
	default:
		t.Error("expected an event after WAL content changed")
	}
}
