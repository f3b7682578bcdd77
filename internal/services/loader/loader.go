// Package loader fetches the three event tables and caches the result
// per cache epoch.
package loader

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/j-veylop/workload-dashboard-tui/internal/db"
	"github.com/j-veylop/workload-dashboard-tui/internal/logger"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

// RecordStore is the read capability the loader needs from a connection.
type RecordStore interface {
	ContentResponses(ctx context.Context) ([]models.ContentResponse, error)
	ModelCreations(ctx context.Context) ([]models.ModelCreation, error)
	PhotoUploads(ctx context.Context) ([]models.PhotoUpload, error)
	Close() error
}

// Opener opens a fresh record store connection.
type Opener func(ctx context.Context) (RecordStore, error)

// DBOpener returns an Opener backed by db.Open.
func DBOpener(opts db.Options) Opener {
	return func(ctx context.Context) (RecordStore, error) {
		store, err := db.Open(ctx, opts)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// Loader memoizes one snapshot per cache epoch.
type Loader struct {
	open   Opener
	loc    *time.Location
	now    func() time.Time
	group  singleflight.Group
	mu     sync.RWMutex
	cached *models.Snapshot
	epoch  uint64
}

// New creates a loader. Event dates are normalized to calendar dates in loc.
func New(open Opener, loc *time.Location) *Loader {
	if loc == nil {
		loc = time.Local
	}
	return &Loader{
		open: open,
		loc:  loc,
		now:  time.Now,
	}
}

// Epoch returns the current cache epoch.
func (l *Loader) Epoch() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.epoch
}

// Cached returns the snapshot of the current epoch, or nil when none is loaded.
func (l *Loader) Cached() *models.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cached
}

// Invalidate starts a new cache epoch. The next Load fetches from the store.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.epoch++
	l.cached = nil
	epoch := l.epoch
	l.mu.Unlock()

	logger.Debug("Snapshot cache invalidated", "epoch", epoch)
}

// Load returns the snapshot of the current epoch, fetching it at most once.
// Concurrent callers of the same epoch share one fetch. A failed fetch
// caches nothing.
func (l *Loader) Load(ctx context.Context) (*models.Snapshot, error) {
	l.mu.RLock()
	epoch := l.epoch
	cached := l.cached
	l.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	v, err, _ := l.group.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		l.mu.RLock()
		if l.cached != nil && l.cached.Epoch == epoch {
			snap := l.cached
			l.mu.RUnlock()
			return snap, nil
		}
		l.mu.RUnlock()

		snap, err := l.fetch(ctx, epoch)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		// A fetch that raced an invalidation must not fill the newer slot.
		if l.epoch == epoch {
			l.cached = snap
		}
		l.mu.Unlock()

		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Snapshot), nil
}

// fetch reads all three tables over one connection.
func (l *Loader) fetch(ctx context.Context, epoch uint64) (snap *models.Snapshot, err error) {
	start := time.Now()

	store, err := l.open(ctx)
	if err != nil {
		logger.Error("Failed to open record store", "error", err)
		return nil, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("Failed to close record store", "error", closeErr)
		}
	}()

	content, err := store.ContentResponses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content responses: %w", err)
	}
	modelRows, err := store.ModelCreations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load model creations: %w", err)
	}
	photos, err := store.PhotoUploads(ctx)
	if err != nil {
		return nil, fmt.Errorf("load photo uploads: %w", err)
	}

	snap = &models.Snapshot{
		LoadedAt:         l.now(),
		ContentResponses: normalizeContent(content, l.loc),
		ModelCreations:   normalizeModels(modelRows, l.loc),
		PhotoUploads:     normalizePhotos(photos, l.loc),
		Epoch:            epoch,
	}

	c, m, p := snap.RowCounts()
	logger.Info("Snapshot loaded",
		"epoch", epoch,
		"ai_response", c,
		"model_create", m,
		"photo_upload", p,
		"duration", time.Since(start),
	)

	return snap, nil
}

func normalizeContent(rows []models.ContentResponse, loc *time.Location) []models.ContentResponse {
	out := make([]models.ContentResponse, len(rows))
	for i, r := range rows {
		r.Date = models.ToCalendarDate(r.Date, loc)
		out[i] = r
	}
	return out
}

func normalizeModels(rows []models.ModelCreation, loc *time.Location) []models.ModelCreation {
	out := make([]models.ModelCreation, len(rows))
	for i, r := range rows {
		r.Date = models.ToCalendarDate(r.Date, loc)
		out[i] = r
	}
	return out
}

func normalizePhotos(rows []models.PhotoUpload, loc *time.Location) []models.PhotoUpload {
	out := make([]models.PhotoUpload, len(rows))
	for i, r := range rows {
		r.Date = models.ToCalendarDate(r.Date, loc)
		out[i] = r
	}
	return out
}
