package app

import (
	"context"
	"testing"
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/config"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/report"
	"github.com/j-veylop/workload-dashboard-tui/internal/services"
	"github.com/j-veylop/workload-dashboard-tui/internal/services/loader"
)

var fixedNow = time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)

// memoryStore serves fixed rows without a database.
type memoryStore struct {
	content []models.ContentResponse
	models  []models.ModelCreation
	photos  []models.PhotoUpload
	err     error
}

func (s *memoryStore) ContentResponses(context.Context) ([]models.ContentResponse, error) {
	return s.content, s.err
}

func (s *memoryStore) ModelCreations(context.Context) ([]models.ModelCreation, error) {
	return s.models, s.err
}

func (s *memoryStore) PhotoUploads(context.Context) ([]models.PhotoUpload, error) {
	return s.photos, s.err
}

func (s *memoryStore) Close() error { return nil }

func sampleStore() *memoryStore {
	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC)
	one := 1
	return &memoryStore{
		content: []models.ContentResponse{
			{JobID: "a", Tokens: 100, Date: day1},
			{JobID: "b", Tokens: 50, Date: day1},
			{JobID: "c", Tokens: 200, Date: day2},
		},
		models: []models.ModelCreation{{ModelID: "m", Date: day2, Standard: &one}},
		photos: []models.PhotoUpload{{SGNo: "SG", Date: day2, ImageCount: 7, WebOpen: 1}},
	}
}

func newTestManager(t *testing.T, store *memoryStore) *services.Manager {
	t.Helper()
	cfg := &config.Config{
		Location:         time.UTC,
		CostPerCall:      report.DefaultCostPerCall,
		DefaultRangeDays: 365,
	}
	open := func(context.Context) (loader.RecordStore, error) { return store, nil }
	mgr, err := services.NewManagerWithOpener(cfg, open)
	if err != nil {
		t.Fatalf("NewManagerWithOpener failed: %v", err)
	}
	mgr.SetClock(func() time.Time { return fixedNow })
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}
