package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

// Engine builds range and period summaries from a loaded snapshot.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	CostPerCall float64
}

// NewEngine returns an engine charging costPerCall per content response.
// A non-positive rate falls back to DefaultCostPerCall.
func NewEngine(costPerCall float64) *Engine {
	if costPerCall <= 0 {
		costPerCall = DefaultCostPerCall
	}
	return &Engine{CostPerCall: costPerCall}
}

// RangeReport summarizes every table over r. Daily rows come back most recent first.
func (e *Engine) RangeReport(snap *models.Snapshot, r models.DateRange) (models.RangeSummary, error) {
	if !r.Valid() {
		return models.RangeSummary{}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}

	summary := models.RangeSummary{
		Range:       r,
		ContentDays: []models.ContentDaily{},
		ModelDays:   []models.ModelDaily{},
		PhotoDays:   []models.PhotoDaily{},
	}
	if snap == nil {
		return summary, nil
	}

	contentDays := AggregateContent(FilterRange(snap.ContentResponses, r), e.CostPerCall)
	modelDays := AggregateModels(FilterRange(snap.ModelCreations, r))
	photoDays := AggregatePhotos(FilterRange(snap.PhotoUploads, r))

	summary.Content = SumContent(contentDays)
	summary.Models = SumModels(modelDays)
	summary.Photos = SumPhotos(photoDays)

	summary.ContentDays = sortDescending(contentDays, func(d models.ContentDaily) time.Time { return d.Date })
	summary.ModelDays = sortDescending(modelDays, func(d models.ModelDaily) time.Time { return d.Date })
	summary.PhotoDays = sortDescending(photoDays, func(d models.PhotoDaily) time.Time { return d.Date })

	return summary, nil
}

// PeriodStats summarizes the trailing window of days ending today.
func (e *Engine) PeriodStats(snap *models.Snapshot, days int, today time.Time) (models.RangeSummary, error) {
	window, err := TrailingWindow(today, days)
	if err != nil {
		return models.RangeSummary{}, err
	}
	return e.RangeReport(snap, window)
}

// Periods summarizes each canonical window (daily, weekly, monthly).
func (e *Engine) Periods(snap *models.Snapshot, today time.Time) ([]models.PeriodSummary, error) {
	out := make([]models.PeriodSummary, 0, len(models.Periods))
	for _, p := range models.Periods {
		s, err := e.PeriodStats(snap, p.Days(), today)
		if err != nil {
			return nil, fmt.Errorf("%s summary: %w", p, err)
		}
		out = append(out, models.PeriodSummary{RangeSummary: s, Period: p})
	}
	return out, nil
}

// sortDescending returns a copy of days ordered most recent first.
func sortDescending[T any](days []T, date func(T) time.Time) []T {
	out := make([]T, len(days))
	copy(out, days)
	sort.SliceStable(out, func(i, j int) bool { return date(out[i]).After(date(out[j])) })
	return out
}
