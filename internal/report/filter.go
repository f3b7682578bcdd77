// Package report aggregates loaded event tables into daily buckets and
// range summaries. Every function here is pure: inputs are never modified
// and each call builds fresh output.
package report

import (
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

// Dated is implemented by every event row kind.
type Dated interface {
	EventDate() time.Time
}

// FilterRange returns the rows whose calendar date lies in r, inclusive on
// both ends. Input order is preserved and the input slice is not modified.
func FilterRange[T Dated](rows []T, r models.DateRange) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if r.Contains(models.ToCalendarDate(row.EventDate(), nil)) {
			out = append(out, row)
		}
	}
	return out
}

// TrailingWindow returns [today-(days-1), today]. Today counts as day 1,
// so days == 1 yields a single-day range.
func TrailingWindow(today time.Time, days int) (models.DateRange, error) {
	if days < 1 {
		return models.DateRange{}, ErrInvalidWindow
	}
	today = models.ToCalendarDate(today, nil)
	return models.DateRange{
		Start: models.AddDays(today, -(days - 1)),
		End:   today,
	}, nil
}

// DefaultRangeDays is how far back the custom range reaches by default.
const DefaultRangeDays = 365

// DefaultRange returns the initial custom range: the trailing days through today.
func DefaultRange(today time.Time, days int) models.DateRange {
	if days <= 0 {
		days = DefaultRangeDays
	}
	today = models.ToCalendarDate(today, nil)
	return models.DateRange{
		Start: models.AddDays(today, -days),
		End:   today,
	}
}
