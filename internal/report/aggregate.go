package report

import (
	"sort"
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

// DefaultCostPerCall is the flat billing rate per content response in USD.
// It is charged per call, not per token.
const DefaultCostPerCall = 0.25

// dayIndex groups rows by calendar date and returns the distinct dates ascending.
func dayIndex[T Dated](rows []T) (map[time.Time][]T, []time.Time) {
	groups := make(map[time.Time][]T)
	for _, row := range rows {
		d := models.ToCalendarDate(row.EventDate(), nil)
		groups[d] = append(groups[d], row)
	}
	days := make([]time.Time, 0, len(groups))
	for d := range groups {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return groups, days
}

// AggregateContent groups content responses per day, ascending by date.
func AggregateContent(rows []models.ContentResponse, costPerCall float64) []models.ContentDaily {
	groups, days := dayIndex(rows)
	out := make([]models.ContentDaily, 0, len(days))
	for _, d := range days {
		bucket := models.ContentDaily{Date: d}
		for _, r := range groups[d] {
			bucket.Count++
			bucket.Tokens += r.Tokens
		}
		bucket.Cost = Cost(bucket.Count, costPerCall)
		out = append(out, bucket)
	}
	return out
}

// AggregateModels groups model creations per day, ascending by date.
func AggregateModels(rows []models.ModelCreation) []models.ModelDaily {
	groups, days := dayIndex(rows)
	out := make([]models.ModelDaily, 0, len(days))
	for _, d := range days {
		bucket := models.ModelDaily{Date: d}
		for _, r := range groups[d] {
			bucket.Total++
			if r.IsStandardized() {
				bucket.Standardized++
			}
		}
		bucket.NonStandardized = bucket.Total - bucket.Standardized
		out = append(out, bucket)
	}
	return out
}

// AggregatePhotos groups photo uploads per day, ascending by date.
func AggregatePhotos(rows []models.PhotoUpload) []models.PhotoDaily {
	groups, days := dayIndex(rows)
	out := make([]models.PhotoDaily, 0, len(days))
	for _, d := range days {
		bucket := models.PhotoDaily{Date: d}
		for _, r := range groups[d] {
			bucket.Images += r.ImageCount
			bucket.SGNos++
			bucket.WebOpen += r.WebOpen
		}
		out = append(out, bucket)
	}
	return out
}

// Cost prices a number of content responses at a flat per-call rate.
func Cost(count int, costPerCall float64) float64 {
	return float64(count) * costPerCall
}

// SumContent totals content buckets.
func SumContent(days []models.ContentDaily) models.ContentTotals {
	var t models.ContentTotals
	for _, d := range days {
		t.Count += d.Count
		t.Tokens += d.Tokens
		t.Cost += d.Cost
	}
	return t
}

// SumModels totals model buckets.
func SumModels(days []models.ModelDaily) models.ModelTotals {
	var t models.ModelTotals
	for _, d := range days {
		t.Total += d.Total
		t.Standardized += d.Standardized
	}
	t.NonStandardized = t.Total - t.Standardized
	return t
}

// SumPhotos totals photo buckets.
func SumPhotos(days []models.PhotoDaily) models.PhotoTotals {
	var t models.PhotoTotals
	for _, d := range days {
		t.Images += d.Images
		t.SGNos += d.SGNos
		t.WebOpen += d.WebOpen
	}
	return t
}
