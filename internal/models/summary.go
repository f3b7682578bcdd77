// Package models defines data structures and domain types.
package models

import "time"

// ContentDaily aggregates content responses for one day.
type ContentDaily struct {
	Date   time.Time
	Count  int
	Tokens int64
	Cost   float64
}

// ModelDaily aggregates model creations for one day.
type ModelDaily struct {
	Date            time.Time
	Total           int
	Standardized    int
	NonStandardized int
}

// PhotoDaily aggregates photo uploads for one day.
type PhotoDaily struct {
	Date    time.Time
	Images  int64 // sum of image_count
	SGNos   int   // one row per product listing
	WebOpen int
}

// ContentTotals sums ContentDaily buckets over a range.
type ContentTotals struct {
	Count  int
	Tokens int64
	Cost   float64
}

// ModelTotals sums ModelDaily buckets over a range.
type ModelTotals struct {
	Total           int
	Standardized    int
	NonStandardized int
}

// PhotoTotals sums PhotoDaily buckets over a range.
type PhotoTotals struct {
	Images  int64
	SGNos   int
	WebOpen int
}

// RangeSummary holds totals and display-ready daily rows for a date range.
// Daily rows are ordered most recent first.
type RangeSummary struct {
	Range       DateRange
	ContentDays []ContentDaily
	ModelDays   []ModelDaily
	PhotoDays   []PhotoDaily
	Content     ContentTotals
	Models      ModelTotals
	Photos      PhotoTotals
}

// HasContent returns true if any content response fell in the range.
func (r *RangeSummary) HasContent() bool { return len(r.ContentDays) > 0 }

// HasModels returns true if any model creation fell in the range.
func (r *RangeSummary) HasModels() bool { return len(r.ModelDays) > 0 }

// HasPhotos returns true if any photo upload fell in the range.
func (r *RangeSummary) HasPhotos() bool { return len(r.PhotoDays) > 0 }

// PeriodSummary is a RangeSummary for one of the canonical trailing windows.
type PeriodSummary struct {
	RangeSummary
	Period Period
}
