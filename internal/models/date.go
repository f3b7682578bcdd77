// Package models defines data structures and domain types.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for display and input.
const DateLayout = "2006-01-02"

// ToCalendarDate truncates a timestamp to its calendar date in loc.
// The result is midnight UTC of that date so that dates from different
// sources compare with Equal, Before and After. A nil loc keeps the
// timestamp's own location.
func ToCalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) time.Time {
	return ToCalendarDate(time.Now(), loc)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// AddDays shifts a calendar date by n days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two timestamps, normalizing both to calendar dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: ToCalendarDate(start, nil),
		End:   ToCalendarDate(end, nil),
	}
}

// Contains reports whether date lies within the range, inclusive on both ends.
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

// Valid reports whether the range is non-empty (start not after end).
func (r DateRange) Valid() bool {
	return !r.Start.After(r.End)
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	if !r.Valid() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// String returns "start ~ end".
func (r DateRange) String() string {
	return fmt.Sprintf("%s ~ %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
