// Package models defines data structures and domain types.
package models

// Period selects one of the canonical trailing windows.
type Period int

const (
	// PeriodDaily covers today only.
	PeriodDaily Period = iota
	// PeriodWeekly covers the last 7 calendar days including today.
	PeriodWeekly
	// PeriodMonthly covers the last 30 calendar days including today.
	PeriodMonthly
)

// Periods lists the canonical windows in display order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// String returns the display name for a period.
func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "Daily"
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	default:
		return "Unknown"
	}
}

// Days returns the window length; today counts as day 1.
func (p Period) Days() int {
	switch p {
	case PeriodDaily:
		return 1
	case PeriodWeekly:
		return 7
	case PeriodMonthly:
		return 30
	default:
		return 1
	}
}

// Next cycles to the next period.
func (p Period) Next() Period {
	return (p + 1) % Period(len(Periods))
}

// Prev cycles to the previous period.
func (p Period) Prev() Period {
	n := Period(len(Periods))
	return (p + n - 1) % n
}

// ParsePeriod maps "daily", "weekly" or "monthly" to a Period.
func ParsePeriod(s string) (Period, bool) {
	switch s {
	case "daily", "day", "1":
		return PeriodDaily, true
	case "weekly", "week", "7":
		return PeriodWeekly, true
	case "monthly", "month", "30":
		return PeriodMonthly, true
	default:
		return PeriodDaily, false
	}
}
