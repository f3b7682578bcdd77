package components

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatAmount renders a decimal with thousands separators and two decimals.
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatCost renders a dollar amount.
func FormatCost(v float64) string {
	return "$" + FormatAmount(v)
}

// FormatNumber renders whole numbers without decimals and others with two.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
		return humanize.Comma(int64(v))
	}
	return FormatAmount(v)
}

// FormatPercent renders part/total as a percentage, "-" for an empty total.
func FormatPercent(part, total int64) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}
