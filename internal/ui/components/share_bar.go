package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

// ShareBar renders how much of a total falls into one category, such as
// standardized models or web-open uploads.
type ShareBar struct {
	progress progress.Model
}

// NewShareBar creates a share bar with a gradient between two colors.
func NewShareBar(fromHex, toHex string) ShareBar {
	return ShareBar{
		progress: progress.New(
			progress.WithScaledGradient(fromHex, toHex),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
	}
}

// Ratio returns part/total clamped to [0, 1].
func Ratio(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return min(max(float64(part)/float64(total), 0), 1)
}

// View renders label, bar and "part/total (pct)".
func (b ShareBar) View(label string, part, total int64, width int) string {
	labelStr := lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(18).Render(label)
	detail := fmt.Sprintf("%s/%s (%s)", FormatCount(part), FormatCount(total), FormatPercent(part, total))
	detailStr := lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(detail)

	b.progress.Width = max(width-lipgloss.Width(labelStr)-lipgloss.Width(detailStr)-2, 10)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStr,
		b.progress.ViewAs(Ratio(part, total)),
		" ",
		detailStr,
	)
}
