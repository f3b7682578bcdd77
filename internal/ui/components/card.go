package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

// Card is a summary tile with a headline value.
type Card struct {
	Title   string
	Value   string
	Caption string
	Accent  lipgloss.Color
}

// RenderCard draws a single card of the given outer width.
func RenderCard(c Card, width int, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.SelectedCardStyle
	}
	// Width covers content and padding only
	inner := max(width-style.GetHorizontalBorderSize()-style.GetHorizontalMargins(), 8)

	value := styles.CardValueStyle
	if c.Accent != "" {
		value = value.Foreground(c.Accent)
	}

	lines := []string{
		styles.CardTitleStyle.Render(c.Title),
		value.Render(c.Value),
	}
	if c.Caption != "" {
		lines = append(lines, styles.CardCaptionStyle.Render(c.Caption))
	}

	return style.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderCardRow lays cards out side by side sharing width. The card at
// selected is highlighted; pass -1 for none.
func RenderCardRow(cards []Card, width, selected int) string {
	if len(cards) == 0 {
		return ""
	}
	each := width / len(cards)

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = RenderCard(c, each, i == selected)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
