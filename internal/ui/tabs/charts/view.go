package charts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

const chartHeight = 8

// View renders the charts tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() || m.state.IsRangeLoading() {
		return m.spinner.Centered(m.width, m.height)
	}

	summary := m.state.GetRangeSummary()
	if summary == nil {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(summary),
		m.renderContent(summary),
		m.renderModels(summary),
		m.renderPhotos(summary),
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	rows := []string{styles.TitleStyle.Render("Charts")}
	if err := m.state.GetError(); err != nil {
		rows = append(rows, styles.ErrorTextStyle.Render("Error: ")+err.Error())
	} else {
		rows = append(rows, styles.HelpStyle.Render("No report yet. Pick a range on the Daily tab."))
	}
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderHeader(s *models.RangeSummary) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Charts"),
		styles.HelpStyle.Render(fmt.Sprintf("%s (%d days), oldest on the left", s.Range, s.Range.Days())),
		"",
	)
}

func (m *Model) cardWidth() int {
	return max(m.width-8, 40)
}

func (m *Model) chartWidth() int {
	// Leave room for the axis labels
	return max(m.cardWidth()-16, 30)
}

// card wraps a titled block of chart lines.
func (m *Model) card(title string, color lipgloss.Color, body ...string) string {
	icon := lipgloss.NewStyle().Foreground(color).Render("■")
	rows := []string{fmt.Sprintf("%s %s", icon, styles.CardTitleStyle.Render(title)), ""}
	for _, b := range body {
		for line := range strings.SplitSeq(b, "\n") {
			rows = append(rows, "  "+line)
		}
		rows = append(rows, "")
	}
	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func noData() string {
	return styles.HelpStyle.Render("No data in range")
}

func (m *Model) renderContent(s *models.RangeSummary) string {
	if !s.HasContent() {
		return m.card("Content Created", styles.Content, noData())
	}
	days := ascending(s.ContentDays)

	calls := make([]float64, len(days))
	tokens := make([]float64, len(days))
	cost := make([]float64, len(days))
	for i, d := range days {
		calls[i] = float64(d.Count)
		tokens[i] = float64(d.Tokens)
		cost[i] = d.Cost
	}

	return m.card("Content Created", styles.Content,
		components.RenderLineChart(calls, m.chartWidth(), chartHeight, "API calls per day"),
		components.RenderLineChart(tokens, m.chartWidth(), chartHeight, "Total tokens per day"),
		components.RenderLineChart(cost, m.chartWidth(), chartHeight, "Cost per day ($)"),
	)
}

func (m *Model) renderModels(s *models.RangeSummary) string {
	if !s.HasModels() {
		return m.card("Models Created", styles.Model, noData())
	}
	days := ascending(s.ModelDays)

	total := make([]float64, len(days))
	std := make([]float64, len(days))
	nonStd := make([]float64, len(days))
	for i, d := range days {
		total[i] = float64(d.Total)
		std[i] = float64(d.Standardized)
		nonStd[i] = float64(d.NonStandardized)
	}

	return m.card("Models Created", styles.Model,
		components.RenderMultiLineChart([]components.Series{
			{Label: "Total", Values: total, Color: asciigraph.Blue, Legend: styles.Content},
			{Label: "Standardized", Values: std, Color: asciigraph.Green, Legend: styles.Success},
			{Label: "Non-Standardized", Values: nonStd, Color: asciigraph.Red, Legend: styles.Error},
		}, m.chartWidth(), chartHeight, "Models per day"),
	)
}

func (m *Model) renderPhotos(s *models.RangeSummary) string {
	if !s.HasPhotos() {
		return m.card("Photos Uploaded", styles.Photo, noData())
	}
	days := ascending(s.PhotoDays)

	images := make([]float64, len(days))
	sgnos := make([]float64, len(days))
	webOpen := make([]float64, len(days))
	for i, d := range days {
		images[i] = float64(d.Images)
		sgnos[i] = float64(d.SGNos)
		webOpen[i] = float64(d.WebOpen)
	}

	return m.card("Photos Uploaded", styles.Photo,
		components.RenderMultiLineChart([]components.Series{
			{Label: "Images", Values: images, Color: asciigraph.Magenta, Legend: styles.Photo},
			{Label: "SG NO", Values: sgnos, Color: asciigraph.Orange, Legend: styles.Model},
			{Label: "Web Open", Values: webOpen, Color: asciigraph.Green, Legend: styles.Success},
		}, m.chartWidth(), chartHeight, "Uploads per day"),
	)
}

// ascending returns a reversed copy of most-recent-first rows.
func ascending[T any](days []T) []T {
	out := slices.Clone(days)
	slices.Reverse(out)
	return out
}
