package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.spinner.Centered(m.width, m.height)
	}

	periods := m.state.GetPeriods()
	if len(periods) == 0 {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderTitle(periods),
		m.renderPeriodCards(periods),
	}
	if summary, ok := m.state.GetPeriod(m.selected); ok {
		sections = append(sections, m.renderDetail(summary))
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	lines := []string{styles.TitleStyle.Render("Overview")}
	if err := m.state.GetError(); err != nil {
		lines = append(lines, styles.ErrorTextStyle.Render("Error: ")+err.Error(),
			"", styles.HelpStyle.Render("Press r to retry."))
	} else {
		lines = append(lines, styles.HelpStyle.Render("No data loaded yet."))
	}
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderTitle(periods []models.PeriodSummary) string {
	title := styles.TitleStyle.Render("Overview")
	asOf := periods[0].Range.End.Format(models.DateLayout)
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Trailing windows through %s", asOf))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) contentWidth() int {
	return max(m.viewport.Width, 40)
}

func (m *Model) renderPeriodCards(periods []models.PeriodSummary) string {
	cards := make([]components.Card, len(periods))
	selected := -1
	for i, p := range periods {
		cards[i] = components.Card{
			Title:  fmt.Sprintf("%s Summary", p.Period),
			Value:  fmt.Sprintf("%s calls", components.FormatCount(int64(p.Content.Count))),
			Accent: styles.Content,
			Caption: fmt.Sprintf("%s tokens · %s",
				components.FormatCount(p.Content.Tokens), components.FormatCost(p.Content.Cost)),
		}
		if p.Period == m.selected {
			selected = i
		}
	}
	return components.RenderCardRow(cards, m.contentWidth(), selected)
}

func (m *Model) renderDetail(p models.PeriodSummary) string {
	width := m.contentWidth()

	header := styles.SubTitleStyle.Render(fmt.Sprintf("%s Summary  %s", p.Period, p.Range))

	rows := []string{
		header,
		m.renderRow("Content created", components.FormatCount(int64(p.Content.Count))),
		m.renderRow("Total tokens", components.FormatCount(p.Content.Tokens)),
		m.renderRow("Cost", components.FormatCost(p.Content.Cost)),
		m.renderRow("Models created", components.FormatCount(int64(p.Models.Total))),
		m.renderRow("SG NO count", components.FormatCount(int64(p.Photos.SGNos))),
		m.renderRow("Uploaded images", components.FormatCount(p.Photos.Images)),
		"",
		m.modelBar.View("Standardized", int64(p.Models.Standardized), int64(p.Models.Total), width),
		m.photoBar.View("Web open", int64(p.Photos.WebOpen), int64(p.Photos.SGNos), width),
	}

	if len(p.ContentDays) > 1 {
		rows = append(rows, "", styles.SubTitleStyle.Render("API calls per day"), m.renderDailyCalls(p, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDailyCalls draws one bar per day, oldest first.
func (m *Model) renderDailyCalls(p models.PeriodSummary, width int) string {
	n := len(p.ContentDays)
	values := make([]float64, n)
	labels := make([]string, n)
	for i, d := range p.ContentDays {
		values[n-1-i] = float64(d.Count)
		labels[n-1-i] = d.Date.Format("01-02")
	}
	return components.RenderBarChart(values, labels, width)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}
