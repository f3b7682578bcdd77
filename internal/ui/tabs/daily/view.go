package daily

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

// Rows taken by everything above the table.
const chromeHeight = 14

// View renders the daily tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.spinner.Centered(m.width, m.height)
	}

	sections := []string{
		styles.TitleStyle.Render("Daily Report"),
		m.renderRange(),
		"",
		styles.Segment(datasetNames, int(m.dataset)),
		"",
	}

	summary := m.state.GetRangeSummary()
	switch {
	case m.state.IsRangeLoading():
		sections = append(sections, m.spinner.View())
	case summary == nil:
		sections = append(sections, m.renderMissing())
	default:
		sections = append(sections, m.renderCards(summary))
		if m.hasRows(summary) {
			m.syncTable()
			sections = append(sections, m.table.View())
		} else {
			sections = append(sections, styles.InfoTextStyle.Render("No data in range"))
		}
	}

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderRange() string {
	if m.editing {
		start := styles.BlurredBorderStyle
		end := styles.BlurredBorderStyle
		if m.focus == 0 {
			start = styles.FocusedBorderStyle
		} else {
			end = styles.FocusedBorderStyle
		}
		return lipgloss.JoinHorizontal(lipgloss.Center,
			start.Render(m.start.View()),
			"  ~  ",
			end.Render(m.end.View()),
			"  ",
			styles.HelpStyle.Render("enter apply · esc cancel"),
		)
	}

	r := m.state.GetRange()
	return fmt.Sprintf("%s %s  %s",
		styles.HelpDescStyle.Render("Range:"),
		styles.FocusedStyle.Render(r.String()),
		styles.HelpStyle.Render(fmt.Sprintf("(%d days, e to edit)", r.Days())),
	)
}

func (m *Model) renderMissing() string {
	if err := m.state.GetError(); err != nil {
		return styles.ErrorTextStyle.Render("Error: ") + err.Error()
	}
	return styles.HelpStyle.Render("No report yet.")
}

func (m *Model) hasRows(s *models.RangeSummary) bool {
	switch m.dataset {
	case DatasetModels:
		return s.HasModels()
	case DatasetPhotos:
		return s.HasPhotos()
	default:
		return s.HasContent()
	}
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

func (m *Model) renderCards(s *models.RangeSummary) string {
	var cards []components.Card
	switch m.dataset {
	case DatasetModels:
		cards = []components.Card{
			{Title: "Total Count", Value: components.FormatCount(int64(s.Models.Total)), Accent: styles.Model},
			{Title: "Standardized", Value: components.FormatCount(int64(s.Models.Standardized)), Accent: styles.Success},
			{Title: "Non-Standardized", Value: components.FormatCount(int64(s.Models.NonStandardized)), Accent: styles.Warning},
		}
	case DatasetPhotos:
		cards = []components.Card{
			{Title: "Total Count", Value: components.FormatCount(s.Photos.Images), Accent: styles.Photo},
			{Title: "Total SG NO", Value: components.FormatCount(int64(s.Photos.SGNos)), Accent: styles.Photo},
			{Title: "Web Open", Value: components.FormatCount(int64(s.Photos.WebOpen)),
				Caption: components.FormatPercent(int64(s.Photos.WebOpen), int64(s.Photos.SGNos)) + " of SG NO"},
		}
	default:
		cards = []components.Card{
			{Title: "Total Tokens", Value: components.FormatCount(s.Content.Tokens), Accent: styles.Content},
			{Title: "API Calls", Value: components.FormatCount(int64(s.Content.Count)), Accent: styles.Content},
			{Title: "Cost", Value: components.FormatCost(s.Content.Cost), Accent: styles.Cost},
		}
	}
	return components.RenderCardRow(cards, m.cardWidth(), -1)
}

func (m *Model) tableRows(s *models.RangeSummary) ([]string, []table.Row) {
	switch m.dataset {
	case DatasetModels:
		return components.ModelHeadings, components.ModelRows(s.ModelDays)
	case DatasetPhotos:
		return components.PhotoHeadings, components.PhotoRows(s.PhotoDays)
	default:
		return components.ContentHeadings, components.ContentRows(s.ContentDays)
	}
}

// syncTable rebuilds the table when its source changed.
func (m *Model) syncTable() {
	summary := m.state.GetRangeSummary()
	if summary == nil {
		return
	}
	if m.tableFor.summary == summary && m.tableFor.dataset == m.dataset &&
		m.tableFor.width == m.width && m.tableFor.height == m.height {
		return
	}

	headings, rows := m.tableRows(summary)
	m.table = components.NewDayTable(headings, rows, m.cardWidth(), m.height-chromeHeight)

	m.tableFor.summary = summary
	m.tableFor.dataset = m.dataset
	m.tableFor.width = m.width
	m.tableFor.height = m.height
}
