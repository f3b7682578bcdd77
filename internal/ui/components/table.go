package components

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
)

// Column headings of the per-day tables.
var (
	ContentHeadings = []string{"Date", "Total Tokens", "API Calls", "Cost ($)"}
	ModelHeadings   = []string{"Date", "Total Count", "Standardized", "Non-Standardized"}
	PhotoHeadings   = []string{"Date", "Total Count", "Total sgno", "Total Web Open Chk"}
)

// ContentRows converts content buckets into table rows.
func ContentRows(days []models.ContentDaily) []table.Row {
	rows := make([]table.Row, len(days))
	for i, d := range days {
		rows[i] = table.Row{
			d.Date.Format(models.DateLayout),
			FormatCount(d.Tokens),
			FormatCount(int64(d.Count)),
			FormatAmount(d.Cost),
		}
	}
	return rows
}

// ModelRows converts model buckets into table rows.
func ModelRows(days []models.ModelDaily) []table.Row {
	rows := make([]table.Row, len(days))
	for i, d := range days {
		rows[i] = table.Row{
			d.Date.Format(models.DateLayout),
			FormatCount(int64(d.Total)),
			FormatCount(int64(d.Standardized)),
			FormatCount(int64(d.NonStandardized)),
		}
	}
	return rows
}

// PhotoRows converts upload buckets into table rows.
func PhotoRows(days []models.PhotoDaily) []table.Row {
	rows := make([]table.Row, len(days))
	for i, d := range days {
		rows[i] = table.Row{
			d.Date.Format(models.DateLayout),
			FormatCount(d.Images),
			FormatCount(int64(d.SGNos)),
			FormatCount(int64(d.WebOpen)),
		}
	}
	return rows
}

// Columns spreads headings evenly across width.
func Columns(headings []string, width int) []table.Column {
	if len(headings) == 0 {
		return nil
	}
	// Each cell carries one cell of padding on both sides
	each := max(width/len(headings)-2, 10)
	cols := make([]table.Column, len(headings))
	for i, h := range headings {
		cols[i] = table.Column{Title: h, Width: each}
	}
	return cols
}

// NewDayTable creates a focused table styled like the rest of the dashboard.
func NewDayTable(headings []string, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(Columns(headings, width)),
		table.WithRows(rows),
		table.WithHeight(max(height, 3)),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = styles.TableHeaderStyle.Padding(0, 1)
	s.Cell = styles.TableCellStyle
	s.Selected = styles.TableSelectedStyle
	t.SetStyles(s)

	return t
}
