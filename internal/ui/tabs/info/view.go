package info

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/styles"
	"github.com/j-veylop/workload-dashboard-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderConfigCard(),
		m.renderDataCard(),
		m.renderAboutCard(),
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, data source and build information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return min(max(m.width-6, 50), 90)
}

func (m *Model) renderConfigCard() string {
	rows := []string{styles.CardTitleStyle.Render("Configuration"), ""}

	if m.config != nil {
		rows = append(rows,
			renderRow("Source", m.config.Source()),
			renderRow("Timezone", m.config.Timezone),
			renderRow("Cost per call", components.FormatCost(m.config.CostPerCall)),
			renderRow("Default range", fmt.Sprintf("%d days", m.config.DefaultRangeDays)),
			renderRow("Watch source", onOff(m.config.WatchDatabase)),
			renderRow("Notifications", onOff(m.config.DesktopNotifications)),
			renderRow("Log file", m.config.LogPath),
			renderRow("Log level", m.config.LogLevel),
		)
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderDataCard() string {
	rows := []string{styles.CardTitleStyle.Render("Data"), ""}

	snap := m.state.GetSnapshot()
	if snap == nil {
		rows = append(rows, styles.HelpStyle.Render("No data loaded yet"))
	} else {
		content, models, photos := snap.RowCounts()
		rows = append(rows,
			renderRow("Cache epoch", strconv.FormatUint(snap.Epoch, 10)),
			renderRow("Loaded", humanize.Time(snap.LoadedAt)),
			renderRow("ai_response", components.FormatCount(int64(content))+" rows"),
			renderRow("model_create", components.FormatCount(int64(models))+" rows"),
			renderRow("photo_upload", components.FormatCount(int64(photos))+" rows"),
		)
	}

	if err := m.state.GetError(); err != nil {
		rows = append(rows, "", styles.ErrorTextStyle.Render("Last error: ")+err.Error())
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("About " + version.Name),
		"",
		renderRow("Version", version.GetVersion()),
		renderRow("Git Commit", version.GetCommit()),
		renderRow("Build Date", version.GetDate()),
		renderRow("Go Version", runtime.Version()),
		renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderRow renders a key-value row.
func renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
