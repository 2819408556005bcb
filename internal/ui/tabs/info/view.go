package info

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/styles"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/version"
)

const (
	minCardWidth = 50
	maxCardWidth = 80
	dateLayout   = "2006-01-02"
)

// View renders the info tab.
func (m *Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderDatasetCard(),
		m.renderSettingsCard(),
		m.renderAboutCard(),
	)

	m.viewport.SetContent(content)
	return styles.DocStyle.Render(m.viewport.View())
}

func (m *Model) cardWidth() int {
	return min(max(m.width-6, minCardWidth), maxCardWidth)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render(i18n.T("info.title"))
	return lipgloss.JoinVertical(lipgloss.Left, title, "")
}

// renderDatasetCard shows which files are loaded and what they cover.
func (m *Model) renderDatasetCard() string {
	stats := m.state.GetStats()

	rows := []string{styles.CardTitleStyle.Render(i18n.T("app.title")), ""}

	if !stats.HasData() {
		rows = append(rows,
			renderRow(i18n.T("info.day_file"), notLoaded()),
			renderRow(i18n.T("info.hour_file"), notLoaded()),
		)
		return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	rows = append(rows,
		renderRow(i18n.T("info.day_file"), sourceText(stats.DaySource)),
		renderRow(i18n.T("info.hour_file"), sourceText(stats.HourSource)),
		renderRow(i18n.T("info.range"), fmt.Sprintf("%s → %s  (%s)",
			stats.FirstDate.Format(dateLayout),
			stats.LastDate.Format(dateLayout),
			i18n.T("info.days", map[string]any{"Days": stats.Days()}),
		)),
		renderRow(i18n.T("info.total"), styles.InfoTextStyle.Render(humanize.Comma(stats.TotalRentals))),
	)

	if last := m.state.GetLastUpdated(); !last.IsZero() {
		rows = append(rows, renderRow(i18n.T("info.loaded_at"), last.Format(time.DateTime)))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderSettingsCard() string {
	rows := []string{styles.CardTitleStyle.Render(i18n.T("info.settings")), ""}

	if m.config == nil {
		rows = append(rows, styles.HelpStyle.Render(notLoaded()))
		return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	watching := i18n.T("info.off")
	if m.config.WatchFiles {
		watching = i18n.T("info.on")
	}

	rows = append(rows,
		renderRow(i18n.T("info.database"), m.config.DatabasePath),
		renderRow(i18n.T("info.language"), i18n.Lang()),
		renderRow(i18n.T("info.export_dir"), m.config.ExportDir),
		renderRow(i18n.T("info.watching"), watching),
	)

	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render(version.Name),
		"",
		renderRow("Version", version.GetVersion()),
		renderRow("Commit", version.GetCommit()),
		renderRow("Go", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderRow(label, value string) string {
	return styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value)
}

func sourceText(src models.SourceInfo) string {
	if src.Path == "" {
		return notLoaded()
	}
	return fmt.Sprintf("%s  %s",
		filepath.Base(src.Path),
		styles.HelpStyle.Render(i18n.T("info.rows", map[string]any{"Rows": humanize.Comma(int64(src.Rows))})),
	)
}

func notLoaded() string {
	return i18n.T("info.not_loaded")
}
