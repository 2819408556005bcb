package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/palette"
	reportsvc "github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/styles"
)

const (
	minChartWidth  = 40
	minChartHeight = 8
	docHMargin     = 6
	docVMargin     = 2
)

// View renders the tab.
func (m *Model) View() string {
	m.viewport.SetContent(m.renderContent())
	return styles.DocStyle.Render(m.viewport.View())
}

func (m *Model) renderContent() string {
	r := m.state.GetReport(m.kind)
	filter := m.state.GetFilter()

	title := styles.TitleStyle.Render(reportsvc.Title(m.kind))
	subtitle := styles.HelpStyle.Render(i18n.T("filter.year", map[string]any{"Year": filter.String()}))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")

	switch {
	case r == nil && m.state.IsLoading():
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.InfoTextStyle.Render(i18n.T("status.loading")))
	case r == nil || r.Empty():
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.HelpStyle.Render(i18n.T("summary.no_data")))
	}

	width := m.contentWidth()
	chart := styles.ChartCardStyle.Render(m.renderChart(r, width-4))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		chart,
		m.renderSummary(r, width),
	)
}

func (m *Model) contentWidth() int {
	return max(m.width-docHMargin, minChartWidth)
}

func (m *Model) chartHeight() int {
	return max((m.height-docVMargin)/2, minChartHeight)
}

func (m *Model) renderChart(r *reportsvc.Report, width int) string {
	switch r.Kind {
	case models.ReportWeather:
		return renderWeather(r.Weather, width)
	case models.ReportMonthly:
		return renderMonthly(r.Monthly, width)
	case models.ReportHourWeekday:
		return renderHourWeekday(r.HourWeekday, width, m.chartHeight())
	case models.ReportTimeWeather:
		return renderTimeWeather(r.TimeWeather)
	}
	return ""
}

// renderWeather highlights the weather condition with the highest mean.
func renderWeather(means []models.WeatherMean, width int) string {
	peak, _ := models.PeakWeather(means)

	bars := make([]components.Bar, 0, len(means))
	for _, wm := range means {
		color := styles.Muted
		if wm.Weather == peak.Weather {
			color = styles.Highlight
		}
		bars = append(bars, components.Bar{
			Label: i18n.Weather(wm.Weather),
			Value: wm.Mean,
			Color: color,
			Text:  fmt.Sprintf("%.0f", wm.Mean),
		})
	}

	axis := styles.HelpStyle.Render(i18n.T("chart.weather.ylabel"))
	return lipgloss.JoinVertical(lipgloss.Left, components.RenderBarChart(bars, width), "", axis)
}

// renderMonthly shades each month on the red scale between the smallest and
// largest total.
func renderMonthly(totals []models.MonthlyTotal, width int) string {
	lo, hi := totals[0].Total, totals[0].Total
	for _, mt := range totals {
		lo = min(lo, mt.Total)
		hi = max(hi, mt.Total)
	}

	bars := make([]components.Bar, 0, len(totals))
	for _, mt := range totals {
		t := palette.Normalize(float64(mt.Total), float64(lo), float64(hi))
		bars = append(bars, components.Bar{
			Label: mt.Abbrev(),
			Value: float64(mt.Total),
			Color: styles.Gradient(t),
			Text:  humanize.Comma(mt.Total),
		})
	}

	axis := styles.HelpStyle.Render(i18n.T("chart.total"))
	return lipgloss.JoinVertical(lipgloss.Left, components.RenderBarChart(bars, width), "", axis)
}

// renderHourWeekday draws one line per weekday across the 24 hours.
func renderHourWeekday(p *models.HourWeekdayPivot, width, height int) string {
	var series []components.Series
	for d := range 7 {
		if !p.HasWeekday(d) {
			continue
		}
		series = append(series, components.Series{
			Label:  i18n.Weekday(d),
			Values: p.Series(d),
			Color:  components.WeekdaySeriesColor(d),
		})
	}

	// asciigraph needs room for the y axis labels
	plotWidth := max(width-12, 24)
	return components.RenderMultiLineChart(series, plotWidth, height, i18n.T("chart.hour_weekday.xlabel"))
}

// renderTimeWeather draws the annotated time-of-day by weather matrix.
// Combinations that never occur stay blank.
func renderTimeWeather(mx *models.TimeWeatherMatrix) string {
	lo, hi, _ := mx.Range()

	rowLabels := make([]string, 0, len(models.AllTimesOfDay))
	cells := make([][]components.HeatCell, 0, len(models.AllTimesOfDay))
	for _, tc := range models.AllTimesOfDay {
		rowLabels = append(rowLabels, i18n.TimeOfDay(tc))

		row := make([]components.HeatCell, 0, len(models.AllWeather))
		for _, wc := range models.AllWeather {
			if !mx.Has(tc, wc) {
				row = append(row, components.HeatCell{})
				continue
			}
			bg := palette.Reds(palette.Normalize(mx.Mean(tc, wc), lo, hi))
			fg := lipgloss.Color("#000000")
			if palette.IsDark(bg) {
				fg = lipgloss.Color("#FFFFFF")
			}
			row = append(row, components.HeatCell{
				Text:       fmt.Sprintf("%.0f", mx.Mean(tc, wc)),
				Background: styles.FromRGBA(bg),
				Foreground: fg,
				Present:    true,
			})
		}
		cells = append(cells, row)
	}

	colLabels := make([]string, 0, len(models.AllWeather))
	for _, wc := range models.AllWeather {
		colLabels = append(colLabels, i18n.CrossWeather(wc))
	}

	scale := components.RenderColorScale(fmt.Sprintf("%.0f", lo), fmt.Sprintf("%.0f", hi), 20, styles.Gradient)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HelpStyle.Render(i18n.T("chart.time_weather.ylabel")+" \\ "+i18n.T("chart.time_weather.xlabel")),
		"",
		components.RenderHeatmap(rowLabels, colLabels, cells),
		"",
		scale,
	)
}
