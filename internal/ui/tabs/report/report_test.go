package report

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/app"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	reportsvc "github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/components"
)

func TestMain(m *testing.M) {
	i18n.Init("en")
	os.Exit(m.Run())
}

func sampleReports() []*reportsvc.Report {
	pivot := &models.HourWeekdayPivot{}
	for h := range 24 {
		pivot.Set(h, 0, int64(h*10))
		pivot.Set(h, 3, int64(h*20))
	}

	matrix := &models.TimeWeatherMatrix{}
	matrix.Set(models.TimeMorning, models.WeatherClear, 210.4, 100)
	matrix.Set(models.TimeAfternoon, models.WeatherClear, 461.6, 90)
	matrix.Set(models.TimeNight, models.WeatherLightPrecip, 40.0, 30)

	return []*reportsvc.Report{
		{Kind: models.ReportWeather, Weather: []models.WeatherMean{
			{Weather: models.WeatherClear, Mean: 4876.8, Days: 463},
			{Weather: models.WeatherMist, Mean: 4035.9, Days: 247},
		}},
		{Kind: models.ReportMonthly, Monthly: []models.MonthlyTotal{
			{Month: time.January, Total: 134933},
			{Month: time.August, Total: 351194},
		}},
		{Kind: models.ReportHourWeekday, HourWeekday: pivot},
		{Kind: models.ReportTimeWeather, TimeWeather: matrix},
	}
}

func newTab(t *testing.T, kind models.ReportKind) (*Model, *app.State) {
	t.Helper()
	state := app.NewState()
	m := New(state, kind, components.NewMarkdownRenderer("notty"))
	m.SetSize(120, 60)
	return m, state
}

func TestNew(t *testing.T) {
	m := New(app.NewState(), models.ReportMonthly, nil)
	require.NotNil(t, m)
	assert.Equal(t, models.ReportMonthly, m.Kind())
	assert.NotNil(t, m.markdown)
	assert.Nil(t, m.Init())
}

func TestView_Loading(t *testing.T) {
	m, _ := newTab(t, models.ReportWeather)
	view := m.View()
	assert.Contains(t, view, i18n.T("chart.weather.title"))
	assert.Contains(t, view, i18n.T("status.loading"))
}

func TestView_NoData(t *testing.T) {
	m, state := newTab(t, models.ReportMonthly)
	state.SetLoading(false)
	state.SetReports(models.YearAll, []*reportsvc.Report{{Kind: models.ReportMonthly}})

	assert.Contains(t, m.View(), i18n.T("summary.no_data"))
}

func TestView_Reports(t *testing.T) {
	tests := []struct {
		kind models.ReportKind
		want []string
	}{
		{models.ReportWeather, []string{"Clear/Partly Cloudy", "4877", "Weather Summary"}},
		{models.ReportMonthly, []string{"Jan", "Aug", "351,194", "Month Summary"}},
		{models.ReportHourWeekday, []string{"Sunday", "Wednesday", "Hour (0-23)"}},
		{models.ReportTimeWeather, []string{"Morning", "Extreme Weather", "462", "40"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Key(), func(t *testing.T) {
			m, state := newTab(t, tt.kind)
			state.SetLoading(false)
			require.True(t, state.SetReports(models.YearAll, sampleReports()))

			// Measure the full content; the viewport may clip it
			content := m.renderContent()
			for _, want := range tt.want {
				assert.Contains(t, content, want)
			}
			assert.NotEmpty(t, m.View())
		})
	}
}

func TestView_HourWeekdaySkipsMissingDays(t *testing.T) {
	m, state := newTab(t, models.ReportHourWeekday)
	state.SetLoading(false)
	state.SetReports(models.YearAll, sampleReports())

	content := m.renderContent()
	assert.NotContains(t, content, "Monday")
}

func TestSummaryCache(t *testing.T) {
	m, _ := newTab(t, models.ReportWeather)
	r := sampleReports()[0]

	first := m.renderSummary(r, 80)
	assert.Contains(t, first, "Clear/Partly Cloudy")
	assert.Same(t, r, m.summaryFor)

	m.summary = "cached"
	assert.Equal(t, "cached", m.renderSummary(r, 80))
	assert.NotEqual(t, "cached", m.renderSummary(r, 60))
}

func TestUpdate_Scroll(t *testing.T) {
	m, state := newTab(t, models.ReportHourWeekday)
	state.SetLoading(false)
	state.SetReports(models.YearAll, sampleReports())
	m.SetSize(80, 10)
	m.View()

	tab, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, tab)
	assert.Equal(t, 1, m.viewport.YOffset)

	m.Update(app.FilterChangedMsg{Filter: models.Year2011})
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestHelp(t *testing.T) {
	m, _ := newTab(t, models.ReportWeather)
	assert.NotEmpty(t, m.ShortHelp())
	assert.Len(t, m.FullHelp(), 2)
}
