// Package report builds the four dashboard reports and their summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

// Source runs the aggregations. *db.DB implements it.
type Source interface {
	MeanRentalsByWeather(filter models.YearFilter) ([]models.WeatherMean, error)
	TotalRentalsByMonth(filter models.YearFilter) ([]models.MonthlyTotal, error)
	HourWeekdayTotals(filter models.YearFilter) (*models.HourWeekdayPivot, error)
	TimeWeatherMeans(filter models.YearFilter) (*models.TimeWeatherMatrix, error)
}

// Report holds the aggregated data of one chart. Only the field matching
// Kind is populated.
type Report struct {
	Kind        models.ReportKind
	Filter      models.YearFilter
	Weather     []models.WeatherMean
	Monthly     []models.MonthlyTotal
	HourWeekday *models.HourWeekdayPivot
	TimeWeather *models.TimeWeatherMatrix
}

// Empty reports whether the aggregation produced no data.
func (r *Report) Empty() bool {
	switch r.Kind {
	case models.ReportWeather:
		return len(r.Weather) == 0
	case models.ReportMonthly:
		return len(r.Monthly) == 0
	case models.ReportHourWeekday:
		return r.HourWeekday == nil || r.HourWeekday.Empty()
	case models.ReportTimeWeather:
		if r.TimeWeather == nil {
			return true
		}
		_, _, ok := r.TimeWeather.Range()
		return !ok
	default:
		return true
	}
}

// Title returns the localized chart title.
func (r *Report) Title() string {
	return Title(r.Kind)
}

// Title returns the localized chart title of a report kind.
func Title(kind models.ReportKind) string {
	return i18n.T("chart." + kind.Key() + ".title")
}

// TabName returns the localized short name of a report kind.
func TabName(kind models.ReportKind) string {
	return i18n.T("tab." + kind.Key())
}

// Summary returns the localized markdown summary naming the peak of the
// report.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s:\n\n", i18n.T("summary."+r.Kind.Key()+".heading"))

	if r.Empty() {
		b.WriteString(i18n.T("summary.no_data"))
		b.WriteString("\n")
		return b.String()
	}

	switch r.Kind {
	case models.ReportWeather:
		peak, _ := models.PeakWeather(r.Weather)
		b.WriteString(i18n.T("summary.weather.body", map[string]any{
			"Weather": i18n.Weather(peak.Weather),
			"Value":   fmt.Sprintf("%.0f", peak.Mean),
		}))

	case models.ReportMonthly:
		peak, _ := models.PeakMonth(r.Monthly)
		b.WriteString(i18n.T("summary.monthly.body", map[string]any{
			"Month": peak.Abbrev(),
			"Value": humanize.Comma(peak.Total),
		}))

	case models.ReportHourWeekday:
		hour, day, total, _ := r.HourWeekday.Peak()
		b.WriteString(i18n.T("summary.hour_weekday.body", map[string]any{
			"Hour":  hour,
			"Day":   i18n.Weekday(day),
			"Value": humanize.Comma(total),
		}))

	case models.ReportTimeWeather:
		tc, wc, mean, _ := r.TimeWeather.Peak()
		b.WriteString(i18n.T("summary.time_weather.body", map[string]any{
			"Time":    i18n.TimeOfDay(tc),
			"Weather": i18n.CrossWeather(wc),
		}))
		b.WriteString("\n\n")
		b.WriteString(i18n.T("summary.time_weather.value", map[string]any{
			"Value": fmt.Sprintf("%.0f", mean),
		}))
	}

	b.WriteString("\n")
	return b.String()
}

// Service builds reports from a Source.
type Service struct {
	src Source
}

// New creates a report service.
func New(src Source) *Service {
	return &Service{src: src}
}

// Build runs the aggregation behind one report.
func (s *Service) Build(kind models.ReportKind, filter models.YearFilter) (*Report, error) {
	r := &Report{Kind: kind, Filter: filter}

	var err error
	switch kind {
	case models.ReportWeather:
		r.Weather, err = s.src.MeanRentalsByWeather(filter)
	case models.ReportMonthly:
		r.Monthly, err = s.src.TotalRentalsByMonth(filter)
	case models.ReportHourWeekday:
		r.HourWeekday, err = s.src.HourWeekdayTotals(filter)
	case models.ReportTimeWeather:
		r.TimeWeather, err = s.src.TimeWeatherMeans(filter)
	default:
		return nil, fmt.Errorf("unknown report kind %d", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s report: %w", kind.Key(), err)
	}
	return r, nil
}

// BuildAll builds every report in tab order.
func (s *Service) BuildAll(filter models.YearFilter) ([]*Report, error) {
	reports := make([]*Report, 0, len(models.AllReports))
	for _, kind := range models.AllReports {
		r, err := s.Build(kind, filter)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
