// Package export renders the dashboard reports to PNG files.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/logger"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/palette"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
)

// Default image size in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// ErrNoData is returned when a report has nothing to plot.
var ErrNoData = errors.New("report has no data")

// Exporter writes report charts into a directory.
type Exporter struct {
	dir    string
	width  int
	height int
}

// New creates an exporter writing into dir.
func New(dir string) *Exporter {
	return &Exporter{dir: dir, width: DefaultWidth, height: DefaultHeight}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// FileName returns the file name used for a report. Filtered reports carry
// the year as a suffix.
func FileName(kind models.ReportKind, filter models.YearFilter) string {
	if filter == models.YearAll {
		return kind.Key() + ".png"
	}
	return fmt.Sprintf("%s_%s.png", kind.Key(), filter)
}

// Export renders r into the output directory and returns the written path.
func (e *Exporter) Export(r *report.Report) (string, error) {
	if r.Empty() {
		return "", fmt.Errorf("%s: %w", r.Kind.Key(), ErrNoData)
	}
	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.dir, FileName(r.Kind, r.Filter))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if err := e.Render(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to rename %s: %w", tmp, err)
	}

	logger.Info("Chart exported", "report", r.Kind.Key(), "path", path)
	return path, nil
}

// ExportAll renders every non-empty report and returns the written paths.
func (e *Exporter) ExportAll(reports []*report.Report) ([]string, error) {
	var paths []string
	for _, r := range reports {
		if r.Empty() {
			logger.Warn("Skipping empty report", "report", r.Kind.Key())
			continue
		}
		path, err := e.Export(r)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Render writes r as PNG to w.
func (e *Exporter) Render(w io.Writer, r *report.Report) error {
	if r.Empty() {
		return fmt.Errorf("%s: %w", r.Kind.Key(), ErrNoData)
	}

	var err error
	switch r.Kind {
	case models.ReportWeather:
		err = e.renderWeather(w, r)
	case models.ReportMonthly:
		err = e.renderMonthly(w, r)
	case models.ReportHourWeekday:
		err = e.renderHourWeekday(w, r)
	case models.ReportTimeWeather:
		err = e.renderTimeWeather(w, r)
	default:
		err = fmt.Errorf("unknown report kind %d", r.Kind)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s chart: %w", r.Kind.Key(), err)
	}
	return nil
}

func (e *Exporter) renderWeather(w io.Writer, r *report.Report) error {
	peak, _ := models.PeakWeather(r.Weather)

	bars := make([]chart.Value, 0, len(r.Weather))
	for _, m := range r.Weather {
		col := toDrawing(palette.Muted)
		if m.Weather == peak.Weather {
			col = toDrawing(palette.Highlight)
		}
		bars = append(bars, chart.Value{
			Value: m.Mean,
			Label: i18n.Weather(m.Weather),
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
	}

	bc := chart.BarChart{
		Title:      r.Title(),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      e.width,
		Height:     e.height,
		BarWidth:   140,
		BarSpacing: 60,
		YAxis: chart.YAxis{
			Name:           i18n.T("chart.weather.ylabel"),
			Range:          &chart.ContinuousRange{Min: 0, Max: headroom(peak.Mean)},
			ValueFormatter: commaFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func (e *Exporter) renderMonthly(w io.Writer, r *report.Report) error {
	lo, hi := r.Monthly[0].Total, r.Monthly[0].Total
	for _, m := range r.Monthly {
		lo = min(lo, m.Total)
		hi = max(hi, m.Total)
	}

	bars := make([]chart.Value, 0, len(r.Monthly))
	for _, m := range r.Monthly {
		col := toDrawing(palette.Reds(palette.Normalize(float64(m.Total), float64(lo), float64(hi))))
		bars = append(bars, chart.Value{
			Value: float64(m.Total),
			// The axis label wraps onto two lines: month, then value.
			Label: m.Abbrev() + "\n" + humanize.Comma(m.Total),
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
	}

	bc := chart.BarChart{
		Title:      r.Title(),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 32}},
		Width:      e.width,
		Height:     e.height,
		BarWidth:   56,
		BarSpacing: 18,
		YAxis: chart.YAxis{
			Name:           i18n.T("chart.total"),
			Range:          &chart.ContinuousRange{Min: 0, Max: headroom(float64(hi))},
			ValueFormatter: commaFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func (e *Exporter) renderHourWeekday(w io.Writer, r *report.Report) error {
	hours := make([]float64, 24)
	ticks := make([]chart.Tick, 0, 24)
	for h := range 24 {
		hours[h] = float64(h)
		ticks = append(ticks, chart.Tick{Value: float64(h), Label: fmt.Sprintf("%d", h)})
	}

	_, _, peak, _ := r.HourWeekday.Peak()

	var series []chart.Series
	for d := range 7 {
		if !r.HourWeekday.HasWeekday(d) {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    i18n.Weekday(d),
			XValues: hours,
			YValues: r.HourWeekday.Series(d),
			Style: chart.Style{
				StrokeColor: toDrawing(palette.Weekday(d)),
				StrokeWidth: 2,
			},
		})
	}

	ch := chart.Chart{
		Title:      r.Title(),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      e.width,
		Height:     e.height,
		XAxis: chart.XAxis{
			Name:  i18n.T("chart.hour_weekday.xlabel"),
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: 23},
		},
		YAxis: chart.YAxis{
			Name:           i18n.T("chart.total"),
			Range:          &chart.ContinuousRange{Min: 0, Max: headroom(float64(peak))},
			ValueFormatter: commaFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// headroom returns the axis maximum leaving space above the largest value.
func headroom(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v * 1.1
}

func commaFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return humanize.Comma(int64(f))
	}
	return ""
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
