// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/styles"
)

// weekdaySeriesColors mirror palette.Weekday for the terminal line chart.
var weekdaySeriesColors = [7]asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Orange,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Purple,
	asciigraph.Pink,
}

// WeekdaySeriesColor returns the asciigraph color of a weekday, 0 being Sunday.
func WeekdaySeriesColor(d int) asciigraph.AnsiColor {
	if d < 0 || d >= len(weekdaySeriesColors) {
		return asciigraph.Default
	}
	return weekdaySeriesColors[d]
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
	// Text replaces the formatted value when set.
	Text string
}

// RenderBarChart creates a horizontal bar chart scaled to the largest value.
func RenderBarChart(bars []Bar, width int) string {
	if len(bars) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	maxVal := 0.0
	maxLabelLen := 0
	maxTextLen := 0
	texts := make([]string, len(bars))
	for i, b := range bars {
		maxVal = max(maxVal, b.Value)
		maxLabelLen = max(maxLabelLen, ansi.StringWidth(b.Label))
		texts[i] = b.Text
		if texts[i] == "" {
			texts[i] = humanize.Comma(int64(b.Value + 0.5))
		}
		maxTextLen = max(maxTextLen, len(texts[i]))
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	// Leave room for label, axis and value
	barWidth := max(width-maxLabelLen-maxTextLen-4, 10)

	lines := make([]string, 0, len(bars))
	for i, b := range bars {
		pad := strings.Repeat(" ", maxLabelLen-ansi.StringWidth(b.Label))

		barLen := max(int(b.Value/maxVal*float64(barWidth)+0.5), 0)
		bar := lipgloss.NewStyle().Foreground(b.Color).Render(strings.Repeat("█", barLen))

		lines = append(lines, fmt.Sprintf("%s%s │%s %s", pad, b.Label, bar, texts[i]))
	}

	return strings.Join(lines, "\n")
}

// Series is one line of a multi-line chart.
type Series struct {
	Label  string
	Values []float64
	Color  asciigraph.AnsiColor
}

// RenderMultiLineChart plots several series on shared axes followed by a
// legend.
func RenderMultiLineChart(series []Series, width, height int, caption string) string {
	if len(series) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	width = max(width, 20)
	height = max(height, 3)

	data := make([][]float64, 0, len(series))
	colors := make([]asciigraph.AnsiColor, 0, len(series))
	legend := make([]LegendItem, 0, len(series))
	for _, s := range series {
		data = append(data, s.Values)
		colors = append(colors, s.Color)
		legend = append(legend, LegendItem{Label: s.Label, Color: ansiToLipgloss(s.Color)})
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.LowerBound(0),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)

	return graph + "\n\n" + RenderLegend(legend)
}

// ansiToLipgloss converts a 256-color asciigraph color for the legend swatch.
func ansiToLipgloss(c asciigraph.AnsiColor) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("%d", int(c)))
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
