package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.Label() != "Loading" {
		t.Errorf("Label = %s, want Loading", s.Label())
	}

	if s.View() == "" {
		t.Error("View returned empty")
	}

	if !strings.Contains(s.ViewWithLabel(), "Loading") {
		t.Error("ViewWithLabel should contain the label")
	}

	if s.Init() == nil {
		t.Error("Init should return command")
	}

	_, cmd := s.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Update should return command for tick")
	}

	if s.Tick() == nil {
		t.Error("Tick should return command")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	view := RenderSpinnerCentered(s, 20, 5)
	if !strings.Contains(view, "Loading...") {
		t.Error("RenderSpinnerCentered should contain the label")
	}
	if got := len(strings.Split(view, "\n")); got != 5 {
		t.Errorf("height = %d, want 5", got)
	}
}

func TestRenderBarChart(t *testing.T) {
	bars := []Bar{
		{Label: "A", Value: 10, Color: lipgloss.Color("#D3D3D3")},
		{Label: "BB", Value: 20, Color: lipgloss.Color("#FF6347")},
	}
	s := RenderBarChart(bars, 40)

	lines := strings.Split(s, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	short := strings.Count(lines[0], "█")
	long := strings.Count(lines[1], "█")
	if long <= short {
		t.Errorf("larger value should have the longer bar: %d <= %d", long, short)
	}
	if !strings.HasPrefix(lines[0], " A │") {
		t.Errorf("labels should be right aligned, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " 20") {
		t.Errorf("value missing in %q", lines[1])
	}
}

func TestRenderBarChart_CustomText(t *testing.T) {
	bars := []Bar{{Label: "Jan", Value: 134933, Text: "134,933"}}
	s := RenderBarChart(bars, 60)
	if !strings.Contains(s, "134,933") {
		t.Errorf("expected custom text in %q", s)
	}
}

func TestRenderBarChart_Empty(t *testing.T) {
	if s := RenderBarChart(nil, 40); !strings.Contains(s, "No data") {
		t.Errorf("unexpected empty render %q", s)
	}
}

func TestRenderBarChart_Zero(t *testing.T) {
	s := RenderBarChart([]Bar{{Label: "A", Value: 0}}, 30)
	if strings.Contains(s, "█") {
		t.Error("zero value should draw no bar")
	}
}

func TestRenderMultiLineChart(t *testing.T) {
	series := []Series{
		{Label: "Sunday", Values: []float64{1, 5, 3}, Color: WeekdaySeriesColor(0)},
		{Label: "Monday", Values: []float64{2, 4, 6}, Color: WeekdaySeriesColor(1)},
	}
	s := RenderMultiLineChart(series, 30, 5, "Hour")
	for _, want := range []string{"Sunday", "Monday", "Hour"} {
		if !strings.Contains(s, want) {
			t.Errorf("chart missing %q", want)
		}
	}

	if s := RenderMultiLineChart(nil, 30, 5, ""); !strings.Contains(s, "No data") {
		t.Error("empty chart should show placeholder")
	}
}

func TestWeekdaySeriesColor(t *testing.T) {
	if WeekdaySeriesColor(0) != asciigraph.Red {
		t.Error("Sunday should be red")
	}
	if WeekdaySeriesColor(9) != asciigraph.Default {
		t.Error("out of range should use default color")
	}
}

func TestRenderHeatmap(t *testing.T) {
	cells := [][]HeatCell{
		{{Text: "210", Present: true, Background: "#FCBBA1", Foreground: "#000000"}, {}},
		{{Text: "40", Present: true, Background: "#FFF5F0", Foreground: "#000000"}, {Text: "462", Present: true}},
	}
	s := RenderHeatmap([]string{"Pagi", "Malam"}, []string{"Cerah", "Hujan"}, cells)

	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	for _, want := range []string{"Cerah", "Hujan", "Pagi", "210", "462"} {
		if !strings.Contains(s, want) {
			t.Errorf("heatmap missing %q", want)
		}
	}
	if lipgloss.Width(lines[1]) != lipgloss.Width(lines[2]) {
		t.Error("rows should have equal width even with blank cells")
	}
}

func TestRenderHeatmap_Empty(t *testing.T) {
	if s := RenderHeatmap(nil, nil, nil); !strings.Contains(s, "No data") {
		t.Errorf("unexpected empty render %q", s)
	}
}

func TestRenderColorScale(t *testing.T) {
	s := RenderColorScale("40", "462", 10, func(float64) lipgloss.Color { return "#FF0000" })
	if !strings.HasPrefix(s, "40 ") || !strings.HasSuffix(s, " 462") {
		t.Errorf("unexpected scale %q", s)
	}
	if strings.Count(s, "█") != 10 {
		t.Errorf("expected 10 steps in %q", s)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer("notty")

	out, err := r.Render("### Ringkasan\n\nPuncak pada **Agustus**.", 60)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Agustus") {
		t.Errorf("rendered output missing text: %q", out)
	}

	// Second call reuses the cached renderer
	if _, err := r.Render("plain", 60); err != nil {
		t.Errorf("cached Render failed: %v", err)
	}
	if len(r.renderers) != 1 {
		t.Errorf("expected one cached renderer, got %d", len(r.renderers))
	}
}

func TestRenderLegend(t *testing.T) {
	items := []LegendItem{
		{Label: "A", Color: lipgloss.Color("#ffffff")},
		{Label: "B", Color: lipgloss.Color("#000000")},
	}
	s := RenderLegend(items)
	if !strings.Contains(s, "A") || !strings.Contains(s, "B") {
		t.Errorf("legend missing labels: %q", s)
	}
}
