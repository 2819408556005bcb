package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/ui/styles"
)

// HeatCell is one cell of an annotated heatmap. Cells without Present are
// drawn blank.
type HeatCell struct {
	Text       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Present    bool
}

// RenderHeatmap draws a labelled grid of colored cells. Column width adapts
// to the widest column label or cell text.
func RenderHeatmap(rowLabels, colLabels []string, cells [][]HeatCell) string {
	if len(rowLabels) == 0 || len(colLabels) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	rowLabelW := 0
	for _, l := range rowLabels {
		rowLabelW = max(rowLabelW, ansi.StringWidth(l))
	}

	colW := 0
	for _, l := range colLabels {
		colW = max(colW, ansi.StringWidth(l))
	}
	for _, row := range cells {
		for _, c := range row {
			colW = max(colW, ansi.StringWidth(c.Text))
		}
	}
	colW += 2

	headerStyle := lipgloss.NewStyle().Width(colW).Align(lipgloss.Center).Foreground(styles.TextSecondary)
	rowStyle := lipgloss.NewStyle().Width(rowLabelW).Align(lipgloss.Right).Foreground(styles.TextSecondary)
	blank := lipgloss.NewStyle().Width(colW).Render("")

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", rowLabelW+1))
	for _, l := range colLabels {
		b.WriteString(headerStyle.Render(l))
	}
	b.WriteString("\n")

	for i, label := range rowLabels {
		b.WriteString(rowStyle.Render(label))
		b.WriteString(" ")
		for j := range colLabels {
			if i >= len(cells) || j >= len(cells[i]) || !cells[i][j].Present {
				b.WriteString(blank)
				continue
			}
			c := cells[i][j]
			b.WriteString(lipgloss.NewStyle().
				Width(colW).
				Align(lipgloss.Center).
				Background(c.Background).
				Foreground(c.Foreground).
				Render(c.Text))
		}
		if i < len(rowLabels)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderColorScale draws a horizontal gradient between two value labels.
func RenderColorScale(lo, hi string, steps int, color func(t float64) lipgloss.Color) string {
	steps = max(steps, 2)

	var b strings.Builder
	b.WriteString(lo + " ")
	for i := range steps {
		t := float64(i) / float64(steps-1)
		b.WriteString(lipgloss.NewStyle().Foreground(color(t)).Render("█"))
	}
	b.WriteString(" " + hi)
	return b.String()
}
