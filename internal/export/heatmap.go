package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/i18n"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/palette"
	"github.com/j-veylop/bike-rental-dashboard-tui/internal/services/report"
)

var (
	white     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black     = color.RGBA{A: 0xFF}
	gridColor = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

// heatmapLayout holds the pixel geometry of the annotated matrix.
type heatmapLayout struct {
	left, top    int
	cellW, cellH int
	barX, barW   int
}

func (e *Exporter) layoutHeatmap(rows, cols int) heatmapLayout {
	const (
		left      = 130
		top       = 60
		bottom    = 70
		colorbarW = 24
		gap       = 30
		legendW   = 70
	)
	gridW := e.width - left - gap - colorbarW - legendW
	gridH := e.height - top - bottom
	return heatmapLayout{
		left:  left,
		top:   top,
		cellW: gridW / cols,
		cellH: gridH / rows,
		barX:  left + gridW + gap,
		barW:  colorbarW,
	}
}

// renderTimeWeather draws the time-of-day by weather matrix with one
// annotated cell per observed combination and a color bar.
func (e *Exporter) renderTimeWeather(w io.Writer, r *report.Report) error {
	m := r.TimeWeather
	lo, hi, _ := m.Range()

	rows, cols := len(models.AllTimesOfDay), len(models.AllWeather)
	l := e.layoutHeatmap(rows, cols)

	img := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	title := r.Title()
	drawText(img, (e.width-textWidth(title))/2, 30, title, black)

	for ri, tc := range models.AllTimesOfDay {
		y := l.top + ri*l.cellH
		label := i18n.TimeOfDay(tc)
		drawText(img, l.left-10-textWidth(label), y+l.cellH/2+4, label, black)

		for ci, wc := range models.AllWeather {
			x := l.left + ci*l.cellW
			cell := image.Rect(x, y, x+l.cellW, y+l.cellH)

			if !m.Has(tc, wc) {
				fill(img, cell, white)
				outline(img, cell, gridColor)
				continue
			}

			col := palette.Reds(palette.Normalize(m.Mean(tc, wc), lo, hi))
			fill(img, cell, col)

			text := fmt.Sprintf("%.0f", m.Mean(tc, wc))
			textCol := black
			if palette.IsDark(col) {
				textCol = white
			}
			drawText(img, x+(l.cellW-textWidth(text))/2, y+l.cellH/2+4, text, textCol)
		}
	}

	gridBottom := l.top + rows*l.cellH
	for ci, wc := range models.AllWeather {
		label := i18n.CrossWeather(wc)
		x := l.left + ci*l.cellW + (l.cellW-textWidth(label))/2
		drawText(img, x, gridBottom+20, label, black)
	}

	xName := i18n.T("chart.time_weather.xlabel")
	drawText(img, l.left+(cols*l.cellW-textWidth(xName))/2, gridBottom+50, xName, black)
	drawText(img, 10, l.top-12, i18n.T("chart.time_weather.ylabel"), black)

	e.drawColorbar(img, l, gridBottom, lo, hi)

	return png.Encode(w, img)
}

func (e *Exporter) drawColorbar(img *image.RGBA, l heatmapLayout, bottom int, lo, hi float64) {
	height := bottom - l.top
	if height <= 0 {
		return
	}
	for py := 0; py < height; py++ {
		t := 1 - float64(py)/float64(height-1)
		row := image.Rect(l.barX, l.top+py, l.barX+l.barW, l.top+py+1)
		fill(img, row, palette.Reds(t))
	}
	outline(img, image.Rect(l.barX, l.top, l.barX+l.barW, bottom), gridColor)

	drawText(img, l.barX+l.barW+6, l.top+10, fmt.Sprintf("%.0f", hi), black)
	drawText(img, l.barX+l.barW+6, bottom, fmt.Sprintf("%.0f", lo), black)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func drawText(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func textWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
