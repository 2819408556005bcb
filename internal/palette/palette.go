// Package palette holds the chart colors shared by the terminal charts and
// the PNG export.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

// Bar colors of the weather chart.
var (
	Highlight = color.RGBA{R: 0xFF, G: 0x63, B: 0x47, A: 0xFF} // tomato
	Muted     = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF} // light grey
)

// weekdayColors are the line colors for Sunday through Saturday.
var weekdayColors = [7]color.RGBA{
	{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}, // red
	{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}, // orange
	{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}, // yellow
	{R: 0x00, G: 0x80, B: 0x00, A: 0xFF}, // green
	{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}, // blue
	{R: 0x80, G: 0x00, B: 0x80, A: 0xFF}, // purple
	{R: 0xFF, G: 0xC0, B: 0xCB, A: 0xFF}, // pink
}

// Weekday returns the line color of a weekday, 0 being Sunday.
func Weekday(d int) color.RGBA {
	if d < 0 || d >= len(weekdayColors) {
		return Muted
	}
	return weekdayColors[d]
}

// redStops is the nine-class sequential red scheme from light to dark.
var redStops = []color.RGBA{
	{R: 0xFF, G: 0xF5, B: 0xF0, A: 0xFF},
	{R: 0xFE, G: 0xE0, B: 0xD2, A: 0xFF},
	{R: 0xFC, G: 0xBB, B: 0xA1, A: 0xFF},
	{R: 0xFC, G: 0x92, B: 0x72, A: 0xFF},
	{R: 0xFB, G: 0x6A, B: 0x4A, A: 0xFF},
	{R: 0xEF, G: 0x3B, B: 0x2C, A: 0xFF},
	{R: 0xCB, G: 0x18, B: 0x1D, A: 0xFF},
	{R: 0xA5, G: 0x0F, B: 0x15, A: 0xFF},
	{R: 0x67, G: 0x00, B: 0x0D, A: 0xFF},
}

// Reds maps t in [0, 1] onto the red scale. Values outside are clamped.
func Reds(t float64) color.RGBA {
	if math.IsNaN(t) || t <= 0 {
		return redStops[0]
	}
	if t >= 1 {
		return redStops[len(redStops)-1]
	}

	pos := t * float64(len(redStops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := redStops[i], redStops[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 0xFF,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Normalize maps v into [0, 1] relative to lo..hi. A degenerate range maps
// everything to 1.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return (v - lo) / (hi - lo)
}

// IsDark reports whether text on c should be light.
func IsDark(c color.RGBA) bool {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return luma < 140
}

// Hex formats c as #RRGGBB.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
