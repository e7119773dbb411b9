package geom

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RangeBars draws one horizontal bar per category i at y == i, spanning
// x from Lo[i] to Hi[i]. Use plot.NominalY to label the categories.
type RangeBars struct {
	Lo, Hi []float64
	Colors []color.Color

	// Height is the bar thickness in units of the category axis.
	Height float64
}

var _ plot.Plotter = (*RangeBars)(nil)
var _ plot.DataRanger = (*RangeBars)(nil)

// NewRangeBars returns range bars for the given bounds. lo, hi and colors
// must have the same length and lo[i] <= hi[i] must hold.
func NewRangeBars(lo, hi []float64, colors []color.Color, height float64) (*RangeBars, error) {
	if len(hi) != len(lo) || len(colors) != len(lo) {
		return nil, fmt.Errorf("range bars: %d lows, %d highs and %d colors", len(lo), len(hi), len(colors))
	}
	for i := range lo {
		if math.IsNaN(lo[i]) || math.IsNaN(hi[i]) || lo[i] > hi[i] {
			return nil, fmt.Errorf("range bars: bad range [%g, %g] at %d", lo[i], hi[i], i)
		}
	}
	return &RangeBars{
		Lo:     append([]float64(nil), lo...),
		Hi:     append([]float64(nil), hi...),
		Colors: append([]color.Color(nil), colors...),
		Height: height,
	}, nil
}

// Plot implements plot.Plotter.
func (b *RangeBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	h := b.Height / 2
	for i := range b.Lo {
		y := float64(i)
		x0, x1 := trX(b.Lo[i]), trX(b.Hi[i])
		y0, y1 := trY(y-h), trY(y+h)
		rect := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(b.Colors[i], c.ClipPolygonXY(rect))
	}
}

// DataRange implements plot.DataRanger.
func (b *RangeBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(+1), math.Inf(-1)
	for i := range b.Lo {
		xmin = math.Min(xmin, b.Lo[i])
		xmax = math.Max(xmax, b.Hi[i])
	}
	return xmin, xmax, -0.5, float64(len(b.Lo)) - 0.5
}
