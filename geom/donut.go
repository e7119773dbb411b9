// Package geom provides plotters for gonum/plot that the plotter package
// lacks: a ring (donut) chart and horizontal range bars.
package geom

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arcStep is the angular resolution of the rendered circles.
const arcStep = math.Pi / 180

// Donut draws a ring chart with one wedge per value. Wedges start at
// StartAngle (radians, 0 is 3 o'clock) and run counter-clockwise. The
// ring is drawn in canvas coordinates, so it stays circular whatever the
// aspect ratio of the plot.
type Donut struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// Width is the ring thickness as a fraction of the outer radius.
	// A Width of 1 gives a pie.
	Width float64

	// Radius is the outer radius as a fraction of half the shorter side
	// of the data area.
	Radius float64

	StartAngle float64

	// LineStyle strokes the wedge outlines; zero width draws none.
	LineStyle draw.LineStyle

	// TextStyle is used for the labels, placed just outside the ring.
	TextStyle text.Style
}

var _ plot.Plotter = (*Donut)(nil)
var _ plot.DataRanger = (*Donut)(nil)

// NewDonut returns a Donut of the given values. labels and colors must
// have one entry per value; values must be finite and not negative.
func NewDonut(values []float64, labels []string, colors []color.Color) (*Donut, error) {
	if len(labels) != len(values) || len(colors) != len(values) {
		return nil, fmt.Errorf("donut: %d values, %d labels and %d colors", len(values), len(labels), len(colors))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("donut: bad value %g for %q", v, labels[i])
		}
	}
	return &Donut{
		Values: append([]float64(nil), values...),
		Labels: append([]string(nil), labels...),
		Colors: append([]color.Color(nil), colors...),
		Width:  1,
		Radius: 0.8,
	}, nil
}

// Total sums the values.
func (d *Donut) Total() float64 {
	t := 0.0
	for _, v := range d.Values {
		t += v
	}
	return t
}

// Wedge is the angular extent of one value, in radians.
type Wedge struct {
	Start, Sweep float64
}

// Wedges returns the wedge of every value. Zero values get zero sweep.
func (d *Donut) Wedges() ([]Wedge, error) {
	total := d.Total()
	if total == 0 {
		return nil, errors.New("donut: values sum to zero")
	}
	wedges := make([]Wedge, len(d.Values))
	angle := d.StartAngle
	for i, v := range d.Values {
		sweep := 2 * math.Pi * v / total
		wedges[i] = Wedge{Start: angle, Sweep: sweep}
		angle += sweep
	}
	return wedges, nil
}

// Plot implements plot.Plotter.
func (d *Donut) Plot(c draw.Canvas, plt *plot.Plot) {
	wedges, err := d.Wedges()
	if err != nil {
		return
	}
	center := c.Center()
	outer := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y) / 2 * vg.Length(d.Radius)
	inner := outer * vg.Length(1-d.Width)

	for i, w := range wedges {
		if w.Sweep == 0 {
			continue
		}
		ring := ringSegment(center, inner, outer, w.Start, w.Sweep)
		c.FillPolygon(d.Colors[i], ring)
		if d.LineStyle.Width > 0 && d.LineStyle.Color != nil {
			c.StrokeLines(d.LineStyle, append(ring, ring[0]))
		}
	}

	if d.TextStyle.Handler == nil {
		return
	}
	for i, w := range wedges {
		mid := w.Start + w.Sweep/2
		sty := d.TextStyle
		sty.XAlign, sty.YAlign = labelAlign(mid)
		c.FillText(sty, polar(center, outer*1.1, mid), d.Labels[i])
	}
}

// DataRange implements plot.DataRanger. The ring does not live in data
// space; the unit square keeps the axes sane.
func (d *Donut) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// ringSegment approximates the ring segment between radii r0 and r1 and
// the angles start and start+sweep by a polygon.
func ringSegment(center vg.Point, r0, r1 vg.Length, start, sweep float64) []vg.Point {
	n := int(math.Ceil(math.Abs(sweep)/arcStep)) + 1
	pts := make([]vg.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		pts = append(pts, polar(center, r1, start+sweep*float64(i)/float64(n-1)))
	}
	if r0 <= 0 {
		return append(pts, center)
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, polar(center, r0, start+sweep*float64(i)/float64(n-1)))
	}
	return pts
}

func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(angle)),
		Y: center.Y + r*vg.Length(math.Sin(angle)),
	}
}

// labelAlign anchors a label so that it grows away from the ring.
func labelAlign(angle float64) (text.XAlignment, text.YAlignment) {
	x, y := math.Cos(angle), math.Sin(angle)
	xa, ya := text.XCenter, text.YCenter
	switch {
	case x > 0.1:
		xa = text.XLeft
	case x < -0.1:
		xa = text.XRight
	}
	switch {
	case y > 0.1:
		ya = text.YBottom
	case y < -0.1:
		ya = text.YTop
	}
	return xa, ya
}
