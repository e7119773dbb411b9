package geom

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	red  = color.NRGBA{0xff, 0, 0, 0xff}
	blue = color.NRGBA{0, 0, 0xff, 0xff}
)

func TestNewDonut(t *testing.T) {
	_, err := NewDonut([]float64{1, 2}, []string{"a"}, []color.Color{red, blue})
	assert.Error(t, err)
	_, err = NewDonut([]float64{1, -2}, []string{"a", "b"}, []color.Color{red, blue})
	assert.Error(t, err)
	_, err = NewDonut([]float64{1, math.NaN()}, []string{"a", "b"}, []color.Color{red, blue})
	assert.Error(t, err)

	values := []float64{3, 1}
	d, err := NewDonut(values, []string{"a", "b"}, []color.Color{red, blue})
	require.NoError(t, err)
	values[0] = 100
	assert.Equal(t, 4.0, d.Total())
}

func TestDonutWedges(t *testing.T) {
	d, err := NewDonut([]float64{2, 0, 1, 1}, []string{"a", "b", "c", "d"}, []color.Color{red, blue, red, blue})
	require.NoError(t, err)

	wedges, err := d.Wedges()
	require.NoError(t, err)
	require.Len(t, wedges, 4)
	assert.Equal(t, 0.0, wedges[0].Start)
	assert.InDelta(t, math.Pi, wedges[0].Sweep, 1e-12)
	assert.Equal(t, 0.0, wedges[1].Sweep)

	sum := 0.0
	for i, w := range wedges {
		sum += w.Sweep
		if i > 0 {
			prev := wedges[i-1]
			assert.InDelta(t, prev.Start+prev.Sweep, w.Start, 1e-12)
		}
	}
	assert.InDelta(t, 2*math.Pi, sum, 1e-12)

	zero, err := NewDonut([]float64{0}, []string{"a"}, []color.Color{red})
	require.NoError(t, err)
	_, err = zero.Wedges()
	assert.Error(t, err)
}

func TestRingSegment(t *testing.T) {
	c := vg.Point{X: 10, Y: 10}
	ring := ringSegment(c, 5, 10, 0, math.Pi/2)
	require.NotEmpty(t, ring)
	assert.InDelta(t, 20, float64(ring[0].X), 1e-9)
	assert.InDelta(t, 10, float64(ring[0].Y), 1e-9)
	// Outer arc out, inner arc back.
	assert.Equal(t, 0, len(ring)%2)
	last := ring[len(ring)-1]
	assert.InDelta(t, 15, float64(last.X), 1e-9)
	assert.InDelta(t, 10, float64(last.Y), 1e-9)

	pie := ringSegment(c, 0, 10, 0, math.Pi)
	assert.Equal(t, c, pie[len(pie)-1])
}

func TestLabelAlign(t *testing.T) {
	x, y := labelAlign(0)
	assert.Equal(t, text.XLeft, x)
	assert.Equal(t, text.YCenter, y)
	x, _ = labelAlign(math.Pi)
	assert.Equal(t, text.XRight, x)
	x, y = labelAlign(math.Pi / 2)
	assert.Equal(t, text.XCenter, x)
	assert.Equal(t, text.YBottom, y)
	_, y = labelAlign(-math.Pi / 2)
	assert.Equal(t, text.YTop, y)
}

func TestNewRangeBars(t *testing.T) {
	_, err := NewRangeBars([]float64{1}, []float64{2, 3}, []color.Color{red}, 0.5)
	assert.Error(t, err)
	_, err = NewRangeBars([]float64{3}, []float64{2}, []color.Color{red}, 0.5)
	assert.Error(t, err)

	b, err := NewRangeBars([]float64{1, 2}, []float64{5, 3}, []color.Color{red, blue}, 0.9)
	require.NoError(t, err)
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, 1.0, xmin)
	assert.Equal(t, 5.0, xmax)
	assert.Equal(t, -0.5, ymin)
	assert.Equal(t, 1.5, ymax)
}

func TestPlotters(t *testing.T) {
	d, err := NewDonut([]float64{2, 1}, []string{"a", "b"}, []color.Color{red, blue})
	require.NoError(t, err)
	d.Width = 0.35
	b, err := NewRangeBars([]float64{1, 2}, []float64{5, 3}, []color.Color{red, blue}, 0.9)
	require.NoError(t, err)

	for _, p := range []plot.Plotter{d, b} {
		plt := plot.New()
		plt.Add(p)
		c := vgimg.New(2*vg.Inch, 2*vg.Inch)
		assert.NotPanics(t, func() { plt.Draw(draw.New(c)) })
	}
}
