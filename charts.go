package shipdash

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/shipdash/geom"
)

// File names of the four dashboard charts.
const (
	WarehouseFile = "shipping_per_warehouse.png"
	ModeFile      = "mode_of_shipment.png"
	RatingFile    = "average_customer_rating.png"
	WeightFile    = "weight_distribution.png"
)

// WarehouseChart draws the shipments per warehouse block as vertical
// bars in table order.
func WarehouseChart(counts CategoryCount, theme Theme) (*Figure, error) {
	fig := NewFigure("Shipping per Warehouse", theme)
	p := fig.Plot
	p.X.Label.Text = "Warehouse Block"
	p.Y.Label.Text = "Record Count"
	if len(counts) == 0 {
		return fig, nil
	}

	values := make(plotter.Values, len(counts))
	y := NewScale()
	y.StickyMin = true
	y.Train(0)
	for i, l := range counts {
		values[i] = float64(l.Count)
		y.Train(values[i])
	}
	bars, err := plotter.NewBarChart(values, theme.BarWidth)
	if err != nil {
		return nil, fmt.Errorf("warehouse chart: %w", err)
	}
	bars.Color = MustColor(theme.BarFill)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(counts.Labels()...)
	p.X.LineStyle.Width = axisWidth
	y.Apply(&p.Y)
	return fig, nil
}

// ModeChart draws the shipments per mode as a donut. Colors come from
// theme.ModePalette so that a mode keeps its color between runs.
func ModeChart(counts CategoryCount, theme Theme) (*Figure, error) {
	fig := NewFigure("Mode of Shipment", theme)
	p := fig.Plot
	p.HideAxes()
	if counts.Total() == 0 {
		return fig, nil
	}

	values := make([]float64, len(counts))
	for i, l := range counts {
		values[i] = float64(l.Count)
	}
	labels := counts.Labels()
	donut, err := geom.NewDonut(values, labels, theme.ModePalette.Assign(labels))
	if err != nil {
		return nil, fmt.Errorf("mode chart: %w", err)
	}
	donut.Width = theme.DonutWidth
	donut.TextStyle = p.X.Tick.Label
	donut.TextStyle.Font.Size = theme.LabelSize
	donut.TextStyle.Color = color.Black
	donut.LineStyle.Color = color.White
	donut.LineStyle.Width = vg.Points(0.5)
	p.Add(donut)
	return fig, nil
}

// RatingChart draws one horizontal bar per group spanning [min, max] of
// the rating and, on top of it, a thinner bar spanning [min, mean]. The
// first group is at the bottom.
func RatingChart(stats GroupStats, theme Theme) (*Figure, error) {
	fig := NewFigure("Average Customer Rating", theme)
	p := fig.Plot
	axisColor := MustColor(theme.AxisColor)
	p.X.LineStyle.Color = axisColor
	p.Y.LineStyle.Color = axisColor
	if len(stats) == 0 {
		return fig, nil
	}

	ranges, means, err := ratingBars(stats, theme)
	if err != nil {
		return nil, fmt.Errorf("rating chart: %w", err)
	}
	x := NewScale()
	x.Train(ranges.Lo...)
	x.Train(ranges.Hi...)

	p.Add(ranges, means)
	p.NominalY(stats.Groups()...)
	p.Y.LineStyle.Width = axisWidth
	p.Y.LineStyle.Color = axisColor
	x.Apply(&p.X)
	return fig, nil
}

// ratingBars returns the [min, max] bars and the [min, mean] bars of
// stats, one bar per group in group order.
func ratingBars(stats GroupStats, theme Theme) (ranges, means *geom.RangeBars, err error) {
	n := len(stats)
	lo := make([]float64, n)
	hi := make([]float64, n)
	mean := make([]float64, n)
	rangeFill := make([]color.Color, n)
	meanFill := make([]color.Color, n)
	gray := SetAlpha(MustColor(theme.RangeFill), theme.RangeAlpha)
	for i, s := range stats {
		lo[i], hi[i], mean[i] = s.Min, s.Max, s.Mean
		rangeFill[i] = gray
		meanFill[i] = theme.RatingFill(s.Mean)
	}

	ranges, err = geom.NewRangeBars(lo, hi, rangeFill, theme.RangeHeight)
	if err != nil {
		return nil, nil, err
	}
	means, err = geom.NewRangeBars(lo, mean, meanFill, theme.MeanHeight)
	if err != nil {
		return nil, nil, err
	}
	return ranges, means, nil
}

// WeightChart draws the weight distribution as a histogram.
func WeightChart(bins HistogramBins, theme Theme) (*Figure, error) {
	fig := NewFigure("Weight Distribution", theme)
	p := fig.Plot
	p.Y.Label.Text = "Frequency"
	if len(bins) == 0 {
		return fig, nil
	}

	hbins := make([]plotter.HistogramBin, len(bins))
	x, y := NewScale(), NewScale()
	y.StickyMin = true
	y.Train(0)
	for i, b := range bins {
		hbins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
		x.Train(b.Min, b.Max)
		y.Train(float64(b.Count))
	}
	h := &plotter.Histogram{
		Bins:      hbins,
		Width:     bins[0].Width(),
		FillColor: MustColor(theme.HistFill),
	}
	h.LineStyle.Color = MustColor(theme.HistEdge)
	h.LineStyle.Width = vg.Points(1)
	p.Add(h)
	x.Apply(&p.X)
	y.Apply(&p.Y)
	return fig, nil
}

// axisWidth is the line width of axes that NominalX or NominalY hid.
var axisWidth = vg.Points(0.5)
