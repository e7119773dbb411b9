package shipdash

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme holds the fixed look of the dashboard charts. Colors are given
// as names or "#rrggbb" and resolved with String2Color.
type Theme struct {
	Width, Height vg.Length
	DPI           int

	TitleSize vg.Length
	LabelSize vg.Length
	TickSize  vg.Length

	// BarFill colors the warehouse bars, BarWidth is their width.
	BarFill  string
	BarWidth vg.Length

	// HistFill and HistEdge color the weight histogram.
	HistFill string
	HistEdge string

	// RangeFill and RangeAlpha color the min-max bars of the rating
	// chart, HighFill and LowFill the mean bars. A mean at or above
	// RatingThreshold is high.
	RangeFill       string
	RangeAlpha      float64
	RangeHeight     float64
	MeanHeight      float64
	HighFill        string
	LowFill         string
	RatingThreshold float64

	// AxisColor tints the axis lines of the rating chart.
	AxisColor string

	// DonutWidth is the ring thickness as a fraction of the radius.
	DonutWidth  float64
	ModePalette Palette
}

// DefaultTheme is a 640x480 pixel figure in the classic matplotlib
// look.
var DefaultTheme = Theme{
	Width:  6.4 * vg.Inch,
	Height: 4.8 * vg.Inch,
	DPI:    100,

	TitleSize: vg.Points(12),
	LabelSize: vg.Points(10),
	TickSize:  vg.Points(8),

	BarFill:  "tab:blue",
	BarWidth: vg.Points(30),

	HistFill: "tab:orange",
	HistEdge: "white",

	RangeFill:       "lightgray",
	RangeAlpha:      0.8,
	RangeHeight:     0.9,
	MeanHeight:      0.5,
	HighFill:        "tab:green",
	LowFill:         "tab:orange",
	RatingThreshold: 3.0,

	AxisColor: "gray",

	DonutWidth:  0.35,
	ModePalette: ShipmentModePalette,
}

// RatingFill returns the color of a mean rating bar.
func (t Theme) RatingFill(mean float64) color.Color {
	if mean >= t.RatingThreshold {
		return MustColor(t.HighFill)
	}
	return MustColor(t.LowFill)
}
