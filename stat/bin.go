// Package stat contains the numeric kernels behind the dashboard views:
// equal-width binning, frequency counting and min/mean/max summaries.
// The functions work on plain slices and never modify their input.
package stat

import "math"

// DefaultBins is the number of bins used when BinOptions is nil or
// requests no bins.
const DefaultBins = 10

// BinnedData is one histogram bin covering [Min, Max). The last bin of
// a histogram is closed on the right.
type BinnedData struct {
	Min, Max float64
	Count    int64
}

// Width returns Max-Min.
func (b BinnedData) Width() float64 { return b.Max - b.Min }

type BinOptions struct {
	// Bins is the number of equal-width bins.
	Bins int
}

// Bin groups data into equal-width bins spanning the observed minimum and
// maximum and counts occurrences in these bins. A nil options will use
// DefaultBins. NaN and infinite values are left out; data without finite
// values gives no bins. If all values are equal the range is widened to
// [x-0.5, x+0.5].
//
// Adjacent bins share the same edge value, so bins[i].Max == bins[i+1].Min
// holds exactly, and the counts sum to the number of finite values.
func Bin(data []float64, options *BinOptions) []BinnedData {
	data = finite(data)
	if len(data) == 0 {
		return nil
	}
	n := DefaultBins
	if options != nil && options.Bins > 0 {
		n = options.Bins
	}

	min, max := data[0], data[0]
	for _, x := range data[1:] {
		if x < min {
			min = x
		} else if x > max {
			max = x
		}
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}

	edges := Edges(min, max, n)
	counts := make([]int64, n)
	norm := float64(n) / (max - min)
	for _, x := range data {
		b := int((x - min) * norm)
		// Rounding may put x one bin off, correct against the edges.
		if b >= n {
			b = n - 1
		}
		if b > 0 && x < edges[b] {
			b--
		}
		if b < n-1 && x >= edges[b+1] {
			b++
		}
		counts[b]++
	}

	bins := make([]BinnedData, n)
	for i := range bins {
		bins[i] = BinnedData{Min: edges[i], Max: edges[i+1], Count: counts[i]}
	}
	return bins
}

// Edges returns the n+1 edges of n equal-width bins between min and max.
// The last edge is max itself.
func Edges(min, max float64, n int) []float64 {
	edges := make([]float64, n+1)
	step := (max - min) / float64(n)
	for i := 0; i < n; i++ {
		edges[i] = min + float64(i)*step
	}
	edges[n] = max
	return edges
}

// Total sums the counts of bins.
func Total(bins []BinnedData) int64 {
	var t int64
	for _, b := range bins {
		t += b.Count
	}
	return t
}

// finite returns data without NaN and infinite values. data itself is
// returned if there are none.
func finite(data []float64) []float64 {
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			kept := append([]float64(nil), data[:i]...)
			for _, y := range data[i+1:] {
				if !math.IsNaN(y) && !math.IsInf(y, 0) {
					kept = append(kept, y)
				}
			}
			return kept
		}
	}
	return data
}
