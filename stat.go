package shipdash

import "github.com/vdobler/shipdash/stat"

// CategoryCount is a frequency table over a categorical column, ordered
// by descending count. Ties keep first-appearance order.
type CategoryCount []stat.Level

// Labels returns the category labels in table order.
func (c CategoryCount) Labels() []string {
	labels := make([]string, len(c))
	for i, l := range c {
		labels[i] = l.Label
	}
	return labels
}

// Total sums all counts.
func (c CategoryCount) Total() int {
	t := 0
	for _, l := range c {
		t += l.Count
	}
	return t
}

// GroupStat is the min/mean/max summary of one group.
type GroupStat struct {
	Group string
	stat.Summary
}

// GroupStats holds one GroupStat per group in lexical order of the group
// label. Renderers draw the groups in this order.
type GroupStats []GroupStat

// Groups returns the group labels.
func (g GroupStats) Groups() []string {
	groups := make([]string, len(g))
	for i, s := range g {
		groups[i] = s.Group
	}
	return groups
}

// HistogramBins is an equal-width binned distribution of a numeric column.
type HistogramBins []stat.BinnedData

// Total sums all bin counts.
func (h HistogramBins) Total() int64 { return stat.Total(h) }

// CountBy counts the records of ds per value of column col.
func CountBy(ds *Dataset, col string) (CategoryCount, error) {
	labels, err := ds.Strings(col)
	if err != nil {
		return nil, err
	}
	return CategoryCount(stat.Count(labels)), nil
}

// SummarizeBy groups ds by groupCol and summarizes valueCol in each group.
func SummarizeBy(ds *Dataset, groupCol, valueCol string) (GroupStats, error) {
	keys, err := ds.Strings(groupCol)
	if err != nil {
		return nil, err
	}
	values, err := ds.Floats(valueCol)
	if err != nil {
		return nil, err
	}
	labels, groups := stat.Group(keys, values)
	stats := make(GroupStats, len(labels))
	for i, l := range labels {
		stats[i] = GroupStat{Group: l, Summary: stat.Summarize(groups[i])}
	}
	return stats, nil
}

// HistogramOf bins the numeric column col into nbins equal-width bins.
// A non-positive nbins means stat.DefaultBins.
func HistogramOf(ds *Dataset, col string, nbins int) (HistogramBins, error) {
	values, err := ds.Floats(col)
	if err != nil {
		return nil, err
	}
	return HistogramBins(stat.Bin(values, &stat.BinOptions{Bins: nbins})), nil
}

// WarehouseCounts counts shipments per warehouse block.
func WarehouseCounts(ds *Dataset) (CategoryCount, error) {
	return CountBy(ds, ColWarehouseBlock)
}

// ModeCounts counts shipments per shipment mode.
func ModeCounts(ds *Dataset) (CategoryCount, error) {
	return CountBy(ds, ColModeOfShipment)
}

// RatingByMode summarizes the customer rating per shipment mode.
func RatingByMode(ds *Dataset) (GroupStats, error) {
	return SummarizeBy(ds, ColModeOfShipment, ColCustomerRating)
}

// WeightHistogram bins the shipment weights.
func WeightHistogram(ds *Dataset, nbins int) (HistogramBins, error) {
	return HistogramOf(ds, ColWeightInGrams, nbins)
}
