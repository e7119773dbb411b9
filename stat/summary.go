package stat

import (
	"math"
	"sort"
)

// Level is a distinct value of a categorical column and the number of
// times it occurs.
type Level struct {
	Label string
	Count int
}

// Count counts the occurrences of every distinct label. The result is
// ordered by descending count; ties keep the order in which the labels
// first appear in labels.
func Count(labels []string) []Level {
	index := make(map[string]int)
	var levels []Level
	for _, l := range labels {
		i, ok := index[l]
		if !ok {
			i = len(levels)
			index[l] = i
			levels = append(levels, Level{Label: l})
		}
		levels[i].Count++
	}
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Count > levels[j].Count
	})
	return levels
}

// Summary holds descriptive statistics of a sample.
type Summary struct {
	N              int
	Min, Mean, Max float64
}

// Summarize computes min, mean and max of data. The mean is clamped into
// [Min, Max] so that Min <= Mean <= Max holds even under rounding.
// An empty sample gives N == 0 and NaN for all values.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Mean: nan, Max: nan}
	}
	s := Summary{N: len(data), Min: data[0], Max: data[0]}
	sum := 0.0
	for _, x := range data {
		sum += x
		if x < s.Min {
			s.Min = x
		} else if x > s.Max {
			s.Max = x
		}
	}
	s.Mean = min(max(sum/float64(len(data)), s.Min), s.Max)
	return s
}

// Group partitions values by the label at the same index. Groups are
// returned in lexical order of the label. keys and values must have the
// same length.
func Group(keys []string, values []float64) (labels []string, groups [][]float64) {
	byKey := make(map[string][]float64)
	for i, k := range keys {
		if _, ok := byKey[k]; !ok {
			labels = append(labels, k)
		}
		byKey[k] = append(byKey[k], values[i])
	}
	sort.Strings(labels)
	groups = make([][]float64, len(labels))
	for i, l := range labels {
		groups[i] = byKey[l]
	}
	return labels, groups
}
