package shipdash

import (
	"math"

	"gonum.org/v1/plot"
)

// Scale is a continuous position scale. It is trained on the data drawn
// along one axis and then sets the axis range with some head room.
type Scale struct {
	DomainMin float64
	DomainMax float64

	// Expand is the fraction of the domain added on both sides.
	Expand float64

	// StickyMin keeps the lower end of the range at DomainMin, e.g. for
	// bars growing from zero.
	StickyMin bool
}

// NewScale returns an untrained scale expanding by 5%.
func NewScale() *Scale {
	return &Scale{
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
		Expand:    0.05,
	}
}

// Train updates the domain of s to include xs. NaN and infinite values
// are ignored.
func (s *Scale) Train(xs ...float64) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		s.DomainMin = math.Min(s.DomainMin, x)
		s.DomainMax = math.Max(s.DomainMax, x)
	}
}

// Trained reports whether s has seen at least one value.
func (s *Scale) Trained() bool { return s.DomainMin <= s.DomainMax }

// Range returns the expanded domain. A single-valued domain is widened
// by one unit in each direction that is not sticky.
func (s *Scale) Range() (min, max float64) {
	min, max = s.DomainMin, s.DomainMax
	expand := (max - min) * s.Expand
	if expand == 0 {
		expand = 1
	}
	if !s.StickyMin {
		min -= expand
	}
	return min, max + expand
}

// Apply sets the range of axis. An untrained scale leaves axis alone.
func (s *Scale) Apply(axis *plot.Axis) {
	if !s.Trained() {
		return
	}
	axis.Min, axis.Max = s.Range()
}
