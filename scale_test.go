package shipdash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
)

func TestScale(t *testing.T) {
	s := NewScale()
	assert.False(t, s.Trained())

	s.Train(10, math.NaN(), 0, math.Inf(1))
	assert.True(t, s.Trained())
	min, max := s.Range()
	assert.Equal(t, -0.5, min)
	assert.Equal(t, 10.5, max)

	s.StickyMin = true
	min, max = s.Range()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 10.5, max)
}

func TestScaleSingleValue(t *testing.T) {
	s := NewScale()
	s.Train(3)
	min, max := s.Range()
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 4.0, max)
}

func TestScaleApply(t *testing.T) {
	p := plot.New()
	xmin, xmax := p.X.Min, p.X.Max
	NewScale().Apply(&p.X)
	assert.Equal(t, xmin, p.X.Min)
	assert.Equal(t, xmax, p.X.Max)

	s := NewScale()
	s.Train(1, 5)
	s.Apply(&p.Y)
	assert.InDelta(t, 0.8, p.Y.Min, 1e-12)
	assert.InDelta(t, 5.2, p.Y.Max, 1e-12)
}
