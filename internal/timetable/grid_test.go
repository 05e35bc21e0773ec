package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributionScorePerfectSpread(t *testing.T) {
	dim := DefaultDimensions
	g := newGrid(dim)
	for d := 0; d < dim.Days; d++ {
		g[d][0] = "M"
	}
	assert.Equal(t, float64(dim.Days), distributionScore(dim, g, "M"))
}

func TestDistributionScorePenalizesCrowding(t *testing.T) {
	dim := DefaultDimensions
	g := newGrid(dim)
	g[0][0] = "M"
	g[0][1] = "M"
	g[0][2] = "M"

	// One day with 3 sessions: 1 (day present) - 0.2*2 = 0.6
	assert.InDelta(t, 0.6, distributionScore(dim, g, "M"), 1e-9)
}

func TestDistributionScoreEmpty(t *testing.T) {
	dim := DefaultDimensions
	g := newGrid(dim)
	assert.Equal(t, 0.0, distributionScore(dim, g, "M"))
}
