package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// P8 — the distribution optimizer never decreases D for any subject it
// touches.
func TestOptimizeDistributionNeverDecreasesScore(t *testing.T) {
	dim := DefaultDimensions
	cs := newClassState(dim, []string{"M"})

	// Deliberately clumsy placement: all three M sessions crammed into day 0.
	slots := []Slot{{0, 0}, {0, 1}, {0, 2}}
	for _, s := range slots {
		cs.grid.place(s, "M")
		cs.assignments["M"][s] = labelFn("A", "M", s.Day, s.Period, 0)
	}

	occupancy := newOccupancyTable([]string{"M"})
	for _, s := range slots {
		occupancy.occupy("M", s, 0, "A")
	}

	st := &solverState{
		dim:             dim,
		classes:         map[string]*classState{"A": cs},
		occupancy:       occupancy,
		assignedTeacher: map[string]map[string]int{"A": {"M": 0}},
		teacherName:     labelFn,
		rng:             rand.New(rand.NewSource(3)),
		opts:            SolveOptions{}.resolve(),
	}

	before := distributionScore(dim, cs.grid, "M")
	st.optimizeDistribution()
	after := distributionScore(dim, cs.grid, "M")

	assert.GreaterOrEqual(t, after, before)
	assert.Equal(t, 3, cs.placedCount("M"), "optimizer must not lose or duplicate sessions")

	// Grid/assignment consistency must still hold after relocation.
	for d, row := range cs.grid {
		for p, subject := range row {
			if subject == "" {
				continue
			}
			_, ok := cs.assignments[subject][Slot{d, p}]
			require.True(t, ok)
		}
	}
}
