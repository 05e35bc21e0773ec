package timetable

import (
	"math/rand"
	"sort"
)

type scoredSlot struct {
	slot  Slot
	score float64
}

// rankSlots produces every empty slot for subject in g, sorted ascending by
// priority score (lower is better), per §4.3: day spread, adjacency
// avoidance, period spread, day-load balance, centrality bias, and jitter.
func rankSlots(dim Dimensions, g grid, subject string, rng *rand.Rand) []Slot {
	dayCounts := g.dayCounts(dim, subject)
	periodCounts := g.periodCounts(dim, subject)
	dayLoad := g.dayLoad(dim)
	middle := dim.Periods / 2

	var scored []scoredSlot
	for d := 0; d < dim.Days; d++ {
		for p := 0; p < dim.Periods; p++ {
			if g[d][p] != "" {
				continue
			}

			score := 0.0

			if dayCounts[d] == 0 {
				score -= 15
			} else {
				score += 6 * float64(dayCounts[d])
			}

			leftAdjacent := p > 0 && g[d][p-1] == subject
			rightAdjacent := p < dim.Periods-1 && g[d][p+1] == subject
			if leftAdjacent {
				score += 4
			}
			if rightAdjacent {
				score += 4
			}
			if leftAdjacent && rightAdjacent {
				score += 5
			}

			score += 3 * float64(periodCounts[p])
			score += 0.5 * float64(dayLoad[d])

			distanceFromMiddle := p - middle
			if distanceFromMiddle < 0 {
				distanceFromMiddle = -distanceFromMiddle
			}
			score += 0.2 * float64(distanceFromMiddle)

			score += rng.Float64()

			scored = append(scored, scoredSlot{slot: Slot{Day: d, Period: p}, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})

	out := make([]Slot, len(scored))
	for i, s := range scored {
		out[i] = s.slot
	}
	return out
}
