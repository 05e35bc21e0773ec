package timetable

import "sort"

// optimizeDistribution is the bounded hill climber of §4.5: for up to
// opts.OptimizerSweeps sweeps, it tries relocating each placed session of
// each (class, subject) with at least two sessions to the empty slot that
// most improves that subject's distribution score, stopping early once a
// full sweep makes no improvement. It never decreases D for any subject it
// touches (property P8). Classes and subjects are visited in sorted order
// so that relocations which contend for the same shared-teacher slot are
// resolved the same way on every run with the same seed (property P7) —
// ranging over the underlying maps directly would let Go's randomized
// iteration order decide the outcome.
func (st *solverState) optimizeDistribution() {
	classNames := make([]string, 0, len(st.classes))
	for class := range st.classes {
		classNames = append(classNames, class)
	}
	sort.Strings(classNames)

	for sweep := 0; sweep < st.opts.OptimizerSweeps; sweep++ {
		improved := false

		for _, class := range classNames {
			cs := st.classes[class]

			subjects := make([]string, 0, len(cs.assignments))
			for subject := range cs.assignments {
				subjects = append(subjects, subject)
			}
			sort.Strings(subjects)

			for _, subject := range subjects {
				if cs.placedCount(subject) < 2 {
					continue
				}
				if st.optimizeSubject(class, subject) {
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}
}

// optimizeSubject tries to relocate each currently placed session of
// (class, subject) to a better slot, measured against the distribution
// score captured once at the start of this call (matching the reference
// implementation, which recomputes the baseline per subject per sweep
// rather than after every individual relocation).
func (st *solverState) optimizeSubject(class, subject string) bool {
	cs := st.classes[class]
	teacherID := st.assignedTeacher[class][subject]

	oldSlots := make([]Slot, 0, cs.placedCount(subject))
	for slot := range cs.assignments[subject] {
		oldSlots = append(oldSlots, slot)
	}
	sort.Slice(oldSlots, func(i, j int) bool {
		if oldSlots[i].Day != oldSlots[j].Day {
			return oldSlots[i].Day < oldSlots[j].Day
		}
		return oldSlots[i].Period < oldSlots[j].Period
	})

	baseline := distributionScore(st.dim, cs.grid, subject)
	improved := false

	for _, old := range oldSlots {
		label := cs.assignments[subject][old]

		cs.grid.clear(old)

		bestSlot, bestScore := Slot{}, baseline
		found := false
		for _, candidate := range cs.grid.emptySlots(st.dim) {
			if candidate == old {
				continue
			}
			if !st.occupancy.available(subject, candidate, teacherID) {
				continue
			}

			cs.grid.place(candidate, subject)
			score := distributionScore(st.dim, cs.grid, subject)
			cs.grid.clear(candidate)

			if score > bestScore {
				bestScore = score
				bestSlot = candidate
				found = true
			}
		}

		if found && bestScore > baseline {
			cs.grid.place(bestSlot, subject)
			delete(cs.assignments[subject], old)
			st.occupancy.release(subject, old, teacherID)
			cs.assignments[subject][bestSlot] = label
			st.occupancy.occupy(subject, bestSlot, teacherID, class)
			improved = true
		} else {
			cs.grid.place(old, subject)
		}
	}

	return improved
}
