package timetable

import "sort"

// evictForFailed makes room for the pairs in failed by removing single
// sessions from lower-priority pairs, walking the priority order in reverse
// (least-important first) and skipping any pair that is itself failed. At
// most min(EvictionMultiplier*len(failed), MaxEvictions) sessions are
// evicted in total. It returns the pairs a session was evicted from, so the
// caller can give them a chance to reclaim a slot afterwards rather than
// leaving an eviction victim silently under-placed.
func (st *solverState) evictForFailed(order []classSubject, failed []classSubject) []classSubject {
	if len(failed) == 0 {
		return nil
	}

	failedSet := make(map[classSubject]bool, len(failed))
	for _, f := range failed {
		failedSet[f] = true
	}

	budget := st.opts.EvictionMultiplier * len(failed)
	if budget > st.opts.MaxEvictions {
		budget = st.opts.MaxEvictions
	}

	var evicted []classSubject
	for i := len(order) - 1; i >= 0 && budget > 0; i-- {
		pair := order[i]
		if failedSet[pair] {
			continue
		}

		cs := st.classes[pair.class]
		if cs.placedCount(pair.subject) <= 1 {
			continue
		}

		if st.evictOne(pair.class, pair.subject) {
			evicted = append(evicted, pair)
			budget--
		}
	}
	return evicted
}

// evictOne removes the single placed session of (class, subject) whose
// removal leaves the best residual distribution score, freeing its slot and
// teacher-occupancy entries. Returns false if there was nothing to evict.
// Candidate slots are visited in sorted (day, period) order rather than the
// map's iteration order, so a tie between equally-good slots resolves the
// same way on every run with the same seed (property P7).
func (st *solverState) evictOne(class, subject string) bool {
	cs := st.classes[class]
	teacherID := st.assignedTeacher[class][subject]

	slots := make([]Slot, 0, len(cs.assignments[subject]))
	for slot := range cs.assignments[subject] {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].Period < slots[j].Period
	})

	var bestSlot Slot
	bestScore := -1.0
	found := false

	for _, slot := range slots {
		cs.grid.clear(slot)
		score := distributionScore(st.dim, cs.grid, subject)
		cs.grid.place(slot, subject)

		if !found || score > bestScore {
			bestScore = score
			bestSlot = slot
			found = true
		}
	}

	if !found {
		return false
	}

	cs.grid.clear(bestSlot)
	delete(cs.assignments[subject], bestSlot)
	st.occupancy.release(subject, bestSlot, teacherID)
	return true
}
