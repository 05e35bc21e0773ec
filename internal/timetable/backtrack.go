package timetable

// backtrack places exactly sessionsLeft sessions of subject into class's
// grid by chronological backtracking over scored candidate slots (§4.4). It
// returns true iff all sessions were placed; on failure every mutation it
// made is undone before returning, so the grid and global occupancy table
// are exactly as they were at entry (property P9).
func (st *solverState) backtrack(class, subject string, sessionsLeft int, retry bool) bool {
	if sessionsLeft == 0 {
		return true
	}

	cs := st.classes[class]
	teacherID := st.assignedTeacher[class][subject]

	ordered := rankSlots(st.dim, cs.grid, subject, st.rng)
	if retry {
		ordered = appendMissingSlots(ordered, cs.grid.emptySlots(st.dim))
	}

	maxAttempts := st.opts.MaxAttempts
	if retry {
		maxAttempts = st.opts.RetryMaxAttempts
	}

	attempts := 0
	for _, slot := range ordered {
		if attempts >= maxAttempts {
			break
		}
		attempts++

		if !cs.grid.empty(slot) {
			continue
		}
		if !st.occupancy.available(subject, slot, teacherID) {
			continue
		}

		if !retry {
			cs.grid.place(slot, subject)
			score := distributionScore(st.dim, cs.grid, subject)
			cs.grid.clear(slot)

			poorDistribution := score < 1.0
			stillDesperate := sessionsLeft < st.opts.DistributionGateThreshold
			attemptsBudgetRemaining := attempts < maxAttempts/2
			if poorDistribution && stillDesperate && attemptsBudgetRemaining {
				continue
			}
		}

		cs.grid.place(slot, subject)
		label := st.teacherName(class, subject, slot.Day, slot.Period, teacherID)
		cs.assignments[subject][slot] = label
		st.occupancy.occupy(subject, slot, teacherID, class)

		if st.backtrack(class, subject, sessionsLeft-1, retry) {
			return true
		}

		cs.grid.clear(slot)
		delete(cs.assignments[subject], slot)
		st.occupancy.release(subject, slot, teacherID)
	}

	return false
}

// appendMissingSlots extends ordered with any slot from all that isn't
// already present, preserving the scored slots' relative order.
func appendMissingSlots(ordered, all []Slot) []Slot {
	seen := make(map[Slot]bool, len(ordered))
	for _, s := range ordered {
		seen[s] = true
	}
	out := ordered
	for _, s := range all {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}
