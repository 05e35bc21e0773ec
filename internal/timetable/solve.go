package timetable

import (
	"fmt"
	"math/rand"
)

// Solve builds a weekly timetable for every class in req, respecting
// teacher-sharing constraints across classes (§6). It never returns an
// error for a placement failure: per-pair shortfalls are reported through
// Result.Warnings in the stable format
// "unplaced: class=<C> subject=<S> placed=<k>/<n>".
func Solve(req Request, teacherName TeacherNameFunc, seed int64, opts SolveOptions) (Result, error) {
	dim := req.Dimensions.resolve()
	opts = opts.resolve()

	if err := validateRequest(req, dim); err != nil {
		return Result{}, err
	}

	assignedTeacher, err := allocateTeachers(req)
	if err != nil {
		return Result{}, err
	}

	classes := make(map[string]*classState, len(req.Classes))
	for class, subjectData := range req.Classes {
		classes[class] = newClassState(dim, subjectsForClass(subjectData))
	}

	st := &solverState{
		dim:             dim,
		classes:         classes,
		occupancy:       newOccupancyTable(subjectsOf(req)),
		assignedTeacher: assignedTeacher,
		teacherName:     teacherName,
		rng:             rand.New(rand.NewSource(seed)),
		opts:            opts,
	}

	order := priorityOrder(req)

	var failed []classSubject
	for _, pair := range order {
		total := req.Classes[pair.class][pair.subject].Sessions
		if !st.backtrack(pair.class, pair.subject, int(total), false) {
			failed = append(failed, pair)
		}
	}

	st.optimizeDistribution()

	if len(failed) > 0 {
		evicted := st.evictForFailed(order, failed)

		retry := make(map[classSubject]bool, len(failed)+len(evicted))
		for _, pair := range failed {
			retry[pair] = true
		}
		for _, pair := range evicted {
			retry[pair] = true
		}

		for _, pair := range order {
			if !retry[pair] {
				continue
			}
			total := int(req.Classes[pair.class][pair.subject].Sessions)
			placed := st.classes[pair.class].placedCount(pair.subject)
			remaining := total - placed
			if remaining > 0 {
				st.backtrack(pair.class, pair.subject, remaining, true)
			}
		}
	}

	return st.buildResult(order, req), nil
}

// buildResult snapshots the final state of every class into an immutable
// Result and records a warning for any (class, subject) that still falls
// short of its requested session count.
func (st *solverState) buildResult(order []classSubject, req Request) Result {
	result := Result{Classes: make(map[string]ClassResult, len(st.classes))}

	for class, cs := range st.classes {
		result.Classes[class] = ClassResult{
			Grid:        [][]string(cs.grid.clone()),
			Assignments: cloneAssignments(cs.assignments),
		}
	}

	for _, pair := range order {
		total := int(req.Classes[pair.class][pair.subject].Sessions)
		placed := st.classes[pair.class].placedCount(pair.subject)
		if placed < total {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"unplaced: class=%s subject=%s placed=%d/%d", pair.class, pair.subject, placed, total))
		}
	}

	return result
}

func cloneAssignments(in map[string]map[Slot]string) map[string]map[Slot]string {
	out := make(map[string]map[Slot]string, len(in))
	for subject, slots := range in {
		cp := make(map[Slot]string, len(slots))
		for slot, label := range slots {
			cp[slot] = label
		}
		out[subject] = cp
	}
	return out
}
