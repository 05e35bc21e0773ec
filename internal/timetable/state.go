package timetable

import "math/rand"

// classState is the per-class half of the data model: a grid plus, for each
// subject with at least one session requested, the slot-to-teacher-label
// assignments placed so far.
type classState struct {
	grid        grid
	assignments map[string]map[Slot]string
}

func newClassState(dim Dimensions, subjects []string) *classState {
	cs := &classState{
		grid:        newGrid(dim),
		assignments: make(map[string]map[Slot]string, len(subjects)),
	}
	for _, s := range subjects {
		cs.assignments[s] = make(map[Slot]string)
	}
	return cs
}

// solverState is the single mutable value the whole algorithm threads
// through explicitly (§9 design note: no hidden process-wide singletons).
type solverState struct {
	dim             Dimensions
	classes         map[string]*classState
	occupancy       *occupancyTable
	assignedTeacher map[string]map[string]int
	teacherName     TeacherNameFunc
	rng             *rand.Rand
	opts            SolveOptions
}

// subjectsForClass returns the subjects with sessions > 0 for a class, in no
// particular order, used to size a fresh classState.
func subjectsForClass(subjectData map[string]SubjectDemand) []string {
	var subjects []string
	for subject, demand := range subjectData {
		if demand.Sessions > 0 {
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

// placedCount counts how many cells in a class's grid hold subject.
func (cs *classState) placedCount(subject string) int {
	return len(cs.assignments[subject])
}
