package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateTeachersBalancesLoad(t *testing.T) {
	req := Request{Classes: map[string]map[string]SubjectDemand{
		"A": {"M": {Sessions: 3, Teachers: 2}},
		"B": {"M": {Sessions: 3, Teachers: 2}},
		"C": {"M": {Sessions: 3, Teachers: 2}},
	}}

	assigned, err := allocateTeachers(req)
	require.NoError(t, err)

	usage := map[int]int{}
	for _, subjectMap := range assigned {
		usage[subjectMap["M"]]++
	}

	// Three classes sharing two teacher indices: load must differ by at
	// most one between the two indices.
	counts := make([]int, 0, len(usage))
	for _, n := range usage {
		counts = append(counts, n)
	}
	require.Len(t, counts, 2)
	diff := counts[0] - counts[1]
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, 1)
}

func TestAllocateTeachersIgnoresZeroSessionSubjects(t *testing.T) {
	req := Request{Classes: map[string]map[string]SubjectDemand{
		"A": {"M": {Sessions: 0, Teachers: 1}},
	}}

	assigned, err := allocateTeachers(req)
	require.NoError(t, err)
	_, ok := assigned["A"]["M"]
	assert.False(t, ok, "a subject with zero sessions should never receive a teacher assignment")
}

func TestPriorityOrderMostConstrainedFirst(t *testing.T) {
	req := Request{Classes: map[string]map[string]SubjectDemand{
		"A": {
			"M": {Sessions: 5, Teachers: 1}, // fewest teachers: highest priority
			"E": {Sessions: 10, Teachers: 3},
		},
	}}

	order := priorityOrder(req)
	require.Len(t, order, 2)
	assert.Equal(t, "M", order[0].subject)
	assert.Equal(t, "E", order[1].subject)
}

func TestPriorityOrderStableTieBreak(t *testing.T) {
	req := Request{Classes: map[string]map[string]SubjectDemand{
		"A": {"M": {Sessions: 5, Teachers: 1}},
		"B": {"M": {Sessions: 5, Teachers: 1}},
	}}

	order := priorityOrder(req)
	require.Len(t, order, 2)
	assert.Equal(t, "A", order[0].class)
	assert.Equal(t, "B", order[1].class)
}
