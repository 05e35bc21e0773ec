package timetable

import "sort"

// allocateTeachers assigns one teacher index per (class, subject) before any
// scheduling happens, balancing load across the pool available for that
// subject (§4.1). Iteration is in a stable, sorted order so that results are
// deterministic given a fixed request, independent of Go's randomized map
// iteration order.
func allocateTeachers(req Request) (map[string]map[string]int, error) {
	subjects := subjectsOf(req)
	assigned := make(map[string]map[string]int, len(req.Classes))
	for class := range req.Classes {
		assigned[class] = make(map[string]int)
	}

	for _, subject := range subjects {
		classes := classesRequesting(req, subject)
		if len(classes) == 0 {
			continue
		}

		maxTeachers := 0
		for _, class := range classes {
			if t := int(req.Classes[class][subject].Teachers); t > maxTeachers {
				maxTeachers = t
			}
		}

		usedBy := make([]int, maxTeachers)
		for _, class := range classes {
			demand := req.Classes[class][subject]
			teacherPool := int(demand.Teachers)

			best := 0
			bestLoad := usedBy[0]
			for t := 1; t < teacherPool; t++ {
				if usedBy[t] < bestLoad {
					bestLoad = usedBy[t]
					best = t
				}
			}

			if best >= teacherPool {
				// Cannot arise from the loop above (best is always <
				// teacherPool when teacherPool > 0); a zero pool is
				// rejected by validateRequest before allocation ever runs.
				return nil, NewError(KindInvalidInput,
					"teacher index out of range for class "+class+" subject "+subject)
			}

			assigned[class][subject] = best
			usedBy[best]++
		}
	}

	return assigned, nil
}

func subjectsOf(req Request) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, subjectData := range req.Classes {
		for subject := range subjectData {
			if !seen[subject] {
				seen[subject] = true
				subjects = append(subjects, subject)
			}
		}
	}
	sort.Strings(subjects)
	return subjects
}

func classesRequesting(req Request, subject string) []string {
	var classes []string
	for class, subjectData := range req.Classes {
		if demand, ok := subjectData[subject]; ok && demand.Sessions > 0 {
			classes = append(classes, class)
		}
	}
	sort.Strings(classes)
	return classes
}
