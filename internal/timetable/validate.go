package timetable

import "fmt"

// validateRequest performs every input check up front so the backtracking
// core can assume well-formed input on its hot path (§9 design note). All
// checks happen before any mutation, matching the InvalidInput contract of
// §7: reject synchronously, touch nothing.
func validateRequest(req Request, dim Dimensions) error {
	capacity := dim.slots()

	for class, subjectData := range req.Classes {
		if class == "" {
			return NewError(KindInvalidInput, "class name must not be empty")
		}
		for subject, demand := range subjectData {
			if subject == "" {
				return NewError(KindInvalidInput, fmt.Sprintf("class %s: subject name must not be empty", class))
			}
			if demand.Sessions == 0 {
				continue
			}
			if demand.Teachers == 0 {
				return NewError(KindInvalidInput, fmt.Sprintf(
					"class %s subject %s: teachers must be >= 1 when sessions > 0", class, subject))
			}
			if int(demand.Sessions) > capacity {
				return NewError(KindInvalidInput, fmt.Sprintf(
					"class %s subject %s: sessions %d exceeds grid capacity %d", class, subject, demand.Sessions, capacity))
			}
		}
	}

	return nil
}
