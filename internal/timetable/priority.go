package timetable

import "sort"

// priorityOrder produces the ordered list of (class, subject) scheduling
// tasks, most-constrained first (§4.2): ascending teacher-pool size,
// descending session count, descending total sessions for the class, tied
// off by (class, subject) name for determinism.
func priorityOrder(req Request) []classSubject {
	classTotals := make(map[string]uint32, len(req.Classes))
	for class, subjectData := range req.Classes {
		var total uint32
		for _, demand := range subjectData {
			total += demand.Sessions
		}
		classTotals[class] = total
	}

	var tasks []classSubject
	for class, subjectData := range req.Classes {
		for subject, demand := range subjectData {
			if demand.Sessions == 0 {
				continue
			}
			tasks = append(tasks, classSubject{class: class, subject: subject})
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		ad, bd := req.Classes[a.class][a.subject], req.Classes[b.class][b.subject]

		if ad.Teachers != bd.Teachers {
			return ad.Teachers < bd.Teachers
		}
		if ad.Sessions != bd.Sessions {
			return ad.Sessions > bd.Sessions
		}
		if classTotals[a.class] != classTotals[b.class] {
			return classTotals[a.class] > classTotals[b.class]
		}
		if a.class != b.class {
			return a.class < b.class
		}
		return a.subject < b.subject
	})

	return tasks
}
