// Package requestio decodes timetable requests from YAML or JSON files.
package requestio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/russross/classtimetable/internal/timetable"
)

// document is the on-disk shape of a request file, independent of whether
// it arrived as YAML or JSON.
type document struct {
	Dimensions *dimensions                       `yaml:"dimensions" json:"dimensions"`
	Classes    map[string]map[string]subjectSpec `yaml:"classes" json:"classes"`
}

type dimensions struct {
	Days    int `yaml:"days" json:"days"`
	Periods int `yaml:"periods" json:"periods"`
}

type subjectSpec struct {
	Sessions uint32 `yaml:"sessions" json:"sessions"`
	Teachers uint32 `yaml:"teachers" json:"teachers"`
}

// Load reads a request from path. YAML is assumed unless the file has a
// .json extension.
func Load(path string) (timetable.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return timetable.Request{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc document
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return timetable.Request{}, fmt.Errorf("parsing %s as json: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return timetable.Request{}, fmt.Errorf("parsing %s as yaml: %w", path, err)
		}
	}

	return toRequest(doc), nil
}

// resultDocument is the on-disk shape of a solved timetable, independent of
// whether it is written as JSON or YAML.
type resultDocument struct {
	Classes  map[string]classDocument `yaml:"classes" json:"classes"`
	Warnings []string                 `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

type classDocument struct {
	Grid        [][]string                  `yaml:"grid" json:"grid"`
	Assignments map[string]map[string]string `yaml:"assignments" json:"assignments"`
}

// WriteResult encodes result as format ("json" or "yaml") and writes it to
// w. Slot keys are rendered through Slot.String() since neither encoding
// supports struct map keys directly.
func WriteResult(w io.Writer, result timetable.Result, format string) error {
	doc := resultDocument{
		Classes:  make(map[string]classDocument, len(result.Classes)),
		Warnings: result.Warnings,
	}
	for class, cr := range result.Classes {
		assignments := make(map[string]map[string]string, len(cr.Assignments))
		for subject, bySlot := range cr.Assignments {
			slots := make(map[string]string, len(bySlot))
			for slot, label := range bySlot {
				slots[slot.String()] = label
			}
			assignments[subject] = slots
		}
		doc.Classes[class] = classDocument{Grid: cr.Grid, Assignments: assignments}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func toRequest(doc document) timetable.Request {
	req := timetable.Request{
		Classes: make(map[string]map[string]timetable.SubjectDemand, len(doc.Classes)),
	}
	if doc.Dimensions != nil {
		req.Dimensions = timetable.Dimensions{Days: doc.Dimensions.Days, Periods: doc.Dimensions.Periods}
	}
	for class, subjects := range doc.Classes {
		demand := make(map[string]timetable.SubjectDemand, len(subjects))
		for subject, spec := range subjects {
			demand[subject] = timetable.SubjectDemand{Sessions: spec.Sessions, Teachers: spec.Teachers}
		}
		req.Classes[class] = demand
	}
	return req
}
