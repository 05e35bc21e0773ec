// Package render prints timetable solve results to a terminal: one table
// per class, a color-coded subject legend, and a progress spinner for the
// solve itself.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/russross/classtimetable/internal/timetable"
)

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Spinner wraps a briandowns/spinner instance scoped to the solve phase of
// a CLI command, writing to stderr so it never pollutes piped stdout.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner builds a spinner with the given status suffix. It does nothing
// until Start is called.
func NewSpinner(suffix string) *Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	return &Spinner{s: s}
}

func (sp *Spinner) Start() {
	if sp == nil || !isTerminal(os.Stderr) {
		return
	}
	sp.s.Start()
}

func (sp *Spinner) Stop() {
	if sp == nil || !isTerminal(os.Stderr) {
		return
	}
	sp.s.Stop()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Grid prints one class's weekly timetable as a table, periods down the
// rows and days across the columns, to w.
func Grid(w io.Writer, className string, cr timetable.ClassResult, palette *Palette) {
	fmt.Fprintf(w, "%s\n", color.New(color.FgCyan, color.Bold).Sprintf("%s", className))

	periods := len(cr.Grid[0])
	headers := make([]string, 0, len(cr.Grid)+1)
	headers = append(headers, "")
	for d := range cr.Grid {
		headers = append(headers, dayLabel(d))
	}

	table := tablewriter.NewWriter(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Formatting.AutoWrap = tw.WrapTruncate
	})
	table.Header(headers...)

	for p := 0; p < periods; p++ {
		row := make([]string, 0, len(cr.Grid)+1)
		row = append(row, fmt.Sprintf("P%d", p+1))
		for d := range cr.Grid {
			subject := cr.Grid[d][p]
			if subject == "" {
				row = append(row, "·")
				continue
			}
			row = append(row, palette.Colorize(subject))
		}
		table.Append(row...)
	}
	table.Render()
}

func dayLabel(index int) string {
	if index < len(dayNames) {
		return dayNames[index]
	}
	return fmt.Sprintf("Day%d", index+1)
}

// Palette assigns a stable color to each subject name so the same subject
// reads the same way across every class's table.
type Palette struct {
	colors  []*color.Color
	assign  map[string]int
	counter int
}

// NewPalette builds a palette covering the subjects present across result,
// sorted so color assignment is deterministic across runs.
func NewPalette(result timetable.Result) *Palette {
	subjects := map[string]bool{}
	for _, cr := range result.Classes {
		for subject := range cr.Assignments {
			subjects[subject] = true
		}
	}
	names := make([]string, 0, len(subjects))
	for s := range subjects {
		names = append(names, s)
	}
	sort.Strings(names)

	p := &Palette{
		colors: []*color.Color{
			color.New(color.FgGreen),
			color.New(color.FgYellow),
			color.New(color.FgBlue),
			color.New(color.FgMagenta),
			color.New(color.FgCyan),
			color.New(color.FgRed),
		},
		assign: make(map[string]int, len(names)),
	}
	for _, name := range names {
		p.assign[name] = p.counter % len(p.colors)
		p.counter++
	}
	return p
}

// Colorize renders subject in its assigned color, falling back to plain
// text for anything NewPalette never saw.
func (p *Palette) Colorize(subject string) string {
	idx, ok := p.assign[subject]
	if !ok {
		return subject
	}
	return p.colors[idx].Sprint(subject)
}

// Warnings prints any unplaced-session warnings in yellow, or a green
// all-clear line if there are none.
func Warnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		color.New(color.FgGreen).Fprintln(w, "every session placed")
		return
	}
	yellow := color.New(color.FgYellow)
	for _, warning := range warnings {
		yellow.Fprintln(w, warning)
	}
}
