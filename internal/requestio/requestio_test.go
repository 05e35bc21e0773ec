package requestio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russross/classtimetable/internal/timetable"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.yaml")
	contents := `
dimensions:
  days: 5
  periods: 6
classes:
  9A:
    Math:
      sessions: 5
      teachers: 1
    Science:
      sessions: 3
      teachers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	req, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, req.Dimensions.Days)
	assert.Equal(t, 6, req.Dimensions.Periods)
	assert.Equal(t, uint32(5), req.Classes["9A"]["Math"].Sessions)
	assert.Equal(t, uint32(1), req.Classes["9A"]["Math"].Teachers)
	assert.Equal(t, uint32(2), req.Classes["9A"]["Science"].Teachers)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	contents := `{
		"classes": {
			"9B": {"English": {"sessions": 4, "teachers": 1}}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	req, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, req.Dimensions.Days, "omitted dimensions should resolve downstream, not here")
	assert.Equal(t, uint32(4), req.Classes["9B"]["English"].Sessions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func sampleWriteResult() timetable.Result {
	return timetable.Result{
		Classes: map[string]timetable.ClassResult{
			"9A": {
				Grid: [][]string{{"Math", ""}},
				Assignments: map[string]map[timetable.Slot]string{
					"Math": {{Day: 0, Period: 0}: "Math-T1"},
				},
			},
		},
		Warnings: []string{"unplaced: class=9A subject=Science placed=2/3"},
	}
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, sampleWriteResult(), "json"))

	assert.Contains(t, buf.String(), `"(0,0)": "Math-T1"`)
	assert.Contains(t, buf.String(), "unplaced: class=9A subject=Science placed=2/3")
}

func TestWriteResultYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, sampleWriteResult(), "yaml"))

	assert.Contains(t, buf.String(), "(0,0): Math-T1")
}

func TestWriteResultUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteResult(&buf, sampleWriteResult(), "xml"))
}
