package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/plancharts/internal/bench"
	"github.com/signalnine/plancharts/internal/report"
)

func defaultTable(t *testing.T) *bench.Table {
	t.Helper()
	tbl, err := bench.Default()
	require.NoError(t, err)
	return tbl
}

func TestGenerateTable(t *testing.T) {
	tbl := defaultTable(t)
	var buf bytes.Buffer
	require.NoError(t, report.Generate(tbl, tbl.Domains(), "table", &buf))

	out := buf.String()
	for _, want := range []string{"DOMAIN", "mcts_opt_time", "pblocks1", "plogistics3", "44.23"} {
		assert.Contains(t, out, want)
	}
}

func TestGenerateMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Generate(defaultTable(t), []string{"depot"}, "markdown", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "| DOMAIN |"))
	assert.Contains(t, lines[2], "| depot | pdepot1 | prob 1 |")
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Generate(defaultTable(t), []string{"gripper"}, "json", &buf))

	var rows []report.ProblemRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "pgripper2", rows[1].Problem)
	assert.Equal(t, "prob 2", rows[1].Label)
	assert.Zero(t, rows[1].Values["astar_steps"])
	assert.Equal(t, 49.0, rows[1].Values["mcts_prw_steps"])
}

func TestGenerateDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Generate(defaultTable(t), []string{"blocks"}, "dump", &buf))
	assert.Contains(t, buf.String(), "MctsOptSteps")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestGenerateDumpToFileIsPlain(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "dump.txt"))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, report.Generate(defaultTable(t), []string{"gripper"}, "dump", f))
	require.NoError(t, f.Sync())

	out, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(out), "pgripper2")
	assert.NotContains(t, string(out), "\x1b[")
}

func TestGenerateUnknownDomain(t *testing.T) {
	var buf bytes.Buffer
	err := report.Generate(defaultTable(t), []string{"rovers"}, "table", &buf)
	require.ErrorIs(t, err, bench.ErrUnknownDomain)
	assert.Empty(t, buf.String())
}

func TestGenerateEmptyJSON(t *testing.T) {
	tbl, err := bench.Parse([]byte("empty: {}\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.Generate(tbl, []string{"empty"}, "json", &buf))
	assert.JSONEq(t, "[]", buf.String())
}
