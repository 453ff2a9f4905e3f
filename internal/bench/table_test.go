package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/plancharts/internal/bench"
)

func TestDefaultDomains(t *testing.T) {
	tbl := defaultTable(t)
	assert.Equal(t, []string{"blocks", "depot", "gripper", "logistics"}, tbl.Domains())
	for _, d := range tbl.Domains() {
		problems, err := tbl.Problems(d)
		require.NoError(t, err)
		assert.Len(t, problems, 3, d)
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, err := bench.Default()
	require.NoError(t, err)
	b, err := bench.Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDomainsExtraSortedAfterKnown(t *testing.T) {
	tbl, err := bench.Parse([]byte(`
zeno: {}
depot: {}
airport: {}
blocks: {}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"blocks", "depot", "airport", "zeno"}, tbl.Domains())
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := bench.Parse([]byte("blocks:\n  p1: {mcts_steps: 3}\n"))
	require.Error(t, err)
}

func TestParseRejectsNegative(t *testing.T) {
	_, err := bench.Parse([]byte("blocks:\n  p1: {astar_time: -1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "astar_time")
}

func TestParseEmpty(t *testing.T) {
	tbl, err := bench.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, tbl.Domains())
}

func TestRecordValue(t *testing.T) {
	steps, secs := 12.0, 0.5
	r := bench.Record{MctsPrwSteps: &steps, AstarTime: &secs}

	assert.Equal(t, 12.0, r.Value(bench.MctsPrw, bench.Steps))
	assert.Equal(t, 0.5, r.Value(bench.Astar, bench.Time))
	assert.Zero(t, r.Value(bench.MctsOpt, bench.Time))

	_, ok := r.Lookup(bench.Astar, bench.Steps)
	assert.False(t, ok)
}

func TestMethodAndMetricNames(t *testing.T) {
	assert.Equal(t, "MCTS (MDA & MHA)", bench.MctsOpt.Label())
	assert.Equal(t, "A*", bench.Astar.Label())
	assert.Equal(t, "MCTS (PRW)", bench.MctsPrw.Label())
	assert.Equal(t, "Time (s)", bench.Time.Unit())
	assert.Equal(t, "Plan Steps", bench.Steps.Title())
	assert.Equal(t, "mcts_prw", bench.MctsPrw.String())
}

func TestQuickComparisons(t *testing.T) {
	cs := bench.QuickComparisons()
	require.Len(t, cs, 8)
	assert.Equal(t, "Runtime for Blocksworld", cs[0].Title())
	assert.Equal(t, "time_blocksworld", cs[0].Name())
	assert.Equal(t, "Plan length for Logistics", cs[7].Title())
	assert.Equal(t, []float64{16, 93, 185}, cs[6].MCTS)

	cs[0].Labels[0] = "changed"
	assert.Equal(t, "prob1", bench.QuickComparisons()[0].Labels[0])
}
