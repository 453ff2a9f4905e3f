package bench

import (
	"fmt"
	"strings"
)

// Comparison is a two-series MCTS vs A* figure for one domain and metric.
type Comparison struct {
	Domain string
	Metric Metric
	Labels []string
	MCTS   []float64
	Astar  []float64
}

// Title is the figure title, e.g. "Runtime for Blocksworld".
func (c Comparison) Title() string {
	prefix := "Runtime"
	if c.Metric == Steps {
		prefix = "Plan length"
	}
	return fmt.Sprintf("%s for %s", prefix, c.Domain)
}

// Name is a file-name friendly identifier, e.g. "time_blocksworld".
func (c Comparison) Name() string {
	return c.Metric.Key() + "_" + strings.ToLower(c.Domain)
}

var probLabels = []string{"prob1", "prob2", "prob3"}

// QuickComparisons returns one comparison per domain and metric, runtime
// first. The returned slices are fresh copies.
func QuickComparisons() []Comparison {
	rows := []struct {
		domain      string
		metric      Metric
		mcts, astar []float64
	}{
		{"Blocksworld", Time, []float64{0.33, 0.19, 0.86}, []float64{0.13, 0.14, 0.19}},
		{"Depot", Time, []float64{0.35, 3.7, 8.86}, []float64{0.2, 0.49, 6.42}},
		{"Gripper", Time, []float64{0.44, 0.19, 1.96}, []float64{0.81, 0, 0}},
		{"Logistics", Time, []float64{0.58, 1.9, 1.87}, []float64{0.37, 0.36, 0.83}},
		{"Blocksworld", Steps, []float64{6, 6, 20}, []float64{6, 6, 10}},
		{"Depot", Steps, []float64{14, 29, 49}, []float64{10, 15, 29}},
		{"Gripper", Steps, []float64{16, 93, 185}, []float64{9, 0, 0}},
		{"Logistics", Steps, []float64{20, 26, 29}, []float64{20, 15, 17}},
	}
	out := make([]Comparison, 0, len(rows))
	for _, r := range rows {
		out = append(out, Comparison{
			Domain: r.domain,
			Metric: r.metric,
			Labels: append([]string(nil), probLabels...),
			MCTS:   r.mcts,
			Astar:  r.astar,
		})
	}
	return out
}
