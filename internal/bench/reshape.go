package bench

import "fmt"

// BarplotData holds one domain's results as aligned series. Index i of
// every slice refers to Problems[i].
type BarplotData struct {
	Domain       string    `json:"domain"`
	Problems     []string  `json:"problems"`
	Labels       []string  `json:"labels"`
	MctsOptTime  []float64 `json:"mcts_opt_time"`
	MctsPrwTime  []float64 `json:"mcts_prw_time"`
	AstarTime    []float64 `json:"astar_time"`
	MctsOptSteps []float64 `json:"mcts_opt_steps"`
	MctsPrwSteps []float64 `json:"mcts_prw_steps"`
	AstarSteps   []float64 `json:"astar_steps"`
}

// PrepareBarplotData reshapes the results of domain into one series per
// method and metric, ordered by problem id. Missing values read as 0.
func PrepareBarplotData(t *Table, domain string) (*BarplotData, error) {
	problems, err := t.Problems(domain)
	if err != nil {
		return nil, err
	}
	d := &BarplotData{
		Domain:   domain,
		Problems: problems,
		Labels:   make([]string, len(problems)),
	}
	for i := range problems {
		d.Labels[i] = fmt.Sprintf("prob %d", i+1)
	}
	get := func(m Method, k Metric) []float64 {
		out := make([]float64, len(problems))
		for i, p := range problems {
			rec, _ := t.Record(domain, p)
			out[i] = rec.Value(m, k)
		}
		return out
	}
	d.MctsOptTime = get(MctsOpt, Time)
	d.MctsPrwTime = get(MctsPrw, Time)
	d.AstarTime = get(Astar, Time)
	d.MctsOptSteps = get(MctsOpt, Steps)
	d.MctsPrwSteps = get(MctsPrw, Steps)
	d.AstarSteps = get(Astar, Steps)
	return d, nil
}

// Series returns the values for method and metric.
func (d *BarplotData) Series(m Method, k Metric) []float64 {
	switch {
	case m == MctsOpt && k == Time:
		return d.MctsOptTime
	case m == MctsPrw && k == Time:
		return d.MctsPrwTime
	case m == Astar && k == Time:
		return d.AstarTime
	case m == MctsOpt && k == Steps:
		return d.MctsOptSteps
	case m == MctsPrw && k == Steps:
		return d.MctsPrwSteps
	case m == Astar && k == Steps:
		return d.AstarSteps
	}
	return nil
}
