package bench

// Method identifies a search strategy under comparison.
type Method int

const (
	MctsOpt Method = iota
	Astar
	MctsPrw
)

// Methods returns every method in chart series order.
func Methods() []Method {
	return []Method{MctsOpt, Astar, MctsPrw}
}

func (m Method) Key() string {
	switch m {
	case MctsOpt:
		return "mcts_opt"
	case MctsPrw:
		return "mcts_prw"
	case Astar:
		return "astar"
	}
	return "unknown"
}

// Label is the legend text for the method.
func (m Method) Label() string {
	switch m {
	case MctsOpt:
		return "MCTS (MDA & MHA)"
	case MctsPrw:
		return "MCTS (PRW)"
	case Astar:
		return "A*"
	}
	return "unknown"
}

func (m Method) String() string { return m.Key() }

// Metric is a measured quantity of a planner run.
type Metric int

const (
	Time Metric = iota
	Steps
)

// Metrics returns every metric in figure column order.
func Metrics() []Metric {
	return []Metric{Time, Steps}
}

func (k Metric) Key() string {
	switch k {
	case Time:
		return "time"
	case Steps:
		return "steps"
	}
	return "unknown"
}

// Unit is the axis label for values of the metric.
func (k Metric) Unit() string {
	switch k {
	case Time:
		return "Time (s)"
	case Steps:
		return "Steps"
	}
	return ""
}

// Title is the panel title prefix for the metric.
func (k Metric) Title() string {
	switch k {
	case Time:
		return "Runtime"
	case Steps:
		return "Plan Steps"
	}
	return ""
}

func (k Metric) String() string { return k.Key() }

// Record holds one problem's results. A nil field means the value was not
// recorded.
type Record struct {
	MctsOptSteps *float64 `yaml:"mcts_opt_steps" json:"mcts_opt_steps,omitempty"`
	MctsOptTime  *float64 `yaml:"mcts_opt_time" json:"mcts_opt_time,omitempty"`
	MctsPrwSteps *float64 `yaml:"mcts_prw_steps" json:"mcts_prw_steps,omitempty"`
	MctsPrwTime  *float64 `yaml:"mcts_prw_time" json:"mcts_prw_time,omitempty"`
	AstarSteps   *float64 `yaml:"astar_steps" json:"astar_steps,omitempty"`
	AstarTime    *float64 `yaml:"astar_time" json:"astar_time,omitempty"`
}

// Value returns the recorded value for method and metric, or 0 when it is
// absent.
func (r Record) Value(m Method, k Metric) float64 {
	v, _ := r.Lookup(m, k)
	return v
}

// Lookup is like Value but also reports whether the value was recorded.
func (r Record) Lookup(m Method, k Metric) (float64, bool) {
	var p *float64
	switch {
	case m == MctsOpt && k == Steps:
		p = r.MctsOptSteps
	case m == MctsOpt && k == Time:
		p = r.MctsOptTime
	case m == MctsPrw && k == Steps:
		p = r.MctsPrwSteps
	case m == MctsPrw && k == Time:
		p = r.MctsPrwTime
	case m == Astar && k == Steps:
		p = r.AstarSteps
	case m == Astar && k == Time:
		p = r.AstarTime
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}
