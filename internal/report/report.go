package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-isatty"

	"github.com/signalnine/plancharts/internal/bench"
)

// ProblemRow is one problem's results as reshaped for plotting.
type ProblemRow struct {
	Domain  string             `json:"domain"`
	Problem string             `json:"problem"`
	Label   string             `json:"label"`
	Values  map[string]float64 `json:"values"`
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Generate reshapes the given domains of t and writes them in format.
// Unknown formats fall back to a table. An unknown domain is an error.
func Generate(t *bench.Table, domains []string, format string, w io.Writer) error {
	var data []*bench.BarplotData
	for _, d := range domains {
		bd, err := bench.PrepareBarplotData(t, d)
		if err != nil {
			return err
		}
		data = append(data, bd)
	}

	switch format {
	case "markdown":
		return writeMarkdown(rows(data), w)
	case "json":
		return writeJSON(rows(data), w)
	case "dump":
		return writeDump(data, w)
	default:
		return writeTable(rows(data), w)
	}
}

// writeDump pretty-prints data, colored only when w is a terminal.
func writeDump(data []*bench.BarplotData, w io.Writer) error {
	printer := pp.New()
	printer.SetColoringEnabled(isTerminal(w))
	_, err := printer.Fprintln(w, data)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type column struct {
	method bench.Method
	metric bench.Metric
}

func columns() []column {
	var cols []column
	for _, k := range bench.Metrics() {
		for _, m := range bench.Methods() {
			cols = append(cols, column{m, k})
		}
	}
	return cols
}

func (c column) key() string {
	return c.method.Key() + "_" + c.metric.Key()
}

func rows(data []*bench.BarplotData) []ProblemRow {
	var out []ProblemRow
	for _, d := range data {
		for i, p := range d.Problems {
			r := ProblemRow{Domain: d.Domain, Problem: p, Label: d.Labels[i], Values: map[string]float64{}}
			for _, c := range columns() {
				r.Values[c.key()] = d.Series(c.method, c.metric)[i]
			}
			out = append(out, r)
		}
	}
	return out
}

func header() []string {
	h := []string{"DOMAIN", "PROBLEM", "LABEL"}
	for _, c := range columns() {
		h = append(h, c.key())
	}
	return h
}

func cells(r ProblemRow) []string {
	out := []string{r.Domain, r.Problem, r.Label}
	for _, c := range columns() {
		out = append(out, strconv.FormatFloat(r.Values[c.key()], 'f', -1, 64))
	}
	return out
}

func writeTable(rs []ProblemRow, w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(header()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rs {
		t.Row(cells(r)...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeMarkdown(rs []ProblemRow, w io.Writer) error {
	h := header()
	fmt.Fprint(w, "|")
	for _, c := range h {
		fmt.Fprintf(w, " %s |", c)
	}
	fmt.Fprint(w, "\n|")
	for range h {
		fmt.Fprint(w, "---|")
	}
	fmt.Fprintln(w)
	for _, r := range rs {
		fmt.Fprint(w, "|")
		for _, c := range cells(r) {
			fmt.Fprintf(w, " %s |", c)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeJSON(rs []ProblemRow, w io.Writer) error {
	if rs == nil {
		rs = []ProblemRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs)
}
