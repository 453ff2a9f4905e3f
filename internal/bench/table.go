package bench

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownDomain is returned when a domain is not present in a table.
var ErrUnknownDomain = errors.New("unknown domain")

// KnownDomains lists the benchmark families in presentation order.
var KnownDomains = []string{"blocks", "depot", "gripper", "logistics"}

//go:embed data/benchmarks.yaml
var defaultData []byte

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(defaultData)
})

// Table maps domain -> problem -> record. It is read-only once parsed.
type Table struct {
	domains map[string]map[string]Record
}

// Default returns the built-in results table.
func Default() (*Table, error) {
	return loadDefault()
}

// Parse decodes a YAML results table. Unknown record fields are rejected.
func Parse(data []byte) (*Table, error) {
	raw := map[string]map[string]Record{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing results table: %w", err)
	}
	for domain, problems := range raw {
		if problems == nil {
			raw[domain] = map[string]Record{}
		}
		for problem, rec := range problems {
			if err := validateRecord(rec); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", domain, problem, err)
			}
		}
	}
	return &Table{domains: raw}, nil
}

func validateRecord(r Record) error {
	for _, m := range Methods() {
		for _, k := range Metrics() {
			v, ok := r.Lookup(m, k)
			if !ok {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("%s_%s: invalid value %v", m.Key(), k.Key(), v)
			}
		}
	}
	return nil
}

// Domains returns the known domains present in the table followed by any
// other domains in lexical order.
func (t *Table) Domains() []string {
	var out, extra []string
	for _, d := range KnownDomains {
		if _, ok := t.domains[d]; ok {
			out = append(out, d)
		}
	}
	for d := range t.domains {
		if !slices.Contains(KnownDomains, d) {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// Problems returns the problem ids of domain in lexical order.
func (t *Table) Problems(domain string) ([]string, error) {
	problems, ok := t.domains[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	ids := make([]string, 0, len(problems))
	for id := range problems {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Record returns the results for one problem.
func (t *Table) Record(domain, problem string) (Record, bool) {
	rec, ok := t.domains[domain][problem]
	return rec, ok
}
