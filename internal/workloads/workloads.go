// Package workloads holds the test suites shipped with stride.
//
// Each suite is a named, ordered list of benchmark functions. In a paired
// suite the tests come in baseline/candidate pairs (A1, B1, A2, B2, ...) so
// a run can be split into two stores and compared pairwise.
package workloads

import (
	"fmt"
	"sort"

	"github.com/wesleyorama2/stride/internal/bench"
)

// Test is a named benchmark function.
type Test struct {
	Name string
	Func bench.Func
}

// Suite is a named group of tests.
type Suite struct {
	Name        string
	Description string

	// Paired suites list tests as baseline/candidate pairs.
	Paired bool

	Tests []Test
}

var catalog = map[string]*Suite{}

func add(s *Suite) {
	if _, exists := catalog[s.Name]; exists {
		panic(fmt.Sprintf("workloads: suite %q registered twice", s.Name))
	}
	catalog[s.Name] = s
}

func init() {
	add(builtinSuite())
	add(templatesSuite())
	add(parsersSuite())
	add(customSuite())
}

// Suites returns every suite sorted by name.
func Suites() []*Suite {
	out := make([]*Suite, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the suite with the given name.
func Lookup(name string) (*Suite, bool) {
	s, ok := catalog[name]
	return s, ok
}

// Register adds every test of the suite to reg.
func Register(reg *bench.Registry, s *Suite) error {
	for _, t := range s.Tests {
		if err := reg.Register(t.Name, t.Func); err != nil {
			return fmt.Errorf("suite %s: %w", s.Name, err)
		}
	}
	return nil
}

// Registry returns a new registry holding the suite's tests.
func (s *Suite) Registry() (*bench.Registry, error) {
	reg := bench.NewRegistry()
	if err := Register(reg, s); err != nil {
		return nil, err
	}
	return reg, nil
}

// sink keeps results reachable so the compiler cannot discard the work.
var sink any
