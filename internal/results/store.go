// Package results holds the per-test sample collections produced by a
// sampling run and persists them for later comparison.
package results

import "time"

// Meta describes the run that produced a Store.
type Meta struct {
	Iterations       int           `json:"iterations" yaml:"iterations"`
	TimePerIteration time.Duration `json:"timePerIteration" yaml:"timePerIteration"`
	Suite            string        `json:"suite,omitempty" yaml:"suite,omitempty"`
	Filter           string        `json:"filter,omitempty" yaml:"filter,omitempty"`
	GoVersion        string        `json:"goVersion,omitempty" yaml:"goVersion,omitempty"`
	Platform         string        `json:"platform,omitempty" yaml:"platform,omitempty"`
	Created          time.Time     `json:"created" yaml:"created"`
}

// Store maps test names to their ordered sample collections.
//
// Names keep first-insertion order and each collection keeps trial order.
// A Store is not safe for concurrent use; parallel producers must each own
// a Store and merge afterwards.
type Store struct {
	Meta Meta

	names   []string
	samples map[string][]int64
}

// NewStore creates an empty store.
func NewStore(meta Meta) *Store {
	return &Store{
		Meta:    meta,
		samples: make(map[string][]int64),
	}
}

// Add registers a test name with an empty collection.
// Adding an existing name is a no-op.
func (s *Store) Add(name string) {
	if _, ok := s.samples[name]; ok {
		return
	}
	s.names = append(s.names, name)
	s.samples[name] = []int64{}
}

// Append adds a sample to the end of a test's collection, registering the
// name first if needed.
func (s *Store) Append(name string, sample int64) {
	s.Add(name)
	s.samples[name] = append(s.samples[name], sample)
}

// Names returns the test names in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Samples returns a copy of a test's collection and whether the name exists.
func (s *Store) Samples(name string) ([]int64, bool) {
	v, ok := s.samples[name]
	if !ok {
		return nil, false
	}
	out := make([]int64, len(v))
	copy(out, v)
	return out, true
}

// Len returns the number of tests.
func (s *Store) Len() int {
	return len(s.names)
}

// Split separates the store into tests at even and odd positions.
//
// It pairs test 0 with test 1, test 2 with test 3, and so on, so that the
// two halves can be compared position by position.
func (s *Store) Split() (even, odd *Store) {
	even, odd = NewStore(s.Meta), NewStore(s.Meta)
	for i, name := range s.names {
		dst := even
		if i%2 == 1 {
			dst = odd
		}
		dst.Add(name)
		dst.samples[name] = append(dst.samples[name], s.samples[name]...)
	}
	return even, odd
}
