// Package bench runs benchmark functions under a fixed time budget and
// collects one throughput sample per test per trial.
package bench

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Func is a benchmarked function. A returned error or a panic marks the
// invocation as failed.
type Func func() error

var (
	// ErrUnknownTest is returned when a name is not registered.
	ErrUnknownTest = errors.New("unknown test")

	// ErrNoTests is returned when a run is requested without tests.
	ErrNoTests = errors.New("no tests selected")
)

// Registry maps test names to functions, preserving registration order.
type Registry struct {
	names []string
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a named function. Names must be unique and non-empty.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("test name is required")
	}
	if fn == nil {
		return fmt.Errorf("test %q: function is nil", name)
	}
	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("test %q already registered", name)
	}

	r.names = append(r.names, name)
	r.funcs[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// List returns, in registration order, the names matching the regular
// expression pattern. An empty pattern matches every name.
func (r *Registry) List(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}

	var out []string
	for _, name := range r.names {
		if re.MatchString(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Trial runs one timed trial of the named function. A failed trial returns
// a *TrialError naming the test.
func (r *Registry) Trial(name string, budget time.Duration) (int64, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTest, name)
	}

	n, err := RunTrial(fn, budget)
	var terr *TrialError
	if errors.As(err, &terr) {
		terr.Test = name
	}
	return n, err
}

// call runs fn, converting a panic into an error.
func call(fn Func) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = fmt.Errorf("panic: %w", perr)
				return
			}
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}
