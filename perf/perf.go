package perf

import (
	"context"
	"io"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/wesleyorama2/stride/internal/bench"
	"github.com/wesleyorama2/stride/internal/logging"
	"github.com/wesleyorama2/stride/internal/output"
	"github.com/wesleyorama2/stride/internal/report"
	"github.com/wesleyorama2/stride/internal/results"
)

// Options configures a Benchmark. Zero fields take the command-line defaults.
type Options struct {
	// Iterations is the number of trials per test (default 250)
	Iterations int

	// TimePerIteration is the time budget of one trial (default 50ms)
	TimePerIteration time.Duration

	// Filter is a regular expression selecting test names (default "^test")
	Filter string

	// Progress receives the banner and progress line; nil disables them
	Progress io.Writer

	// Logger receives diagnostics such as dropped tests
	Logger *zap.Logger
}

func (o *Options) applyDefaults() {
	if o.Iterations == 0 {
		o.Iterations = 250
	}
	if o.TimePerIteration == 0 {
		o.TimePerIteration = 50 * time.Millisecond
	}
	if o.Filter == "" {
		o.Filter = "^test"
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
}

// Benchmark is a set of functions sampled together.
//
// For programmatic use, create a Benchmark, add functions and call Run:
//
//	b := perf.New(perf.Options{})
//	b.MustAdd("testA", a)
//	result, _ := b.Run(ctx)
type Benchmark struct {
	opts     Options
	registry *bench.Registry
}

// New creates an empty benchmark.
func New(opts Options) *Benchmark {
	opts.applyDefaults()
	return &Benchmark{
		opts:     opts,
		registry: bench.NewRegistry(),
	}
}

// Add registers a function under a unique name.
func (b *Benchmark) Add(name string, fn func() error) error {
	return b.registry.Register(name, fn)
}

// MustAdd is like Add but panics on error.
func (b *Benchmark) MustAdd(name string, fn func() error) {
	b.registry.MustRegister(name, fn)
}

// Run samples every function whose name matches the filter.
//
// If ctx is cancelled between trials, the partial result is returned with
// the context error.
func (b *Benchmark) Run(ctx context.Context) (*Result, error) {
	names, err := b.registry.List(b.opts.Filter)
	if err != nil {
		return nil, err
	}

	meta := results.Meta{
		Iterations:       b.opts.Iterations,
		TimePerIteration: b.opts.TimePerIteration,
		Filter:           b.opts.Filter,
		GoVersion:        runtime.Version(),
		Platform:         runtime.GOOS + "/" + runtime.GOARCH,
		Created:          time.Now().UTC(),
	}

	sampler := &bench.Sampler{
		Registry: b.registry,
		Trials:   b.opts.Iterations,
		Budget:   b.opts.TimePerIteration,
		Logger:   b.opts.Logger,
	}

	if b.opts.Progress != nil {
		console := output.NewConsole(output.ConsoleConfig{Writer: b.opts.Progress})
		console.Banner(output.BannerInfo{
			Suite:            "perf",
			Tests:            len(names),
			Iterations:       meta.Iterations,
			TimePerIteration: meta.TimePerIteration,
			Platform:         meta.Platform,
			GoVersion:        meta.GoVersion,
			MaxProcs:         runtime.GOMAXPROCS(0),
		})
		sampler.Progress = console.Progress
		defer console.Finish()
	}

	store, err := sampler.Run(ctx, names, meta)
	if store == nil {
		return nil, err
	}
	return &Result{store: store}, err
}

// Result holds the samples of a run.
type Result struct {
	store *results.Store
}

// Load reads a result saved with Save.
func Load(path string) (*Result, error) {
	store, err := results.Load(path)
	if err != nil {
		return nil, err
	}
	return &Result{store: store}, nil
}

// Names returns the test names in run order, including failed tests.
func (r *Result) Names() []string {
	return r.store.Names()
}

// Samples returns a copy of the per-trial call counts of a test.
func (r *Result) Samples(name string) ([]int64, bool) {
	return r.store.Samples(name)
}

// Save writes the result to path as JSON, or YAML for .yaml/.yml paths.
func (r *Result) Save(path string) error {
	return results.Save(path, r.store)
}

// Report writes the statistics of every test without color.
func (r *Result) Report(w io.Writer) error {
	return report.Write(w, r.store, plainOptions())
}

// Compare writes a side-by-side comparison of baseline and r.
func (r *Result) Compare(w io.Writer, baseline *Result) error {
	return report.Compare(w, baseline.store, r.store, plainOptions())
}

// ComparePairs compares test 0 with test 1, test 2 with test 3, and so on.
func (r *Result) ComparePairs(w io.Writer) error {
	return report.ComparePairs(w, r.store, plainOptions())
}

func plainOptions() report.Options {
	opts := report.DefaultOptions()
	opts.Color = false
	return opts
}
