package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/wesleyorama2/stride/internal/logging"
	"github.com/wesleyorama2/stride/internal/results"
)

// ProgressFunc receives the fraction of trials completed, from 0 to 1.
// Calls are advisory.
type ProgressFunc func(done float64)

// Sampler runs every selected test once per trial for a number of trials.
//
// # Order alternation
//
// Even trials run the tests in the given order and odd trials in reverse,
// so drift correlated with execution position (cache warmth, thermal
// throttling) does not always favour the same test.
//
// # Failures
//
// A test whose trial fails is dropped from all later trials. Samples it
// already produced are kept, so its collection is a prefix of the others.
//
// Sampler runs everything on the calling goroutine and is not safe for
// concurrent use.
type Sampler struct {
	Registry *Registry
	Trials   int
	Budget   time.Duration
	Progress ProgressFunc
	Logger   *zap.Logger
}

// Run samples the named tests and returns the populated store.
//
// ctx is only checked between trials. If it is cancelled the partially
// filled store is returned together with the context error.
func (s *Sampler) Run(ctx context.Context, names []string, meta results.Meta) (*results.Store, error) {
	if err := s.validate(names); err != nil {
		return nil, err
	}

	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	store := results.NewStore(meta)
	for _, name := range names {
		store.Add(name)
	}

	ascending := slices.Clone(names)
	descending := slices.Clone(names)
	slices.Reverse(descending)

	for i := 0; i < s.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return store, err
		}
		s.report(float64(i) / float64(s.Trials))

		order := ascending
		if i%2 == 1 {
			order = descending
		}

		var failed []string
		for _, name := range order {
			sample, err := s.Registry.Trial(name, s.Budget)
			if err != nil {
				logger.Warn("test failed, dropping it from later trials",
					zap.String("test", name), zap.Int("trial", i), zap.Error(err))
				failed = append(failed, name)
				continue
			}

			store.Append(name, sample)
			logger.Debug("trial complete",
				zap.String("test", name), zap.Int("trial", i), zap.Int64("iterations", sample))
		}

		if len(failed) > 0 {
			drop := func(n string) bool { return slices.Contains(failed, n) }
			ascending = slices.DeleteFunc(ascending, drop)
			descending = slices.DeleteFunc(descending, drop)
		}
	}

	s.report(1)
	return store, nil
}

func (s *Sampler) validate(names []string) error {
	if s.Registry == nil {
		return fmt.Errorf("sampler has no registry")
	}
	if s.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", s.Trials)
	}
	if s.Budget <= 0 {
		return fmt.Errorf("time budget must be positive, got %s", s.Budget)
	}
	if len(names) == 0 {
		return ErrNoTests
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := s.Registry.Lookup(name); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTest, name)
		}
		if seen[name] {
			return fmt.Errorf("test %s selected twice", name)
		}
		seen[name] = true
	}
	return nil
}

func (s *Sampler) report(done float64) {
	if s.Progress != nil {
		s.Progress(done)
	}
}
