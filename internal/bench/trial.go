package bench

import (
	"fmt"
	"time"
)

// TrialError reports a test invocation that failed during a trial.
type TrialError struct {
	Test string
	// Completed is the number of timed invocations that finished before the failure.
	Completed int64
	Err       error
}

func (e *TrialError) Error() string {
	if e.Test == "" {
		return fmt.Sprintf("trial failed after %d iterations: %v", e.Completed, e.Err)
	}
	return fmt.Sprintf("test %s failed after %d iterations: %v", e.Test, e.Completed, e.Err)
}

func (e *TrialError) Unwrap() error {
	return e.Err
}

// RunTrial measures how many times fn completes within budget.
//
// fn is called once untimed to absorb first-call setup cost. The timed loop
// then calls fn back to back against the monotonic clock until the elapsed
// time reaches budget; the clock is read only between calls, so the last
// call may overrun the budget. The loop never sleeps or yields.
//
// A failing call returns a *TrialError and no sample.
func RunTrial(fn Func, budget time.Duration) (int64, error) {
	if err := call(fn); err != nil {
		return 0, &TrialError{Err: err}
	}

	var completed int64
	start := time.Now()
	for time.Since(start) < budget {
		if err := call(fn); err != nil {
			return 0, &TrialError{Completed: completed, Err: err}
		}
		completed++
	}

	return completed, nil
}
