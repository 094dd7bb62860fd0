// Package perf lets a Go program benchmark its own functions with the same
// sampling, statistics and reporting as the stride command.
//
// # Quick Start
//
//	b := perf.New(perf.Options{Iterations: 100, TimePerIteration: 20 * time.Millisecond})
//	b.MustAdd("testMapLookup", func() error { _ = m["key"]; return nil })
//	b.MustAdd("testSliceScan", func() error { _ = slices.Index(s, "key"); return nil })
//
//	result, err := b.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Report(os.Stdout)
//
// # Saving and Comparing
//
// A result can be saved and compared against a later run. Tests are aligned
// by position, so the two runs may use different names:
//
//	_ = result.Save("before.json")
//	...
//	baseline, _ := perf.Load("before.json")
//	after.Compare(os.Stdout, baseline)
//
// # Measurements
//
// Each sample is the number of calls a test completed within one trial's time
// budget, so larger is faster. A function that returns an error or panics is
// dropped from the remaining trials and keeps the samples it already produced.
package perf
