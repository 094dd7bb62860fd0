package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesleyorama2/stride/internal/bench"
	"github.com/wesleyorama2/stride/internal/config"
	"github.com/wesleyorama2/stride/internal/output"
	"github.com/wesleyorama2/stride/internal/report"
	"github.com/wesleyorama2/stride/internal/results"
	"github.com/wesleyorama2/stride/internal/workloads"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark suite",
		Long: `Run every test of a suite whose name matches the filter, once per trial,
for the configured number of trials. Each trial gives a test a fixed time
budget and records how many calls completed.

Examples:
  stride run --suite templates
  stride run --suite builtin --filter 'SHA|MD5' -i 100 --save --name before
  stride run --suite builtin --compare benchmark_before_20240101-1200.json`,
		Args: cobra.NoArgs,
		RunE: runBenchmarks,
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "Settings file (YAML)")
	f.StringP("suite", "s", "builtin", "Test suite to run")
	f.String("filter", "^test", "Regular expression selecting test names")
	f.IntP("iterations", "i", 250, "Number of trials per test")
	f.Int("time-per-iteration", 50, "Time budget of one trial in milliseconds")
	f.Bool("save", false, "Save the results to a generated file name")
	f.String("name", "", "Name added to the generated results file name")
	f.StringP("output", "o", "", "Save the results to this file (.json, .yaml or .yml)")
	f.String("compare", "", "Compare the run against a saved results file")
	f.BoolP("quiet", "q", false, "Disable the banner and progress output")
	addReportFlags(f)

	return cmd
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	suite, ok := workloads.Lookup(settings.Suite)
	if !ok {
		return fmt.Errorf("unknown suite %q (available: %s)", settings.Suite, suiteNames())
	}

	reg, err := suite.Registry()
	if err != nil {
		return err
	}
	names, err := reg.List(settings.Filter)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: suite %s has no test matching %q", bench.ErrNoTests, suite.Name, settings.Filter)
	}

	// Load the baseline before sampling so a bad path fails fast.
	var baseline *results.Store
	if settings.Compare != "" {
		baseline, err = results.Load(settings.Compare)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	console := output.NewConsole(output.ConsoleConfig{
		Writer:  out,
		Quiet:   quiet,
		NoColor: settings.Report.NoColor,
	})

	meta := results.Meta{
		Iterations:       settings.Iterations,
		TimePerIteration: settings.Budget(),
		Suite:            suite.Name,
		Filter:           settings.Filter,
		GoVersion:        runtime.Version(),
		Platform:         runtime.GOOS + "/" + runtime.GOARCH,
		Created:          time.Now().UTC(),
	}

	console.Banner(output.BannerInfo{
		Suite:            suite.Name,
		Tests:            len(names),
		Iterations:       settings.Iterations,
		TimePerIteration: settings.Budget(),
		Platform:         meta.Platform,
		GoVersion:        meta.GoVersion,
		MaxProcs:         runtime.GOMAXPROCS(0),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sampler := &bench.Sampler{
		Registry: reg,
		Trials:   settings.Iterations,
		Budget:   settings.Budget(),
		Progress: console.Progress,
		Logger:   logger,
	}

	logger.Info("sampling started",
		zap.String("suite", suite.Name), zap.Int("tests", len(names)), zap.Int("trials", settings.Iterations))
	store, runErr := sampler.Run(ctx, names, meta)
	console.Finish()

	if runErr != nil {
		if store == nil || !errors.Is(runErr, context.Canceled) {
			return runErr
		}
		console.Warn("run interrupted, reporting partial results")
	}

	if path := savePath(settings); path != "" {
		if err := results.Save(path, store); err != nil {
			return err
		}
		logger.Info("results saved", zap.String("path", path))
		if !quiet {
			fmt.Fprintf(out, "results saved to %s\n\n", path)
		}
	}

	opts := reportOptions(settings, cmd)
	switch {
	case baseline != nil:
		err = report.Compare(out, baseline, store, opts)
	case suite.Paired && store.Len() >= 2 && store.Len()%2 == 0:
		err = report.ComparePairs(out, store, opts)
	default:
		err = report.Write(out, store, opts)
	}
	if err != nil {
		return err
	}

	return runErr
}

// savePath returns where the run is saved, or "" when it is not.
func savePath(settings *config.Settings) string {
	if settings.Save.Path != "" {
		return settings.Save.Path
	}
	if settings.Save.Enabled {
		return results.DefaultFilename(settings.Save.Name, time.Now())
	}
	return ""
}

func suiteNames() string {
	var names []string
	for _, s := range workloads.Suites() {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
