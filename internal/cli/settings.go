package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wesleyorama2/stride/internal/config"
	"github.com/wesleyorama2/stride/internal/output"
	"github.com/wesleyorama2/stride/internal/report"
)

// addReportFlags registers the flags shared by every command that prints a
// report.
func addReportFlags(f *pflag.FlagSet) {
	f.Bool("histogram", false, "Print a histogram of the measurements")
	f.Int("histogram-buckets", 16, "Number of histogram buckets")
	f.Int("histogram-width", 50, "Width of the longest histogram bar")
	f.Bool("show-outliers", false, "List the measurements outside the outlier fences")
	f.Bool("show-all", false, "List every measurement")
	f.Bool("no-color", false, "Disable colored output")
}

// resolveSettings applies, in increasing precedence, the defaults, the
// --config file and the flags set on the command line.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.DefaultSettings()

	f := cmd.Flags()
	if f.Lookup("config") != nil {
		if path, _ := f.GetString("config"); path != "" {
			loaded, err := config.LoadSettings(path)
			if err != nil {
				return nil, err
			}
			settings = loaded
		}
	}

	changed := func(name string) bool {
		return f.Lookup(name) != nil && f.Changed(name)
	}

	if changed("suite") {
		settings.Suite, _ = f.GetString("suite")
	}
	if changed("filter") {
		settings.Filter, _ = f.GetString("filter")
	}
	if changed("iterations") {
		settings.Iterations, _ = f.GetInt("iterations")
	}
	if changed("time-per-iteration") {
		settings.TimePerIteration, _ = f.GetInt("time-per-iteration")
	}
	if changed("compare") {
		settings.Compare, _ = f.GetString("compare")
	}
	if changed("save") {
		settings.Save.Enabled, _ = f.GetBool("save")
	}
	if changed("name") {
		settings.Save.Name, _ = f.GetString("name")
	}
	if changed("output") {
		settings.Save.Path, _ = f.GetString("output")
	}
	if changed("histogram") {
		settings.Report.Histogram, _ = f.GetBool("histogram")
	}
	if changed("histogram-buckets") {
		settings.Report.HistogramBuckets, _ = f.GetInt("histogram-buckets")
	}
	if changed("histogram-width") {
		settings.Report.HistogramWidth, _ = f.GetInt("histogram-width")
	}
	if changed("show-outliers") {
		settings.Report.ShowOutliers, _ = f.GetBool("show-outliers")
	}
	if changed("show-all") {
		settings.Report.ShowAll, _ = f.GetBool("show-all")
	}
	if changed("no-color") {
		settings.Report.NoColor, _ = f.GetBool("no-color")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// reportOptions converts the report settings for the given output stream.
// Color is only used on a terminal.
func reportOptions(settings *config.Settings, cmd *cobra.Command) report.Options {
	opts := report.DefaultOptions()
	opts.Color = !settings.Report.NoColor && output.IsTerminal(cmd.OutOrStdout())
	opts.ShowHistogram = settings.Report.Histogram
	opts.HistogramBuckets = settings.Report.HistogramBuckets
	opts.HistogramWidth = settings.Report.HistogramWidth
	opts.ShowOutliers = settings.Report.ShowOutliers
	opts.ShowAll = settings.Report.ShowAll
	return opts
}
