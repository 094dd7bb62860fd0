package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/stride/internal/report"
	"github.com/wesleyorama2/stride/internal/results"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare BASELINE CANDIDATE",
		Short: "Compare two saved results files",
		Long: `Compare two saved results files test by test. Tests are aligned by
position, so runs of differently named implementations can be compared.
Positive percentages mean the candidate completed more calls.`,
		Args: cobra.ExactArgs(2),
		RunE: compareFiles,
	}

	cmd.Flags().Bool("no-color", false, "Disable colored output")
	return cmd
}

func compareFiles(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	baseline, err := results.Load(args[0])
	if err != nil {
		return err
	}
	candidate, err := results.Load(args[1])
	if err != nil {
		return err
	}

	return report.Compare(cmd.OutOrStdout(), baseline, candidate, reportOptions(settings, cmd))
}
