package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/stride/internal/report"
	"github.com/wesleyorama2/stride/internal/results"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the report of a saved results file",
		Args:  cobra.ExactArgs(1),
		RunE:  showFile,
	}

	cmd.Flags().Bool("pairs", false, "Compare the tests of the file pairwise")
	addReportFlags(cmd.Flags())
	return cmd
}

func showFile(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	store, err := results.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	m := store.Meta
	fmt.Fprintf(out, "%s: suite %s, %d iterations of %v, %s %s\n\n",
		args[0], m.Suite, m.Iterations, m.TimePerIteration, m.Platform, m.GoVersion)

	opts := reportOptions(settings, cmd)
	if pairs, _ := cmd.Flags().GetBool("pairs"); pairs {
		return report.ComparePairs(out, store, opts)
	}
	return report.Write(out, store, opts)
}
