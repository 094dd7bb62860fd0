package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesleyorama2/stride/internal/logging"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "stride",
		Short:   "A micro-benchmark harness for comparing Go code paths",
		Version: version,
		Long: `Stride measures how many times each test function completes within a fixed
time budget, repeats the measurement over many trials while alternating the
test order, and reports robust statistics. Results can be saved and compared
against later runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, print help
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "console", "Diagnostic log format: console or json")

	root.AddCommand(newRunCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newListCmd())

	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// commandLogger builds the diagnostic logger from the --log-level and
// --log-format flags.
func commandLogger(cmd *cobra.Command) (*zap.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}

	format, _ := cmd.Flags().GetString("log-format")
	asJSON, err := logging.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Config{
		Level:  level,
		JSON:   asJSON,
		Output: cmd.ErrOrStderr(),
	}), nil
}
