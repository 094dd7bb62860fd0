package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/stride/internal/workloads"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available suites and their tests",
		Args:  cobra.NoArgs,
		RunE:  listSuites,
	}

	cmd.Flags().StringP("suite", "s", "", "Only list this suite")
	cmd.Flags().String("filter", "^test", "Regular expression selecting test names")
	return cmd
}

func listSuites(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("suite")
	filter, _ := cmd.Flags().GetString("filter")

	suites := workloads.Suites()
	if name != "" {
		s, ok := workloads.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown suite %q (available: %s)", name, suiteNames())
		}
		suites = []*workloads.Suite{s}
	}

	out := cmd.OutOrStdout()
	for _, s := range suites {
		reg, err := s.Registry()
		if err != nil {
			return err
		}
		names, err := reg.List(filter)
		if err != nil {
			return err
		}

		header := s.Name
		if s.Paired {
			header += " (paired)"
		}
		fmt.Fprintf(out, "%s - %s\n", header, s.Description)
		for _, n := range names {
			fmt.Fprintf(out, "  %s\n", n)
		}
	}
	return nil
}
