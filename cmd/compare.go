package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
)

var (
	comparePolicies []string // Policies to compare
	compareTables   bool     // Print each policy's step table
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Replay one reference string under several policies and compare fault counts",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		kinds := make([]sim.PolicyKind, 0, len(comparePolicies))
		for _, name := range comparePolicies {
			kind, err := sim.ParsePolicyKind(name)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			kinds = append(kinds, kind)
		}
		references, capacity := resolveInput(cmd)

		results, err := sim.Compare(kinds, references, capacity)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		if compareTables {
			for _, r := range results {
				if err := printRunReport(os.Stdout, r, false); err != nil {
					logrus.Fatalf("Failed to print report: %v", err)
				}
				fmt.Println()
			}
		}
		fmt.Println("Summary:")
		printComparison(os.Stdout, results)
	},
}

func init() {
	addInputFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", []string{"fifo", "lru", "optimal"}, "Policies to compare")
	compareCmd.Flags().BoolVar(&compareTables, "tables", false, "Print each policy's step table before the summary")

	rootCmd.AddCommand(compareCmd)
}
