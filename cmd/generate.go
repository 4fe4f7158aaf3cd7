package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pagesim/sim/workload"
)

var (
	generateWorkloadPath string // Reference spec to expand
	generateScenario     string // Built-in scenario to expand
	generateSeed         int64  // Seed for the built-in scenario
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Expand a generated reference spec into an explicit one",
	Long:  "Load a reference spec (or a built-in scenario), generate its reference string and write it as an explicit spec. Output is written to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		var spec *workload.ReferenceSpec
		var err error
		switch {
		case generateWorkloadPath != "":
			spec, err = workload.LoadReferenceSpec(generateWorkloadPath)
		case generateScenario != "":
			spec, err = workload.BuiltinScenario(generateScenario, generateSeed)
		default:
			logrus.Fatalf("one of --workload or --scenario is required")
		}
		if err != nil {
			logrus.Fatalf("Failed to load spec: %v", err)
		}

		references, err := workload.GenerateReferences(spec)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		writeSpecToStdout(workload.ToExplicit(spec, workload.PageIDs(references)))
	},
}

// writeSpecToStdout marshals a ReferenceSpec to YAML and writes to stdout.
func writeSpecToStdout(spec *workload.ReferenceSpec) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Print(string(data))
}

func init() {
	generateCmd.Flags().StringVar(&generateWorkloadPath, "workload", "", "Path to a reference spec YAML")
	generateCmd.Flags().StringVar(&generateScenario, "scenario", "", "Built-in scenario name")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for the built-in scenario")
	generateCmd.MarkFlagsMutuallyExclusive("workload", "scenario")

	rootCmd.AddCommand(generateCmd)
}
