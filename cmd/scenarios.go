package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim/workload"
)

var scenariosDefaultsPath string

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenarios accepted by --scenario",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadDefaultsConfig(scenariosDefaultsPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			logrus.Fatalf("Failed to load defaults: %v", err)
		}
		printScenarios(os.Stdout, cfg)
	},
}

// printScenarios lists configured scenarios followed by the built-ins.
func printScenarios(w io.Writer, cfg Config) {
	fmt.Fprintln(w, "Configured (defaults.yaml):")
	for _, name := range cfg.scenarioNames() {
		sc := cfg.Scenarios[name]
		fmt.Fprintf(w, "  %-16s frames=%d refs=%d  %s\n", name, sc.Frames, len(sc.References), sc.Description)
	}
	fmt.Fprintln(w, "Built-in:")
	for _, name := range workload.BuiltinScenarioNames() {
		spec, _ := workload.BuiltinScenario(name, 0)
		fmt.Fprintf(w, "  %-16s frames=%d pattern=%s\n", name, spec.Frames, spec.Pattern)
	}
}

func init() {
	scenariosCmd.Flags().StringVar(&scenariosDefaultsPath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")

	rootCmd.AddCommand(scenariosCmd)
}
