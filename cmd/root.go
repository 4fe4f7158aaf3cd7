package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/export"
	"github.com/inference-sim/pagesim/sim/trace"
)

var (
	// CLI flags shared by run and compare
	frames           int     // Number of memory frames
	refs             []int64 // Explicit reference string
	scenarioName     string  // Named scenario from defaults.yaml or the built-ins
	workloadPath     string  // Path to a reference spec YAML
	seed             int64   // Seed for generated scenarios
	defaultsFilePath string  // Path to defaults.yaml
	logLevel         string  // Log verbosity level

	// CLI flags for run
	policyName   string // Eviction policy
	traceLevel   string // Eviction decision tracing
	traceOutPath string // File to export the step trace to
	traceCodec   string // Compression of the exported trace
	summaryJSON  bool   // Print the summary as JSON
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement policy simulator (FIFO, LRU, OPTIMAL)",
}

// runCmd replays one reference string under one policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the page-replacement simulation for one policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		kind, err := sim.ParsePolicyKind(policyName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, decisions", traceLevel)
		}
		references, capacity := resolveInput(cmd)

		logrus.Infof("Starting %s simulation with %d frames over %d references", kind, capacity, len(references))
		startTime := time.Now()

		s, err := sim.NewSimulator(sim.SimConfig{
			Policy:     kind,
			Capacity:   capacity,
			References: references,
			TraceLevel: trace.TraceLevel(traceLevel),
		})
		if err != nil {
			logrus.Fatalf("Invalid simulation config: %v", err)
		}
		result := s.Run()

		if err := printRunReport(os.Stdout, result, summaryJSON); err != nil {
			logrus.Fatalf("Failed to print report: %v", err)
		}
		if traceOutPath != "" {
			if err := writeTraceFile(traceOutPath, traceCodec, result); err != nil {
				logrus.Fatalf("Failed to export trace: %v", err)
			}
			logrus.Infof("Trace written to %s", traceOutPath)
		}

		logrus.Infof("Simulation complete in %v", time.Since(startTime))
	},
}

// setupLogging applies the --log level.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags registers the reference-string and frame flags on cmd.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frames, "frames", 3, "Number of memory frames (overrides the scenario's frame count when set)")
	cmd.Flags().Int64SliceVar(&refs, "refs", nil, "Comma-separated reference string, e.g. 7,0,1,2,0")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario from defaults.yaml or a built-in (see `pagesim scenarios`)")
	cmd.Flags().StringVar(&workloadPath, "workload", "", "Path to a reference spec YAML")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for generated scenarios")
	cmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.MarkFlagsMutuallyExclusive("refs", "scenario", "workload")
}

// init sets up CLI flags and subcommands
func init() {
	addInputFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "fifo", "Eviction policy (fifo, lru, optimal)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Eviction decision tracing (none, decisions)")
	runCmd.Flags().StringVar(&traceOutPath, "trace-out", "", "Export the step trace as JSON Lines to this file")
	runCmd.Flags().StringVar(&traceCodec, "trace-codec", "", "Trace compression (none, lz4, snappy); inferred from the --trace-out extension when empty")
	runCmd.Flags().BoolVar(&summaryJSON, "summary-json", false, "Print the summary as JSON instead of a text line")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

// resolveCodec picks the explicit codec or infers it from path.
func resolveCodec(name, path string) (export.Codec, error) {
	if name == "" {
		return export.CodecForPath(path), nil
	}
	return export.ParseCodec(name)
}
