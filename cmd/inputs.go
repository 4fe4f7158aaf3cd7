package cmd

import (
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/workload"
)

// resolveInput returns the reference string and frame count selected by the
// --refs, --scenario or --workload flags. An explicit --frames always wins over
// the frame count a scenario or spec suggests.
func resolveInput(cmd *cobra.Command) ([]sim.PageID, int) {
	var references []sim.PageID
	capacity := frames

	switch {
	case cmd.Flags().Changed("refs"):
		references = make([]sim.PageID, len(refs))
		for i, r := range refs {
			references[i] = sim.PageID(r)
		}

	case scenarioName != "":
		cfg, err := loadDefaultsConfig(defaultsFilePath)
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Debugf("No defaults file at %s; using built-in scenarios only", defaultsFilePath)
		} else if err != nil {
			logrus.Fatalf("Failed to load defaults: %v", err)
		}
		scRefs, scFrames, err := lookupScenario(cfg, scenarioName, seed)
		if err != nil {
			logrus.Fatalf("Failed to resolve scenario: %v", err)
		}
		references = scRefs
		if !cmd.Flags().Changed("frames") {
			capacity = scFrames
		}

	case workloadPath != "":
		spec, err := workload.LoadReferenceSpec(workloadPath)
		if err != nil {
			logrus.Fatalf("Failed to load reference spec %s: %v", workloadPath, err)
		}
		references, err = workload.GenerateReferences(spec)
		if err != nil {
			logrus.Fatalf("Failed to generate references: %v", err)
		}
		if !cmd.Flags().Changed("frames") && spec.Frames > 0 {
			capacity = spec.Frames
		}

	default:
		logrus.Fatalf("No reference string: pass --refs, --scenario or --workload")
	}

	if capacity <= 0 {
		logrus.Fatalf("--frames must be positive, got %d", capacity)
	}
	return references, capacity
}
