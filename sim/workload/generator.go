package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim"
)

// GenerateReferences creates a reference string from a ReferenceSpec.
// Deterministic given the same spec and seed.
func GenerateReferences(spec *ReferenceSpec) ([]sim.PageID, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference spec: %w", err)
	}

	if spec.Pattern == PatternExplicit {
		if len(spec.References) == 0 {
			logrus.Warnf("explicit reference spec lists no references")
		}
		refs := make([]sim.PageID, len(spec.References))
		for i, r := range spec.References {
			refs[i] = sim.PageID(r)
		}
		return refs, nil
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	refRNG := rng.ForSubsystem(sim.SubsystemReferences)
	refs := make([]sim.PageID, spec.Length)

	switch spec.Pattern {
	case PatternUniform:
		for i := range refs {
			refs[i] = sim.PageID(refRNG.Intn(spec.Pages))
		}
	case PatternLoop:
		for i := range refs {
			refs[i] = sim.PageID(i % spec.Pages)
		}
	case PatternLocality:
		// hot pages are a seeded sample of the universe, not simply 0..working_set-1
		hot := rng.ForSubsystem(sim.SubsystemWorkingSet).Perm(spec.Pages)[:spec.WorkingSet]
		for i := range refs {
			if refRNG.Float64() < spec.Locality {
				refs[i] = sim.PageID(hot[refRNG.Intn(len(hot))])
			} else {
				refs[i] = sim.PageID(refRNG.Intn(spec.Pages))
			}
		}
	}
	return refs, nil
}

// PageIDs converts generated references back to plain integers for serialization.
func PageIDs(refs []sim.PageID) []int64 {
	out := make([]int64, len(refs))
	for i, r := range refs {
		out[i] = int64(r)
	}
	return out
}
