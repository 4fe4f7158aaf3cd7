package workload

import (
	"fmt"
	"sort"
)

// Built-in scenario presets for common reference patterns.
// Each returns a valid ReferenceSpec ready for use with GenerateReferences.

// ScenarioBeladyAnomaly is the classic string on which FIFO faults more with 4 frames than with 3.
func ScenarioBeladyAnomaly(seed int64) *ReferenceSpec {
	return &ReferenceSpec{
		Version: CurrentVersion, Seed: seed, Pattern: PatternExplicit, Frames: 3,
		References: []int64{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5},
	}
}

// ScenarioThrashingLoop scans one page more than fits, the worst case for fifo and lru.
func ScenarioThrashingLoop(seed int64) *ReferenceSpec {
	return &ReferenceSpec{
		Version: CurrentVersion, Seed: seed, Pattern: PatternLoop, Frames: 4,
		Length: 40, Pages: 5,
	}
}

// ScenarioHotWorkingSet sends 90% of references to a working set that fits in memory.
func ScenarioHotWorkingSet(seed int64) *ReferenceSpec {
	return &ReferenceSpec{
		Version: CurrentVersion, Seed: seed, Pattern: PatternLocality, Frames: 4,
		Length: 200, Pages: 32, WorkingSet: 4, Locality: 0.9,
	}
}

// ScenarioUniformNoise draws every reference uniformly from a universe far larger than memory.
func ScenarioUniformNoise(seed int64) *ReferenceSpec {
	return &ReferenceSpec{
		Version: CurrentVersion, Seed: seed, Pattern: PatternUniform, Frames: 4,
		Length: 200, Pages: 16,
	}
}

var builtinScenarios = map[string]func(seed int64) *ReferenceSpec{
	"belady-anomaly":  ScenarioBeladyAnomaly,
	"thrashing-loop":  ScenarioThrashingLoop,
	"hot-working-set": ScenarioHotWorkingSet,
	"uniform-noise":   ScenarioUniformNoise,
}

// BuiltinScenarioNames returns the names of all built-in scenarios, sorted.
func BuiltinScenarioNames() []string {
	names := make([]string, 0, len(builtinScenarios))
	for name := range builtinScenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinScenario returns the named built-in scenario seeded with seed.
func BuiltinScenario(name string, seed int64) (*ReferenceSpec, error) {
	fn, ok := builtinScenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q; valid: %v", name, BuiltinScenarioNames())
	}
	return fn(seed), nil
}
