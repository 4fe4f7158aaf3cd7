package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/workload"
)

// Scenario describes a named reference string in defaults.yaml.
type Scenario struct {
	Description string  `yaml:"description"`
	Frames      int     `yaml:"frames"`
	References  []int64 `yaml:"references"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	for name, sc := range cfg.Scenarios {
		if sc.Frames <= 0 {
			return cfg, fmt.Errorf("scenario %q: frames must be positive, got %d", name, sc.Frames)
		}
	}
	return cfg, nil
}

// scenarioNames returns the names configured in cfg, sorted.
func (cfg Config) scenarioNames() []string {
	names := make([]string, 0, len(cfg.Scenarios))
	for name := range cfg.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupScenario resolves a scenario name to a reference string and frame count.
// Names in cfg win over built-in scenarios; seed only affects generated built-ins.
func lookupScenario(cfg Config, name string, seed int64) ([]sim.PageID, int, error) {
	if sc, ok := cfg.Scenarios[name]; ok {
		refs := make([]sim.PageID, len(sc.References))
		for i, r := range sc.References {
			refs[i] = sim.PageID(r)
		}
		return refs, sc.Frames, nil
	}
	spec, err := workload.BuiltinScenario(name, seed)
	if err != nil {
		return nil, 0, fmt.Errorf("%w (configured: %v)", err, cfg.scenarioNames())
	}
	refs, err := workload.GenerateReferences(spec)
	if err != nil {
		return nil, 0, err
	}
	return refs, spec.Frames, nil
}
