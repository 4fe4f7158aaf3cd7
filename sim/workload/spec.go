package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Reference patterns.
const (
	PatternExplicit = "explicit" // references listed verbatim
	PatternUniform  = "uniform"  // every page equally likely at every step
	PatternLocality = "locality" // a hot working set absorbs most references
	PatternLoop     = "loop"     // cyclic scan 0,1,..,pages-1,0,1,..
)

// CurrentVersion is the reference spec format version written by ToExplicit.
const CurrentVersion = "1"

// ReferenceSpec describes a reference string, either listed verbatim or generated.
// Loaded from YAML via LoadReferenceSpec(path).
type ReferenceSpec struct {
	Version    string  `yaml:"version"`
	Seed       int64   `yaml:"seed"`
	Pattern    string  `yaml:"pattern"`
	Length     int     `yaml:"length,omitempty"`
	Pages      int     `yaml:"pages,omitempty"`       // page universe is [0, pages)
	WorkingSet int     `yaml:"working_set,omitempty"` // hot pages (locality only)
	Locality   float64 `yaml:"locality,omitempty"`    // probability of a hot reference (locality only)
	Frames     int     `yaml:"frames,omitempty"`      // suggested frame count; 0 = caller decides
	References []int64 `yaml:"references,omitempty"`  // explicit only
}

// Valid value registries.
var validPatterns = map[string]bool{
	PatternExplicit: true, PatternUniform: true, PatternLocality: true, PatternLoop: true,
}

// LoadReferenceSpec reads and parses a YAML reference specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadReferenceSpec(path string) (*ReferenceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference spec: %w", err)
	}
	return ParseReferenceSpec(data)
}

// ParseReferenceSpec decodes a YAML reference specification with strict field checking.
func ParseReferenceSpec(data []byte) (*ReferenceSpec, error) {
	var spec ReferenceSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing reference spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are consistent with its pattern.
func (s *ReferenceSpec) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported version %q; valid: %s", s.Version, CurrentVersion)
	}
	if !validPatterns[s.Pattern] {
		return fmt.Errorf("unknown pattern %q; valid: explicit, uniform, locality, loop", s.Pattern)
	}
	if s.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", s.Frames)
	}
	if s.Pattern == PatternExplicit {
		if s.Length != 0 || s.Pages != 0 {
			return fmt.Errorf("explicit pattern: length and pages must be unset")
		}
		return nil
	}

	prefix := s.Pattern + " pattern"
	if len(s.References) > 0 {
		return fmt.Errorf("%s: references are only allowed with the explicit pattern", prefix)
	}
	if s.Length <= 0 {
		return fmt.Errorf("%s: length must be positive, got %d", prefix, s.Length)
	}
	if s.Pages <= 0 {
		return fmt.Errorf("%s: pages must be positive, got %d", prefix, s.Pages)
	}
	if s.Pattern == PatternLocality {
		if s.WorkingSet < 1 || s.WorkingSet > s.Pages {
			return fmt.Errorf("%s: working_set must be in [1, %d], got %d", prefix, s.Pages, s.WorkingSet)
		}
		if math.IsNaN(s.Locality) || s.Locality < 0 || s.Locality > 1 {
			return fmt.Errorf("%s: locality must be in [0, 1], got %f", prefix, s.Locality)
		}
	}
	return nil
}

// ToExplicit returns a spec listing refs verbatim, carrying over seed and frames.
func ToExplicit(from *ReferenceSpec, refs []int64) *ReferenceSpec {
	return &ReferenceSpec{
		Version:    CurrentVersion,
		Seed:       from.Seed,
		Pattern:    PatternExplicit,
		Frames:     from.Frames,
		References: refs,
	}
}
