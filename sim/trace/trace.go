package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every eviction decision with its candidates.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions
}

// EvictionTrace collects eviction records during one simulation run.
type EvictionTrace struct {
	Config    TraceConfig
	Evictions []EvictionRecord
}

// NewEvictionTrace creates an EvictionTrace ready for recording.
func NewEvictionTrace(config TraceConfig) *EvictionTrace {
	return &EvictionTrace{
		Config:    config,
		Evictions: make([]EvictionRecord, 0),
	}
}

// RecordEviction appends an eviction decision record.
func (et *EvictionTrace) RecordEviction(record EvictionRecord) {
	et.Evictions = append(et.Evictions, record)
}
