// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim/trace"
)

var (
	// ErrInvalidCapacity is returned when the frame count is not positive.
	ErrInvalidCapacity = errors.New("frame capacity must be positive")
	// ErrUnknownPolicy is returned for a policy kind outside fifo/lru/optimal.
	ErrUnknownPolicy = errors.New("unknown replacement policy")
)

// SimConfig holds the parameters of one simulation run.
type SimConfig struct {
	Policy     PolicyKind
	Capacity   int
	References []PageID
	TraceLevel trace.TraceLevel // "" or "none" disables eviction tracing
}

// Validate checks the run parameters. An empty reference sequence is valid.
func (c SimConfig) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCapacity, c.Capacity)
	}
	if !IsValidPolicyKind(string(c.Policy)) {
		return fmt.Errorf("%w %q; valid policies: [fifo, lru, optimal]", ErrUnknownPolicy, c.Policy)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q; valid: none, decisions", c.TraceLevel)
	}
	return nil
}

// StepRecord is the outcome of processing one reference. Frames is the post-update snapshot.
type StepRecord struct {
	Clock     int64  `json:"clock"`
	Reference PageID `json:"reference"`
	Frames    []Slot `json:"frames"`
	Fault     bool   `json:"fault"`
	Slot      int    `json:"slot"`             // slot that was hit or filled
	Evicted   bool   `json:"evicted"`          // the fault replaced a resident page
	Victim    PageID `json:"victim,omitempty"` // valid only when Evicted
}

// Result bundles the outputs of a completed run.
type Result struct {
	Policy   PolicyKind
	Capacity int
	Steps    []StepRecord
	Faults   int
	Trace    *trace.EvictionTrace // nil if trace level is "none"
}

// Simulator replays a reference string against one policy and one FrameTable.
type Simulator struct {
	Clock      int64
	Frames     *FrameTable
	Policy     ReplacementPolicy
	References []PageID
	Steps      []StepRecord
	Faults     int
	Trace      *trace.EvictionTrace
}

// NewSimulator validates cfg and creates a Simulator with an empty FrameTable
// and a fresh policy instance.
func NewSimulator(cfg SimConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		Frames:     NewFrameTable(cfg.Capacity),
		Policy:     NewReplacementPolicy(cfg.Policy, cfg.Capacity),
		References: cfg.References,
		Steps:      make([]StepRecord, 0, len(cfg.References)),
	}
	if tc := (trace.TraceConfig{Level: cfg.TraceLevel}); tc.Enabled() {
		s.Trace = trace.NewEvictionTrace(tc)
	}
	return s, nil
}

// Done reports whether every reference has been processed.
func (sim *Simulator) Done() bool {
	return sim.Clock >= int64(len(sim.References))
}

// Step processes the reference at the current clock and advances the clock.
// Returns false if there was nothing left to process.
func (sim *Simulator) Step() bool {
	if sim.Done() {
		return false
	}
	ref := sim.References[sim.Clock]
	step := StepRecord{Clock: sim.Clock, Reference: ref}

	if slot, ok := sim.Frames.Contains(ref); ok {
		sim.Policy.OnHit(slot, sim.Clock)
		step.Slot = slot
		logrus.Debugf("[t %05d] %s hit page %d in slot %d", sim.Clock, sim.Policy.Kind(), ref, slot)
	} else {
		sim.Faults++
		step.Fault = true
		placement := sim.Policy.OnMiss(sim.Frames, sim.Clock, sim.References[sim.Clock+1:])
		step.Slot = placement.Slot
		if placement.Replace {
			step.Evicted = true
			step.Victim = sim.Frames.Slot(placement.Slot).Page
			sim.recordEviction(ref, step.Victim, placement)
		}
		sim.Frames.Set(placement.Slot, ref)
		logrus.Debugf("[t %05d] %s fault on page %d -> slot %d (%s)", sim.Clock, sim.Policy.Kind(), ref, placement.Slot, placement.Reason)
	}

	step.Frames = sim.Frames.Snapshot()
	sim.Steps = append(sim.Steps, step)
	sim.Clock++
	return true
}

func (sim *Simulator) recordEviction(ref, victim PageID, placement Placement) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordEviction(trace.EvictionRecord{
		Clock:      sim.Clock,
		Reference:  int64(ref),
		Policy:     string(sim.Policy.Kind()),
		Slot:       placement.Slot,
		Victim:     int64(victim),
		Reason:     placement.Reason,
		Candidates: placement.Candidates,
	})
}

// Run processes every remaining reference and returns the completed Result.
func (sim *Simulator) Run() *Result {
	if len(sim.References) == 0 {
		logrus.Warnf("empty reference sequence; %s run produces an empty trace", sim.Policy.Kind())
	}
	for sim.Step() {
	}
	logrus.Infof("[t %05d] %s simulation ended: %d faults over %d references",
		sim.Clock, sim.Policy.Kind(), sim.Faults, len(sim.References))
	return &Result{
		Policy:   sim.Policy.Kind(),
		Capacity: sim.Frames.Capacity(),
		Steps:    sim.Steps,
		Faults:   sim.Faults,
		Trace:    sim.Trace,
	}
}

// Run replays refs against a fresh policy of the given kind with capacity frames.
func Run(kind PolicyKind, refs []PageID, capacity int) (*Result, error) {
	s, err := NewSimulator(SimConfig{Policy: kind, Capacity: capacity, References: refs})
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}
