package sim

import (
	"fmt"
	"strings"

	"github.com/inference-sim/pagesim/sim/trace"
)

// PolicyKind selects an eviction policy variant.
type PolicyKind string

const (
	PolicyFIFO    PolicyKind = "fifo"
	PolicyLRU     PolicyKind = "lru"
	PolicyOptimal PolicyKind = "optimal"
)

// validPolicyKinds maps accepted policy kinds.
var validPolicyKinds = map[PolicyKind]bool{
	PolicyFIFO:    true,
	PolicyLRU:     true,
	PolicyOptimal: true,
}

// IsValidPolicyKind returns true if kind names a known eviction policy.
func IsValidPolicyKind(kind string) bool {
	return validPolicyKinds[PolicyKind(kind)]
}

// AllPolicyKinds returns every policy in report order.
func AllPolicyKinds() []PolicyKind {
	return []PolicyKind{PolicyFIFO, PolicyLRU, PolicyOptimal}
}

// ParsePolicyKind normalizes a user-supplied policy name.
// Matching is case-insensitive and "opt" is accepted for optimal.
func ParsePolicyKind(name string) (PolicyKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "opt" {
		n = string(PolicyOptimal)
	}
	if !IsValidPolicyKind(n) {
		return "", fmt.Errorf("%w %q; valid policies: [fifo, lru, optimal]", ErrUnknownPolicy, name)
	}
	return PolicyKind(n), nil
}

// Placement is a policy's answer to a page fault: where the new page goes.
type Placement struct {
	Slot       int
	Replace    bool // Slot held a resident page that is evicted
	Reason     string
	Candidates []trace.CandidateScore // ranking behind a replacement; nil when not applicable
}

// ReplacementPolicy decides where a faulting page is placed.
// Implementations keep only their own auxiliary state; the FrameTable is owned by the Simulator.
type ReplacementPolicy interface {
	Kind() PolicyKind
	// OnHit is called when the reference at clock hit slot.
	OnHit(slot int, clock int64)
	// OnMiss is called when the reference at clock is not resident. future holds the
	// references after clock. The returned Slot is always valid for frames.
	OnMiss(frames *FrameTable, clock int64, future []PageID) Placement
}

// NewReplacementPolicy creates an eviction policy by kind.
// Valid kinds: "fifo", "lru", "optimal". Callers validate with IsValidPolicyKind first.
func NewReplacementPolicy(kind PolicyKind, capacity int) ReplacementPolicy {
	switch kind {
	case PolicyFIFO:
		return NewFIFOPolicy(capacity)
	case PolicyLRU:
		return NewLRUPolicy(capacity)
	case PolicyOptimal:
		return &OptimalPolicy{}
	default:
		panic(fmt.Sprintf("unknown replacement policy %q; valid policies: [fifo, lru, optimal]", kind))
	}
}

// fillEmpty places a page in the first empty slot while the table still has room.
func fillEmpty(frames *FrameTable) (Placement, bool) {
	slot, ok := frames.FirstEmptySlot()
	if !ok {
		return Placement{}, false
	}
	return Placement{Slot: slot, Reason: "free frame"}, true
}
