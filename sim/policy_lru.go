package sim

import (
	"fmt"

	"github.com/inference-sim/pagesim/sim/trace"
)

// LRUPolicy evicts the slot with the oldest last-used clock.
// Ties go to the lowest slot index, which keeps traces reproducible.
type LRUPolicy struct {
	lastUsed []int64 // per-slot logical clock of the last hit or fill
}

// NewLRUPolicy creates an LRUPolicy for capacity slots.
func NewLRUPolicy(capacity int) *LRUPolicy {
	lastUsed := make([]int64, capacity)
	for i := range lastUsed {
		lastUsed[i] = -1
	}
	return &LRUPolicy{lastUsed: lastUsed}
}

func (p *LRUPolicy) Kind() PolicyKind { return PolicyLRU }

func (p *LRUPolicy) OnHit(slot int, clock int64) {
	p.lastUsed[slot] = clock
}

func (p *LRUPolicy) OnMiss(frames *FrameTable, clock int64, _ []PageID) Placement {
	if placement, ok := fillEmpty(frames); ok {
		p.lastUsed[placement.Slot] = clock
		return placement
	}

	victim := 0
	candidates := make([]trace.CandidateScore, frames.Capacity())
	for i := range candidates {
		candidates[i] = trace.CandidateScore{Slot: i, Page: int64(frames.Slot(i).Page), Score: p.lastUsed[i]}
		// strict comparison: the first slot with the minimum wins
		if p.lastUsed[i] < p.lastUsed[victim] {
			victim = i
		}
	}
	reason := fmt.Sprintf("least recently used (t=%d)", p.lastUsed[victim])
	p.lastUsed[victim] = clock
	return Placement{Slot: victim, Replace: true, Reason: reason, Candidates: candidates}
}

// LastUsed returns the last-used clock of slot, or -1 if the slot was never filled.
func (p *LRUPolicy) LastUsed(slot int) int64 {
	return p.lastUsed[slot]
}
