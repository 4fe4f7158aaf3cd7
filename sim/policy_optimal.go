package sim

import (
	"fmt"

	"github.com/inference-sim/pagesim/sim/trace"
)

// OptimalPolicy implements Belady's lookahead algorithm: on a fault with a full
// table it evicts the page whose next reference lies farthest in the future.
// It keeps no state; each decision is a function of the frames and the remaining suffix.
type OptimalPolicy struct{}

func (p *OptimalPolicy) Kind() PolicyKind { return PolicyOptimal }

func (p *OptimalPolicy) OnHit(_ int, _ int64) {}

func (p *OptimalPolicy) OnMiss(frames *FrameTable, clock int64, future []PageID) Placement {
	if placement, ok := fillEmpty(frames); ok {
		return placement
	}

	victim := -1
	var farthest int64 = -1
	candidates := make([]trace.CandidateScore, frames.Capacity())
	for i := range candidates {
		page := frames.Slot(i).Page
		next, found := nextUse(page, clock, future)
		candidates[i] = trace.CandidateScore{Slot: i, Page: int64(page), Score: next, Infinite: !found}
		// strict comparison: the first slot with the maximum distance wins
		if next > farthest {
			farthest = next
			victim = i
		}
	}

	reason := fmt.Sprintf("farthest next use (t=%d)", farthest)
	if candidates[victim].Infinite {
		reason = "never referenced again"
	}
	return Placement{Slot: victim, Replace: true, Reason: reason, Candidates: candidates}
}

// neverUsed stands in for an infinite next-use distance.
const neverUsed = int64(^uint64(0) >> 1)

// nextUse returns the clock of the first reference to page in future, which starts
// at clock+1. A page that never recurs reports neverUsed and found=false.
func nextUse(page PageID, clock int64, future []PageID) (int64, bool) {
	for k, ref := range future {
		if ref == page {
			return clock + 1 + int64(k), true
		}
	}
	return neverUsed, false
}
