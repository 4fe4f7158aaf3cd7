package trace

// TraceSummary aggregates statistics from an EvictionTrace.
type TraceSummary struct {
	TotalEvictions       int
	SlotDistribution     map[int]int   // slot index → number of evictions from it
	VictimDistribution   map[int64]int // page → number of times it was evicted
	NeverReusedEvictions int           // evictions whose chosen candidate had an infinite score
}

// Summarize computes aggregate statistics from an EvictionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *EvictionTrace) *TraceSummary {
	summary := &TraceSummary{
		SlotDistribution:   make(map[int]int),
		VictimDistribution: make(map[int64]int),
	}
	if et == nil {
		return summary
	}

	summary.TotalEvictions = len(et.Evictions)
	for _, e := range et.Evictions {
		summary.SlotDistribution[e.Slot]++
		summary.VictimDistribution[e.Victim]++
		for _, c := range e.Candidates {
			if c.Slot == e.Slot && c.Infinite {
				summary.NeverReusedEvictions++
			}
		}
	}
	return summary
}
