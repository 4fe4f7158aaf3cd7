// Package trace provides eviction decision recording for page-replacement analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// CandidateScore captures one resident page considered for eviction and the score
// the policy ranked it by. For lru the score is the last-used clock; for optimal it
// is the time of the next reference (Infinite when the page is never referenced again).
type CandidateScore struct {
	Slot     int
	Page     int64
	Score    int64
	Infinite bool
}

// EvictionRecord captures a single replacement decision on a full frame table.
type EvictionRecord struct {
	Clock      int64
	Reference  int64
	Policy     string
	Slot       int   // slot that was overwritten
	Victim     int64 // page that was evicted from Slot
	Reason     string
	Candidates []CandidateScore // in slot order (nil for fifo)
}
