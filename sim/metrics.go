// Computes per-run fault and hit statistics for final reporting.

package sim

import (
	"encoding/json"
	"math"
)

// Summary aggregates the statistics of one completed run.
type Summary struct {
	Policy   PolicyKind `json:"policy"`
	Capacity int        `json:"frames"`
	Total    int        `json:"total_references"`
	Faults   int        `json:"faults"`
	Hits     int        `json:"hits"`
	HitRatio float64    `json:"hit_ratio_percent"` // rounded to two decimals
}

// Summarize computes the Summary of a Result. An empty run has a hit ratio of 0.
func Summarize(r *Result) Summary {
	total := len(r.Steps)
	s := Summary{
		Policy:   r.Policy,
		Capacity: r.Capacity,
		Total:    total,
		Faults:   r.Faults,
		Hits:     total - r.Faults,
	}
	if total > 0 {
		s.HitRatio = roundTo2(float64(s.Hits) * 100.0 / float64(total))
	}
	return s
}

// FaultRatio is the percentage of references that faulted, rounded to two decimals.
func (s Summary) FaultRatio() float64 {
	if s.Total == 0 {
		return 0
	}
	return roundTo2(float64(s.Faults) * 100.0 / float64(s.Total))
}

// JSON returns the indented JSON form of the summary.
func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// CountFaults returns the number of steps flagged as faults.
func CountFaults(steps []StepRecord) int {
	n := 0
	for _, st := range steps {
		if st.Fault {
			n++
		}
	}
	return n
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
