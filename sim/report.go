package sim

import (
	"fmt"
	"io"
	"strings"
)

// PrintTable writes one row per step: the reference, every slot in slot order and the fault flag.
//
//	 Ref |     F1     F2     F3 | Fault
//	-----------------------------------
//	   7 |      7      -      - | Yes
func PrintTable(w io.Writer, r *Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%4s |", "Ref"))
	for i := 1; i <= r.Capacity; i++ {
		sb.WriteString(fmt.Sprintf(" %6s", fmt.Sprintf("F%d", i)))
	}
	sb.WriteString(fmt.Sprintf(" | %s\n", "Fault"))
	sb.WriteString(strings.Repeat("-", 7*r.Capacity+14))
	sb.WriteString("\n")

	for _, st := range r.Steps {
		sb.WriteString(fmt.Sprintf("%4d |", st.Reference))
		for _, slot := range st.Frames {
			sb.WriteString(fmt.Sprintf(" %6s", slot.String()))
		}
		fault := "No"
		if st.Fault {
			fault = "Yes"
		}
		sb.WriteString(fmt.Sprintf(" | %s\n", fault))
	}
	_, _ = io.WriteString(w, sb.String())
}

// PrintSummary writes one line per summary:
//
//	FIFO: faults 9, hits 3, hit ratio 25.00%
func PrintSummary(w io.Writer, summaries ...Summary) {
	for _, s := range summaries {
		_, _ = fmt.Fprintf(w, "%s: faults %d, hits %d, hit ratio %.2f%%\n",
			strings.ToUpper(string(s.Policy)), s.Faults, s.Hits, s.HitRatio)
	}
}
