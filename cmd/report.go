package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/export"
	"github.com/inference-sim/pagesim/sim/trace"
)

// printRunReport writes the step table followed by the summary of one run.
func printRunReport(w io.Writer, result *sim.Result, asJSON bool) error {
	fmt.Fprintf(w, "%s simulation (frames left->right):\n\n", strings.ToUpper(string(result.Policy)))
	sim.PrintTable(w, result)
	fmt.Fprintln(w)

	summary := sim.Summarize(result)
	if asJSON {
		data, err := summary.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	} else {
		sim.PrintSummary(w, summary)
	}

	if result.Trace != nil {
		ts := trace.Summarize(result.Trace)
		fmt.Fprintf(w, "Evictions: %d (victims never referenced again: %d)\n", ts.TotalEvictions, ts.NeverReusedEvictions)
		for _, e := range result.Trace.Evictions {
			fmt.Fprintf(w, "  t=%d ref=%d evicted %d from F%d: %s\n", e.Clock, e.Reference, e.Victim, e.Slot+1, e.Reason)
		}
	}
	return nil
}

// writeTraceFile exports result to path using the named (or inferred) codec.
func writeTraceFile(path, codecName string, result *sim.Result) (err error) {
	codec, err := resolveCodec(codecName, path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing trace file: %w", closeErr)
		}
	}()
	return export.WriteResult(f, codec, result)
}

// printComparison writes one summary line per result and flags any policy
// that beat optimal, which would indicate a broken policy.
func printComparison(w io.Writer, results []*sim.Result) {
	summaries := make([]sim.Summary, len(results))
	optimal := -1
	for i, r := range results {
		summaries[i] = sim.Summarize(r)
		if r.Policy == sim.PolicyOptimal {
			optimal = r.Faults
		}
	}
	sim.PrintSummary(w, summaries...)
	if optimal < 0 {
		return
	}
	for _, s := range summaries {
		if s.Faults < optimal {
			logrus.Warnf("%s faulted less than optimal (%d < %d)", s.Policy, s.Faults, optimal)
		}
	}
}
