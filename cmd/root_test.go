package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/export"
	"github.com/inference-sim/pagesim/sim/trace"
)

var hitRatioRefs = []sim.PageID{2, 3, 2, 1, 5, 2, 4, 5, 3, 2, 5, 2}

func TestPrintRunReport_TableAndSummary(t *testing.T) {
	// GIVEN a completed FIFO run
	result, err := sim.Run(sim.PolicyFIFO, hitRatioRefs, 3)
	require.NoError(t, err)

	// WHEN the report is printed
	var buf bytes.Buffer
	require.NoError(t, printRunReport(&buf, result, false))
	output := buf.String()

	// THEN it carries the title, the table and the summary line
	assert.Contains(t, output, "FIFO simulation (frames left->right):")
	assert.Contains(t, output, " Ref |     F1     F2     F3 | Fault")
	assert.Contains(t, output, "FIFO: faults 9, hits 3, hit ratio 25.00%")
	assert.NotContains(t, output, "Evictions:")
}

func TestPrintRunReport_JSONSummary(t *testing.T) {
	result, err := sim.Run(sim.PolicyLRU, hitRatioRefs, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printRunReport(&buf, result, true))

	assert.Contains(t, buf.String(), `"hit_ratio_percent": 41.67`)
	assert.Contains(t, buf.String(), `"faults": 7`)
}

func TestPrintRunReport_DecisionTrace(t *testing.T) {
	s, err := sim.NewSimulator(sim.SimConfig{
		Policy: sim.PolicyOptimal, Capacity: 3, References: hitRatioRefs, TraceLevel: trace.TraceLevelDecisions,
	})
	require.NoError(t, err)
	result := s.Run()

	var buf bytes.Buffer
	require.NoError(t, printRunReport(&buf, result, false))

	// 6 faults, 3 of them fills
	assert.Contains(t, buf.String(), "Evictions: 3 (victims never referenced again: 2)")
	assert.Contains(t, buf.String(), "t=4 ref=5 evicted 1 from F3: never referenced again")
}

func TestPrintComparison_AllPolicies(t *testing.T) {
	results, err := sim.Compare(sim.AllPolicyKinds(), hitRatioRefs, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	printComparison(&buf, results)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "OPTIMAL: faults 6, hits 6, hit ratio 50.00%", lines[2])
}

func TestWriteTraceFile_InfersCodecFromExtension(t *testing.T) {
	result, err := sim.Run(sim.PolicyFIFO, hitRatioRefs, 3)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "trace.jsonl.lz4")

	require.NoError(t, writeTraceFile(path, "", result))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := export.ReadResult(f, export.CodecLZ4)
	require.NoError(t, err)
	assert.Equal(t, result.Steps, got.Steps)
}

func TestWriteTraceFile_BadCodec(t *testing.T) {
	result, err := sim.Run(sim.PolicyFIFO, hitRatioRefs, 3)
	require.NoError(t, err)

	err = writeTraceFile(filepath.Join(t.TempDir(), "t.jsonl"), "zstd", result)

	assert.Error(t, err)
}

func TestPrintScenarios_ListsConfiguredAndBuiltin(t *testing.T) {
	cfg := Config{Scenarios: map[string]Scenario{
		"textbook": {Description: "classic", Frames: 3, References: []int64{7, 0, 1}},
	}}

	var buf bytes.Buffer
	printScenarios(&buf, cfg)

	assert.Contains(t, buf.String(), "textbook")
	assert.Contains(t, buf.String(), "classic")
	assert.Contains(t, buf.String(), "belady-anomaly")
	assert.Contains(t, buf.String(), "pattern=loop")
}
