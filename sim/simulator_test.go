package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pagesim/sim/internal/testutil"
	"github.com/inference-sim/pagesim/sim/trace"
)

func pages(ids ...int64) []PageID {
	out := make([]PageID, len(ids))
	for i, id := range ids {
		out[i] = PageID(id)
	}
	return out
}

// randomReferences draws n references over a small page universe so that
// full-table faults are frequent.
func randomReferences(rng *rand.Rand, n, universe int) []PageID {
	refs := make([]PageID, n)
	for i := range refs {
		refs[i] = PageID(rng.Intn(universe))
	}
	return refs
}

// TestSimulator_GoldenDataset replays every golden case and compares fault
// counts, hit ratios and the final frame contents.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests, "golden dataset contains no test cases")

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			result, err := Run(PolicyKind(tc.Policy), pages(tc.References...), tc.Frames)
			require.NoError(t, err)

			summary := Summarize(result)
			assert.Equal(t, tc.Metrics.Faults, summary.Faults, "faults")
			assert.Equal(t, tc.Metrics.Hits, summary.Hits, "hits")
			testutil.AssertFloat64Equal(t, "hit_ratio", tc.Metrics.HitRatio, summary.HitRatio, 1e-9)

			last := result.Steps[len(result.Steps)-1].Frames
			require.Len(t, last, len(tc.Metrics.FinalFrames))
			for i, want := range tc.Metrics.FinalFrames {
				assert.Equal(t, Slot{Page: PageID(want), Occupied: true}, last[i], "final slot %d", i)
			}
		})
	}
}

func TestSimulator_FaultAccounting_AllPolicies(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, kind := range AllPolicyKinds() {
		for trial := 0; trial < 20; trial++ {
			refs := randomReferences(rng, 40, 7)
			capacity := 1 + rng.Intn(5)

			result, err := Run(kind, refs, capacity)
			require.NoError(t, err)

			// faults equal flagged steps, and faults + hits cover every reference exactly once
			assert.Equal(t, CountFaults(result.Steps), result.Faults)
			summary := Summarize(result)
			assert.Equal(t, len(refs), summary.Faults+summary.Hits)
			require.Len(t, result.Steps, len(refs))
			for i, st := range result.Steps {
				assert.Equal(t, int64(i), st.Clock)
				assert.Equal(t, refs[i], st.Reference)
			}
		}
	}
}

func TestSimulator_NoDuplicatePagesInFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, kind := range AllPolicyKinds() {
		result, err := Run(kind, randomReferences(rng, 200, 9), 4)
		require.NoError(t, err)
		for _, st := range result.Steps {
			seen := make(map[PageID]bool)
			for _, slot := range st.Frames {
				if !slot.Occupied {
					continue
				}
				require.False(t, seen[slot.Page], "%s t=%d: page %d resident twice", kind, st.Clock, slot.Page)
				seen[slot.Page] = true
			}
		}
	}
}

func TestSimulator_OptimalNeverWorse(t *testing.T) {
	// GIVEN many random reference strings and frame counts
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		refs := randomReferences(rng, 5+rng.Intn(60), 2+rng.Intn(9))
		capacity := 1 + rng.Intn(6)

		// WHEN all three policies replay them
		results, err := Compare(AllPolicyKinds(), refs, capacity)
		require.NoError(t, err)
		fifo, lru, opt := results[0].Faults, results[1].Faults, results[2].Faults

		// THEN optimal faults are a lower bound
		if opt > fifo || opt > lru {
			t.Fatalf("refs=%v frames=%d: optimal=%d fifo=%d lru=%d", refs, capacity, opt, fifo, lru)
		}
	}
}

func TestSimulator_FIFO_RoundRobinReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		capacity := 1 + rng.Intn(5)
		result, err := Run(PolicyFIFO, randomReferences(rng, 80, 8), capacity)
		require.NoError(t, err)

		k := 0
		for _, st := range result.Steps {
			if !st.Evicted {
				continue
			}
			k++
			assert.Equal(t, (k-1)%capacity, st.Slot, "full-table miss #%d", k)
		}
	}
}

func TestSimulator_LRU_VictimHasSmallestStamp(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 30; trial++ {
		capacity := 2 + rng.Intn(4)
		result, err := Run(PolicyLRU, randomReferences(rng, 80, 8), capacity)
		require.NoError(t, err)

		// stamps rebuilt independently from the trace
		stamps := make([]int64, capacity)
		for _, st := range result.Steps {
			if st.Evicted {
				for i, s := range stamps {
					if i < st.Slot {
						assert.Greater(t, s, stamps[st.Slot], "t=%d: lower slot %d must have a newer stamp", st.Clock, i)
					} else {
						assert.GreaterOrEqual(t, s, stamps[st.Slot], "t=%d: slot %d older than victim", st.Clock, i)
					}
				}
			}
			stamps[st.Slot] = st.Clock
		}
	}
}

func TestSimulator_HitDoesNotChangeFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, kind := range AllPolicyKinds() {
		result, err := Run(kind, randomReferences(rng, 100, 5), 3)
		require.NoError(t, err)
		for i := 1; i < len(result.Steps); i++ {
			if !result.Steps[i].Fault {
				assert.Equal(t, result.Steps[i-1].Frames, result.Steps[i].Frames, "%s t=%d", kind, i)
			}
		}
	}
}

func TestSimulator_CapacityOne(t *testing.T) {
	// GIVEN a single frame
	refs := pages(1, 1, 2, 2, 2, 1, 3, 3, 1)

	for _, kind := range AllPolicyKinds() {
		t.Run(string(kind), func(t *testing.T) {
			result, err := Run(kind, refs, 1)
			require.NoError(t, err)

			// THEN every change of page faults and every repeat hits
			for i, st := range result.Steps {
				wantFault := i == 0 || refs[i] != refs[i-1]
				assert.Equal(t, wantFault, st.Fault, "t=%d", i)
			}
			assert.Equal(t, 5, result.Faults)
		})
	}
}

func TestSimulator_EmptyReferences_ValidEmptyRun(t *testing.T) {
	for _, kind := range AllPolicyKinds() {
		result, err := Run(kind, nil, 3)
		require.NoError(t, err)
		assert.Empty(t, result.Steps)
		assert.Equal(t, 0, result.Faults)

		summary := Summarize(result)
		assert.Equal(t, 0, summary.Total)
		assert.Equal(t, 0.0, summary.HitRatio)
	}
}

func TestNewSimulator_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    SimConfig
		target error
	}{
		{"zero capacity", SimConfig{Policy: PolicyFIFO, Capacity: 0}, ErrInvalidCapacity},
		{"negative capacity", SimConfig{Policy: PolicyLRU, Capacity: -2}, ErrInvalidCapacity},
		{"unknown policy", SimConfig{Policy: "clock", Capacity: 3}, ErrUnknownPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSimulator(tt.cfg)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}

	_, err := NewSimulator(SimConfig{Policy: PolicyFIFO, Capacity: 1, TraceLevel: "verbose"})
	assert.Error(t, err)
}

func TestSimulator_Step_ProcessesOneReferenceAtATime(t *testing.T) {
	s, err := NewSimulator(SimConfig{Policy: PolicyLRU, Capacity: 2, References: pages(4, 4, 5)})
	require.NoError(t, err)

	assert.True(t, s.Step())
	assert.Equal(t, int64(1), s.Clock)
	assert.True(t, s.Step())
	assert.Equal(t, 1, s.Faults)
	assert.True(t, s.Step())
	assert.True(t, s.Done())
	assert.False(t, s.Step())
	assert.Len(t, s.Steps, 3)
}

func TestSimulator_DecisionTrace_RecordsEvictions(t *testing.T) {
	// GIVEN optimal with decision tracing over the textbook string
	refs := pages(7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 3)
	s, err := NewSimulator(SimConfig{
		Policy: PolicyOptimal, Capacity: 3, References: refs, TraceLevel: trace.TraceLevelDecisions,
	})
	require.NoError(t, err)

	// WHEN run
	result := s.Run()

	// THEN one record per eviction (faults minus the 3 fills)
	require.NotNil(t, result.Trace)
	require.Len(t, result.Trace.Evictions, result.Faults-3)
	first := result.Trace.Evictions[0]
	assert.Equal(t, int64(3), first.Clock)
	assert.Equal(t, int64(2), first.Reference)
	assert.Equal(t, int64(7), first.Victim)
	assert.Equal(t, 0, first.Slot)
	assert.Equal(t, "optimal", first.Policy)
	assert.Len(t, first.Candidates, 3)

	// AND the step record agrees
	assert.True(t, result.Steps[3].Evicted)
	assert.Equal(t, PageID(7), result.Steps[3].Victim)
}

func TestSimulator_TraceLevelNone_NoTrace(t *testing.T) {
	result, err := Run(PolicyLRU, pages(1, 2, 3, 4), 2)
	require.NoError(t, err)
	assert.Nil(t, result.Trace)
}
