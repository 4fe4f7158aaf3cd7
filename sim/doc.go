// Package sim provides the core page-replacement simulation engine for pagesim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - frames.go: the fixed-capacity FrameTable and its Slot model
//   - policy.go: the ReplacementPolicy interface and the fifo/lru/optimal variants
//   - simulator.go: the replay loop that turns a reference string into a step trace
//
// # Architecture
//
// The sim package owns the frame table, the eviction policies and the driver.
// Supporting code lives in sub-packages:
//   - sim/trace/: eviction decision trace recording (pure data)
//   - sim/workload/: reference-string specs and deterministic generation
//   - sim/export/: JSON Lines trace export with optional lz4/snappy compression
//
// # Key Interfaces
//
//   - ReplacementPolicy: OnHit updates recency state, OnMiss returns a Placement
//
// A run is single-threaded. Compare runs several policies over the same
// reference string in parallel; every run owns its own FrameTable and policy.
package sim
