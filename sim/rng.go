package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey identifies a reproducible reference-string generation.
// The same key and spec MUST produce the identical reference string.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

const (
	// SubsystemReferences drives the page drawn at each logical time.
	SubsystemReferences = "references"
	// SubsystemWorkingSet picks the hot pages of a locality pattern.
	SubsystemWorkingSet = "working-set"
)

// PartitionedRNG hands out one deterministically seeded *rand.Rand per subsystem,
// so that adding draws to one subsystem never shifts the sequence of another.
// Each subsystem is seeded with masterSeed XOR fnv1a64(subsystemName).
//
// Not thread-safe.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for the named subsystem, creating it on first use.
// The same name always returns the same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
