package sim

import "fmt"

// FIFOPolicy replaces pages in insertion order using a circular cursor.
// The cursor advances on every insertion (fill or replace) and never on a hit,
// so once the table is full slots are overwritten strictly round-robin.
type FIFOPolicy struct {
	capacity int
	cursor   int
}

// NewFIFOPolicy creates a FIFOPolicy with the cursor at slot 0.
func NewFIFOPolicy(capacity int) *FIFOPolicy {
	return &FIFOPolicy{capacity: capacity}
}

func (p *FIFOPolicy) Kind() PolicyKind { return PolicyFIFO }

func (p *FIFOPolicy) OnHit(_ int, _ int64) {}

func (p *FIFOPolicy) OnMiss(frames *FrameTable, _ int64, _ []PageID) Placement {
	defer p.advance()
	if placement, ok := fillEmpty(frames); ok {
		return placement
	}
	return Placement{
		Slot:    p.cursor,
		Replace: true,
		Reason:  fmt.Sprintf("oldest insertion (cursor=%d)", p.cursor),
	}
}

// Cursor returns the next slot to be overwritten once the table is full.
func (p *FIFOPolicy) Cursor() int {
	return p.cursor
}

func (p *FIFOPolicy) advance() {
	p.cursor = (p.cursor + 1) % p.capacity
}
