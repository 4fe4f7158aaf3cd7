package sim

import (
	"strconv"
	"strings"
)

// PageID identifies a referenced memory page.
type PageID int64

// Slot is one frame of the FrameTable. A slot is either empty or holds exactly one page.
type Slot struct {
	Page     PageID `json:"page"` // valid only when Occupied
	Occupied bool   `json:"occupied"`
}

// String renders the slot the way the reporter prints it: "-" for an empty frame.
func (s Slot) String() string {
	if !s.Occupied {
		return "-"
	}
	return strconv.FormatInt(int64(s.Page), 10)
}

// FrameTable is a fixed-size array of frame slots.
// A page occurs in at most one slot; callers only Set pages that are not resident.
type FrameTable struct {
	slots    []Slot
	occupied int // number of occupied slots (tracked incrementally)
}

// NewFrameTable creates a table of capacity empty slots. capacity must be >= 1.
func NewFrameTable(capacity int) *FrameTable {
	return &FrameTable{slots: make([]Slot, capacity)}
}

// Capacity returns the number of slots.
func (ft *FrameTable) Capacity() int {
	return len(ft.slots)
}

// Contains returns the slot holding page, scanning slots in index order.
func (ft *FrameTable) Contains(page PageID) (int, bool) {
	for i, s := range ft.slots {
		if s.Occupied && s.Page == page {
			return i, true
		}
	}
	return -1, false
}

// FirstEmptySlot returns the lowest-index empty slot.
func (ft *FrameTable) FirstEmptySlot() (int, bool) {
	if ft.IsFull() {
		return -1, false
	}
	for i, s := range ft.slots {
		if !s.Occupied {
			return i, true
		}
	}
	return -1, false
}

// IsFull reports whether every slot is occupied.
func (ft *FrameTable) IsFull() bool {
	return ft.occupied == len(ft.slots)
}

// Set overwrites slot with page.
func (ft *FrameTable) Set(slot int, page PageID) {
	if !ft.slots[slot].Occupied {
		ft.occupied++
	}
	ft.slots[slot] = Slot{Page: page, Occupied: true}
}

// Slot returns the content of slot i.
func (ft *FrameTable) Slot(i int) Slot {
	return ft.slots[i]
}

// Snapshot returns a copy of all slots in slot order.
func (ft *FrameTable) Snapshot() []Slot {
	out := make([]Slot, len(ft.slots))
	copy(out, ft.slots)
	return out
}

func (ft *FrameTable) String() string {
	parts := make([]string, len(ft.slots))
	for i, s := range ft.slots {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
