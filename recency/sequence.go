// Package recency provides the ordered slot sequences that track which
// cache entry was used most and least recently.
package recency

import "github.com/venkatsvpr/lrumap/handle"

// Sequence is the interface for a recency ordered list of slots. The front
// slot is the most recently used one, the back slot the least recently used.
// Every slot carries a reference back to the index entry it represents.
type Sequence interface {
	// Creates a slot at the front referencing ref and returns its handle.
	PushFront(ref handle.Handle) handle.Handle

	// Moves the slot to the front. No-op if it is already there.
	MoveToFront(h handle.Handle)

	// Moves the back slot to the front and returns it, or handle.Nil when
	// the sequence is empty. With a single slot nothing moves.
	RelocateTailToFront() handle.Handle

	// Returns the front (most recent) slot or handle.Nil.
	Front() handle.Handle

	// Returns the back (least recent) slot or handle.Nil.
	Back() handle.Handle

	// Returns the slot after h, towards the back, or handle.Nil.
	Next(h handle.Handle) handle.Handle

	// Returns the slot before h, towards the front, or handle.Nil.
	Prev(h handle.Handle) handle.Handle

	// Returns the index reference held by the slot.
	Ref(h handle.Handle) handle.Handle

	// Rebinds the slot to another index reference.
	SetRef(h handle.Handle, ref handle.Handle)

	// Unlinks the slot and frees its handle for reuse.
	Remove(h handle.Handle)

	// Returns the number of slots.
	Len() int

	// Reserves room for n slots in total.
	Grow(n int)

	// Drops every slot.
	Reset()
}
