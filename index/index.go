// Package index provides the associative stores that map cache keys to
// their values and recency slots.
package index

import (
	"slices"

	"github.com/venkatsvpr/lrumap/handle"
)

// Index is the interface for the key to entry lookup of a cache. Entries live
// in an arena owned by the index and are named by handles that stay valid
// until the entry is removed or the index is reset.
type Index[K comparable, V any] interface {
	// Finds the entry for key without touching recency.
	Lookup(key K) (handle.Handle, bool)

	// Adds an entry for key bound to slot. The key must be absent.
	Insert(key K, value V, slot handle.Handle) handle.Handle

	// Replaces the victim entry with one for key, value and slot in a
	// single step, reusing the victim's storage. The key must be absent.
	Reinsert(victim handle.Handle, key K, value V, slot handle.Handle) handle.Handle

	// Returns the key of an entry.
	Key(h handle.Handle) K

	// Returns a pointer to the value of an entry.
	Value(h handle.Handle) *V

	// Returns the recency slot an entry is bound to.
	Slot(h handle.Handle) handle.Handle

	// Deletes an entry.
	Remove(h handle.Handle)

	// Returns the number of entries.
	Len() int

	// Reserves room for n entries in total, so that value pointers stay
	// put while the index holds at most n entries.
	Grow(n int)

	// Deletes every entry.
	Reset()
}

// entry is used to hold a key and value in the arena. next links free
// entries together.
type entry[K comparable, V any] struct {
	key   K
	value V
	slot  handle.Handle
	next  handle.Handle
}

// entries is the arena shared by the index implementations. Storage is
// reserved up front so that value pointers stay put while the index holds
// at most the reserved number of entries.
type entries[K comparable, V any] struct {
	items []entry[K, V]
	free  handle.Handle
}

func newEntries[K comparable, V any](capacity int) entries[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return entries[K, V]{
		items: make([]entry[K, V], 0, capacity),
		free:  handle.Nil,
	}
}

// Key returns the key of h.
func (e *entries[K, V]) Key(h handle.Handle) K {
	return e.items[h].key
}

// Value returns a pointer to the value of h.
func (e *entries[K, V]) Value(h handle.Handle) *V {
	return &e.items[h].value
}

// Slot returns the recency slot of h.
func (e *entries[K, V]) Slot(h handle.Handle) handle.Handle {
	return e.items[h].slot
}

// Grow reserves arena storage for n entries. It may move existing values.
func (e *entries[K, V]) Grow(n int) {
	if n > cap(e.items) {
		e.items = slices.Grow(e.items, n-len(e.items))
	}
}

func (e *entries[K, V]) alloc(key K, value V, slot handle.Handle) handle.Handle {
	ent := entry[K, V]{key: key, value: value, slot: slot, next: handle.Nil}
	if h := e.free; h.Valid() {
		e.free = e.items[h].next
		e.items[h] = ent
		return h
	}
	e.items = append(e.items, ent)
	return handle.Handle(len(e.items) - 1)
}

// overwrite rebinds an existing entry in place.
func (e *entries[K, V]) overwrite(h handle.Handle, key K, value V, slot handle.Handle) {
	e.items[h] = entry[K, V]{key: key, value: value, slot: slot, next: handle.Nil}
}

// release zeroes h so the arena drops its references and queues h for reuse.
func (e *entries[K, V]) release(h handle.Handle) {
	e.items[h] = entry[K, V]{slot: handle.Nil, next: e.free}
	e.free = h
}

func (e *entries[K, V]) reset() {
	clear(e.items)
	e.items = e.items[:0]
	e.free = handle.Nil
}
