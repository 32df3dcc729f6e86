package index

import "github.com/venkatsvpr/lrumap/handle"

// Hash is an Index backed by a Go map with average O(1) operations.
//
// Hash is not safe for concurrent use.
type Hash[K comparable, V any] struct {
	entries[K, V]
	keys map[K]handle.Handle
}

var _ Index[string, int] = (*Hash[string, int])(nil)

// NewHash returns an empty hash index sized for capacity entries.
func NewHash[K comparable, V any](capacity int) *Hash[K, V] {
	e := newEntries[K, V](capacity)
	return &Hash[K, V]{
		entries: e,
		keys:    make(map[K]handle.Handle, cap(e.items)),
	}
}

// Lookup finds the entry for key.
func (m *Hash[K, V]) Lookup(key K) (handle.Handle, bool) {
	h, ok := m.keys[key]
	if !ok {
		return handle.Nil, false
	}
	return h, true
}

// Insert adds an entry for key.
func (m *Hash[K, V]) Insert(key K, value V, slot handle.Handle) handle.Handle {
	h := m.alloc(key, value, slot)
	m.keys[key] = h
	return h
}

// Reinsert rekeys the victim entry in place.
func (m *Hash[K, V]) Reinsert(victim handle.Handle, key K, value V, slot handle.Handle) handle.Handle {
	delete(m.keys, m.items[victim].key)
	m.overwrite(victim, key, value, slot)
	m.keys[key] = victim
	return victim
}

// Remove deletes the entry h.
func (m *Hash[K, V]) Remove(h handle.Handle) {
	delete(m.keys, m.items[h].key)
	m.release(h)
}

// Len returns the number of entries.
func (m *Hash[K, V]) Len() int {
	return len(m.keys)
}

// Reset deletes every entry.
func (m *Hash[K, V]) Reset() {
	clear(m.keys)
	m.reset()
}
