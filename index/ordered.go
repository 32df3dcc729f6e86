package index

import (
	"github.com/google/btree"
	"github.com/venkatsvpr/lrumap/handle"
	"golang.org/x/exp/constraints"
)

// btreeDegree is the branching factor of the key tree.
const btreeDegree = 16

type keyed[K constraints.Ordered] struct {
	key K
	h   handle.Handle
}

// Ordered is an Index that keeps its keys in a B-tree with O(log n)
// operations. Keys only need to be ordered, not hashable by a map.
//
// Ordered is not safe for concurrent use.
type Ordered[K constraints.Ordered, V any] struct {
	entries[K, V]
	tree *btree.BTreeG[keyed[K]]
}

var _ Index[int, int] = (*Ordered[int, int])(nil)

// NewOrdered returns an empty ordered index sized for capacity entries.
func NewOrdered[K constraints.Ordered, V any](capacity int) *Ordered[K, V] {
	return &Ordered[K, V]{
		entries: newEntries[K, V](capacity),
		tree: btree.NewG(btreeDegree, func(a, b keyed[K]) bool {
			return a.key < b.key
		}),
	}
}

// Lookup finds the entry for key.
func (o *Ordered[K, V]) Lookup(key K) (handle.Handle, bool) {
	it, ok := o.tree.Get(keyed[K]{key: key})
	if !ok {
		return handle.Nil, false
	}
	return it.h, true
}

// Insert adds an entry for key.
func (o *Ordered[K, V]) Insert(key K, value V, slot handle.Handle) handle.Handle {
	h := o.alloc(key, value, slot)
	o.tree.ReplaceOrInsert(keyed[K]{key: key, h: h})
	return h
}

// Reinsert rekeys the victim entry in place.
func (o *Ordered[K, V]) Reinsert(victim handle.Handle, key K, value V, slot handle.Handle) handle.Handle {
	o.tree.Delete(keyed[K]{key: o.items[victim].key})
	o.overwrite(victim, key, value, slot)
	o.tree.ReplaceOrInsert(keyed[K]{key: key, h: victim})
	return victim
}

// Remove deletes the entry h.
func (o *Ordered[K, V]) Remove(h handle.Handle) {
	o.tree.Delete(keyed[K]{key: o.items[h].key})
	o.release(h)
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	return o.tree.Len()
}

// Reset deletes every entry.
func (o *Ordered[K, V]) Reset() {
	o.tree.Clear(true)
	o.reset()
}
