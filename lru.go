package lrumap

import (
	"errors"
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/venkatsvpr/lrumap/handle"
	"github.com/venkatsvpr/lrumap/index"
	"github.com/venkatsvpr/lrumap/recency"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidCapacity is returned when a cache is created or resized
	// with a capacity that is not positive.
	ErrInvalidCapacity = errors.New("must provide a positive capacity")

	// ErrStoreNotEmpty is returned by NewWithStores when either store
	// already holds elements.
	ErrStoreNotEmpty = errors.New("backing store is not empty")
)

// Cache is a fixed size LRU cache. It couples an index, which maps keys to
// entries, with a recency sequence, which orders the entries from most to
// least recently used. Each entry is bound to exactly one slot and each
// slot to exactly one entry.
//
// Cache is not safe for concurrent use. Get reorders entries, so callers
// sharing a cache must hold an exclusive lock around every call.
type Cache[K comparable, V any] struct {
	capacity int
	index    index.Index[K, V]
	seq      recency.Sequence
	onEvict  EvictCallback[K, V]
}

// EvictCallback is used to get a callback when a cache entry is evicted.
type EvictCallback[K comparable, V any] func(key K, value V)

// New creates a cache of the given capacity backed by a hash index and an
// arena sequence.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return NewWithStores[K, V](
		capacity, index.NewHash[K, V](capacity),
		recency.NewArena(capacity),
	)
}

// NewWithEvict is like New but calls onEvict with every entry the cache
// evicts or purges.
func NewWithEvict[K comparable, V any](capacity int,
	onEvict EvictCallback[K, V]) (*Cache[K, V], error) {

	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	c.onEvict = onEvict
	return c, nil
}

// NewOrdered creates a cache of the given capacity whose index keeps keys in
// sorted order.
func NewOrdered[K constraints.Ordered, V any](capacity int) (*Cache[K, V], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return NewWithStores[K, V](
		capacity, index.NewOrdered[K, V](capacity),
		recency.NewArena(capacity),
	)
}

// NewWithStores creates a cache on top of the given index and sequence. Both
// stores must be empty and are owned by the cache afterwards. They are grown
// to hold capacity elements.
func NewWithStores[K comparable, V any](capacity int, idx index.Index[K, V],
	seq recency.Sequence) (*Cache[K, V], error) {

	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	if idx.Len() != 0 || seq.Len() != 0 {
		return nil, fmt.Errorf("%w: index holds %d, sequence holds %d",
			ErrStoreNotEmpty, idx.Len(), seq.Len())
	}

	idx.Grow(capacity)
	seq.Grow(capacity)

	log.Debugf("Created cache with capacity=%d index=%T sequence=%T",
		capacity, idx, seq)

	return &Cache[K, V]{
		capacity: capacity,
		index:    idx,
		seq:      seq,
	}, nil
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return nil
}

// Put adds or updates a value and marks the key as most recently used. When
// the cache is full and the key is new, the least recently used entry is
// evicted to make room.
func (c *Cache[K, V]) Put(key K, value V) {
	// Check for existing item
	if h, ok := c.index.Lookup(key); ok {
		*c.index.Value(h) = value
		c.seq.MoveToFront(c.index.Slot(h))
		return
	}

	if c.index.Len() < c.capacity {
		slot := c.seq.PushFront(handle.Nil)
		c.seq.SetRef(slot, c.index.Insert(key, value, slot))
		return
	}

	c.evictPut(key, value)
}

// evictPut recycles the least recently used slot and entry for key. The
// tail slot moves to the front first, then its entry is rekeyed in place,
// so nothing is freed or allocated.
func (c *Cache[K, V]) evictPut(key K, value V) {
	slot := c.seq.RelocateTailToFront()
	victim := c.seq.Ref(slot)
	if c.onEvict == nil {
		c.seq.SetRef(slot, c.index.Reinsert(victim, key, value, slot))
		return
	}

	oldKey, oldValue := c.index.Key(victim), *c.index.Value(victim)
	c.seq.SetRef(slot, c.index.Reinsert(victim, key, value, slot))
	c.onEvict(oldKey, oldValue)
}

// Get looks up a key and marks it as most recently used. The returned
// pointer may be used to modify the value in place. It refers to the
// entry's storage, so once the entry is evicted it sees whatever entry
// reuses that storage. Purge and Resize invalidate it.
func (c *Cache[K, V]) Get(key K) (*V, bool) {
	h, ok := c.index.Lookup(key)
	if !ok {
		return nil, false
	}
	c.seq.MoveToFront(c.index.Slot(h))
	return c.index.Value(h), true
}

// Contains checks if a key is in the cache, without updating the
// recent-ness.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index.Lookup(key)
	return ok
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	h, ok := c.index.Lookup(key)
	if !ok {
		return value, false
	}
	return *c.index.Value(h), true
}

// Oldest returns the least recently used entry, the next eviction victim.
func (c *Cache[K, V]) Oldest() fn.Option[fn.T2[K, V]] {
	slot := c.seq.Back()
	if !slot.Valid() {
		return fn.None[fn.T2[K, V]]()
	}
	h := c.seq.Ref(slot)
	return fn.Some(fn.NewT2(c.index.Key(h), *c.index.Value(h)))
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	return c.index.Len()
}

// Cap returns the maximum number of items the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Purge is used to completely clear the cache.
func (c *Cache[K, V]) Purge() {
	log.Tracef("Purging %d cache entries", c.index.Len())

	if c.onEvict != nil {
		for slot := c.seq.Back(); slot.Valid(); slot = c.seq.Prev(slot) {
			h := c.seq.Ref(slot)
			c.onEvict(c.index.Key(h), *c.index.Value(h))
		}
	}
	c.index.Reset()
	c.seq.Reset()
}

// Resize changes the cache capacity, evicting the least recently used
// entries that no longer fit. It returns the number evicted.
func (c *Cache[K, V]) Resize(capacity int) (int, error) {
	if err := checkCapacity(capacity); err != nil {
		return 0, err
	}

	evicted := 0
	for c.index.Len() > capacity {
		c.removeOldest()
		evicted++
	}
	if capacity > c.capacity {
		c.index.Grow(capacity)
		c.seq.Grow(capacity)
	}
	c.capacity = capacity

	if evicted > 0 {
		log.Tracef("Resized cache to %d, evicted %d entries", capacity,
			evicted)
	}
	return evicted, nil
}

// removeOldest unbinds the tail slot and its entry from both stores.
func (c *Cache[K, V]) removeOldest() {
	slot := c.seq.Back()
	if !slot.Valid() {
		return
	}
	h := c.seq.Ref(slot)
	if c.onEvict != nil {
		c.onEvict(c.index.Key(h), *c.index.Value(h))
	}
	c.seq.Remove(slot)
	c.index.Remove(h)
}
