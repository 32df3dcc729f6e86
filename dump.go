package lrumap

import (
	"fmt"
	"strings"
)

// String renders the cache from most to least recently used as
// "{k1,v1},{k2,v2},...". An empty cache renders as "".
func (c *Cache[K, V]) String() string {
	var b strings.Builder
	for slot := c.seq.Front(); slot.Valid(); slot = c.seq.Next(slot) {
		if slot != c.seq.Front() {
			b.WriteByte(',')
		}
		h := c.seq.Ref(slot)
		fmt.Fprintf(&b, "{%v,%v}", c.index.Key(h), *c.index.Value(h))
	}
	return b.String()
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.index.Len())
	for slot := c.seq.Back(); slot.Valid(); slot = c.seq.Prev(slot) {
		keys = append(keys, c.index.Key(c.seq.Ref(slot)))
	}
	return keys
}
