package recency

import (
	"slices"

	"github.com/venkatsvpr/lrumap/handle"
)

// slot is one node of the arena list. Links are handles into Arena.slots.
type slot struct {
	ref  handle.Handle
	prev handle.Handle
	next handle.Handle
}

// Arena is a doubly linked list whose nodes live in a single slice. Moving a
// slot only rewires links, so handles stay stable for the slot's lifetime and
// a full cache never allocates. Removed slots are kept on a free list.
//
// Arena is not safe for concurrent use.
type Arena struct {
	slots []slot
	head  handle.Handle
	tail  handle.Handle
	free  handle.Handle
	len   int
}

var _ Sequence = (*Arena)(nil)

// NewArena returns an empty arena sized for capacity slots.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	a := &Arena{slots: make([]slot, 0, capacity)}
	a.Reset()
	return a
}

// PushFront creates a slot at the front referencing ref.
func (a *Arena) PushFront(ref handle.Handle) handle.Handle {
	h := a.alloc(ref)
	a.linkFront(h)
	a.len++
	return h
}

// MoveToFront relocates h to the front without reallocating it.
func (a *Arena) MoveToFront(h handle.Handle) {
	if h == a.head {
		return
	}
	a.unlink(h)
	a.linkFront(h)
}

// RelocateTailToFront moves the least recent slot to the front and returns
// it so the caller can rebind it to a new entry.
func (a *Arena) RelocateTailToFront() handle.Handle {
	t := a.tail
	if !t.Valid() {
		return handle.Nil
	}
	a.MoveToFront(t)
	return t
}

// Front returns the most recent slot.
func (a *Arena) Front() handle.Handle {
	return a.head
}

// Back returns the least recent slot.
func (a *Arena) Back() handle.Handle {
	return a.tail
}

// Next returns the slot after h.
func (a *Arena) Next(h handle.Handle) handle.Handle {
	return a.slots[h].next
}

// Prev returns the slot before h.
func (a *Arena) Prev(h handle.Handle) handle.Handle {
	return a.slots[h].prev
}

// Ref returns the index reference held by h.
func (a *Arena) Ref(h handle.Handle) handle.Handle {
	return a.slots[h].ref
}

// SetRef rebinds h to ref.
func (a *Arena) SetRef(h handle.Handle, ref handle.Handle) {
	a.slots[h].ref = ref
}

// Remove unlinks h and puts it on the free list.
func (a *Arena) Remove(h handle.Handle) {
	a.unlink(h)
	a.slots[h] = slot{ref: handle.Nil, prev: handle.Nil, next: a.free}
	a.free = h
	a.len--
}

// Grow reserves storage for n slots.
func (a *Arena) Grow(n int) {
	if n > cap(a.slots) {
		a.slots = slices.Grow(a.slots, n-len(a.slots))
	}
}

// Len returns the number of live slots.
func (a *Arena) Len() int {
	return a.len
}

// Reset drops every slot but keeps the backing storage.
func (a *Arena) Reset() {
	a.slots = a.slots[:0]
	a.head = handle.Nil
	a.tail = handle.Nil
	a.free = handle.Nil
	a.len = 0
}

func (a *Arena) alloc(ref handle.Handle) handle.Handle {
	if h := a.free; h.Valid() {
		a.free = a.slots[h].next
		a.slots[h] = slot{ref: ref, prev: handle.Nil, next: handle.Nil}
		return h
	}
	a.slots = append(a.slots, slot{ref: ref, prev: handle.Nil, next: handle.Nil})
	return handle.Handle(len(a.slots) - 1)
}

// linkFront inserts an unlinked slot at the head.
func (a *Arena) linkFront(h handle.Handle) {
	s := &a.slots[h]
	s.prev = handle.Nil
	s.next = a.head
	if a.head.Valid() {
		a.slots[a.head].prev = h
	} else {
		a.tail = h
	}
	a.head = h
}

// unlink detaches h from its neighbours, fixing head and tail.
func (a *Arena) unlink(h handle.Handle) {
	s := &a.slots[h]
	if s.prev.Valid() {
		a.slots[s.prev].next = s.next
	} else {
		a.head = s.next
	}
	if s.next.Valid() {
		a.slots[s.next].prev = s.prev
	} else {
		a.tail = s.prev
	}
	s.prev = handle.Nil
	s.next = handle.Nil
}
