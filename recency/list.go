package recency

import (
	"container/list"
	"slices"

	"github.com/venkatsvpr/lrumap/handle"
)

// listSlot is held in each list element.
type listSlot struct {
	self handle.Handle
	ref  handle.Handle
}

// List is a Sequence backed by container/list. Every slot is a separately
// allocated list element; handles index the elems table.
//
// List is not safe for concurrent use.
type List struct {
	order *list.List
	elems []*list.Element
	free  []handle.Handle
}

var _ Sequence = (*List)(nil)

// NewList returns an empty list sized for capacity slots.
func NewList(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}
	return &List{
		order: list.New(),
		elems: make([]*list.Element, 0, capacity),
	}
}

// PushFront creates a slot at the front referencing ref.
func (l *List) PushFront(ref handle.Handle) handle.Handle {
	var h handle.Handle
	if n := len(l.free); n > 0 {
		h = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		h = handle.Handle(len(l.elems))
		l.elems = append(l.elems, nil)
	}
	l.elems[h] = l.order.PushFront(&listSlot{self: h, ref: ref})
	return h
}

// MoveToFront relocates h to the front.
func (l *List) MoveToFront(h handle.Handle) {
	l.order.MoveToFront(l.elems[h])
}

// RelocateTailToFront moves the back slot to the front and returns it.
func (l *List) RelocateTailToFront() handle.Handle {
	e := l.order.Back()
	if e == nil {
		return handle.Nil
	}
	l.order.MoveToFront(e)
	return e.Value.(*listSlot).self
}

// Front returns the most recent slot.
func (l *List) Front() handle.Handle {
	return slotOf(l.order.Front())
}

// Back returns the least recent slot.
func (l *List) Back() handle.Handle {
	return slotOf(l.order.Back())
}

// Next returns the slot after h.
func (l *List) Next(h handle.Handle) handle.Handle {
	return slotOf(l.elems[h].Next())
}

// Prev returns the slot before h.
func (l *List) Prev(h handle.Handle) handle.Handle {
	return slotOf(l.elems[h].Prev())
}

// Ref returns the index reference held by h.
func (l *List) Ref(h handle.Handle) handle.Handle {
	return l.elems[h].Value.(*listSlot).ref
}

// SetRef rebinds h to ref.
func (l *List) SetRef(h handle.Handle, ref handle.Handle) {
	l.elems[h].Value.(*listSlot).ref = ref
}

// Remove unlinks h and frees its handle.
func (l *List) Remove(h handle.Handle) {
	l.order.Remove(l.elems[h])
	l.elems[h] = nil
	l.free = append(l.free, h)
}

// Grow reserves room in the handle table for n slots.
func (l *List) Grow(n int) {
	if n > cap(l.elems) {
		l.elems = slices.Grow(l.elems, n-len(l.elems))
	}
}

// Len returns the number of slots.
func (l *List) Len() int {
	return l.order.Len()
}

// Reset drops every slot.
func (l *List) Reset() {
	l.order.Init()
	clear(l.elems)
	l.elems = l.elems[:0]
	l.free = l.free[:0]
}

func slotOf(e *list.Element) handle.Handle {
	if e == nil {
		return handle.Nil
	}
	return e.Value.(*listSlot).self
}
