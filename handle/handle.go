// Package handle defines the opaque references used to link an index entry
// and its recency slot without sharing pointers between the two stores.
package handle

import "strconv"

// Handle is a stable reference into a store's arena. It stays valid until
// the store removes or resets the element it names.
type Handle int32

// Nil is the zero reference; no store ever hands it out for a live element.
const Nil Handle = -1

// Valid reports whether h may name a live element.
func (h Handle) Valid() bool {
	return h >= 0
}

// String renders the handle for debug output.
func (h Handle) String() string {
	if h == Nil {
		return "nil"
	}
	return "#" + strconv.Itoa(int(h))
}
