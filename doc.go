// Package lrumap provides a fixed capacity cache with least recently used
// eviction.
//
// Cache couples two stores. The index (package index) maps keys to entries
// held in an arena, and the recency sequence (package recency) orders slots
// from most to least recently used. Entries and slots refer to each other by
// handle rather than by pointer. Once the cache is full, inserting a new key
// recycles the least recently used slot and entry in place, so steady state
// operation does not allocate.
//
// The stores are interfaces; New uses a hash index, NewOrdered a B-tree
// index, and NewWithStores accepts any pair.
//
// Caches in this package take no locks and are not safe for concurrent use.
package lrumap
