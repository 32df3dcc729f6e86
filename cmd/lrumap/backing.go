package main

import (
	"github.com/venkatsvpr/lrumap"
	"github.com/venkatsvpr/lrumap/index"
	"github.com/venkatsvpr/lrumap/recency"
)

// backing selects the stores a cache is built on.
type backing struct {
	Ordered bool `long:"ordered" description:"Use the B-tree index instead of the hash index"`
	List    bool `long:"list" description:"Use the container/list sequence instead of the arena"`
}

// allBackings lists every store combination.
func allBackings() []backing {
	return []backing{
		{}, {Ordered: true}, {List: true}, {Ordered: true, List: true},
	}
}

func (b backing) String() string {
	idx, seq := "hash", "arena"
	if b.Ordered {
		idx = "ordered"
	}
	if b.List {
		seq = "list"
	}
	return idx + "/" + seq
}

func (b backing) newCache(capacity int) (*lrumap.Cache[int, int], error) {
	var (
		idx index.Index[int, int]
		seq recency.Sequence
	)
	if b.Ordered {
		idx = index.NewOrdered[int, int](capacity)
	} else {
		idx = index.NewHash[int, int](capacity)
	}
	if b.List {
		seq = recency.NewList(capacity)
	} else {
		seq = recency.NewArena(capacity)
	}
	return lrumap.NewWithStores(capacity, idx, seq)
}
