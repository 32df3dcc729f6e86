package index

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/venkatsvpr/lrumap/handle"
	"pgregory.net/rapid"
)

var indexes = []struct {
	name string
	make func(capacity int) Index[int, string]
}{
	{"hash", func(c int) Index[int, string] { return NewHash[int, string](c) }},
	{"ordered", func(c int) Index[int, string] { return NewOrdered[int, string](c) }},
}

func TestIndexInsertLookup(t *testing.T) {
	for _, tc := range indexes {
		t.Run(tc.name, func(t *testing.T) {
			idx := tc.make(4)
			_, ok := idx.Lookup(1)
			require.False(t, ok)

			h1 := idx.Insert(1, "one", 7)
			h2 := idx.Insert(2, "two", 8)
			require.NotEqual(t, h1, h2)
			require.Equal(t, 2, idx.Len())

			got, ok := idx.Lookup(1)
			require.True(t, ok)
			require.Equal(t, h1, got)
			require.Equal(t, 1, idx.Key(got))
			require.Equal(t, "one", *idx.Value(got))
			require.Equal(t, handle.Handle(7), idx.Slot(got))

			// Values are modifiable in place.
			*idx.Value(h2) = "deux"
			got, _ = idx.Lookup(2)
			require.Equal(t, "deux", *idx.Value(got))
		})
	}
}

func TestIndexReinsert(t *testing.T) {
	for _, tc := range indexes {
		t.Run(tc.name, func(t *testing.T) {
			idx := tc.make(2)
			victim := idx.Insert(10, "ten", 0)
			idx.Insert(20, "twenty", 1)

			h := idx.Reinsert(victim, 30, "thirty", 0)
			require.Equal(t, victim, h, "storage should be reused")
			require.Equal(t, 2, idx.Len())

			_, ok := idx.Lookup(10)
			require.False(t, ok, "victim key still bound")

			got, ok := idx.Lookup(30)
			require.True(t, ok)
			require.Equal(t, h, got)
			require.Equal(t, 30, idx.Key(got))
			require.Equal(t, "thirty", *idx.Value(got))
			require.Equal(t, handle.Handle(0), idx.Slot(got))
		})
	}
}

func TestIndexRemoveAndReset(t *testing.T) {
	for _, tc := range indexes {
		t.Run(tc.name, func(t *testing.T) {
			idx := tc.make(2)
			a := idx.Insert(1, "a", 0)
			idx.Insert(2, "b", 1)

			idx.Remove(a)
			require.Equal(t, 1, idx.Len())
			_, ok := idx.Lookup(1)
			require.False(t, ok)

			c := idx.Insert(3, "c", 0)
			require.Equal(t, a, c, "freed entry should be reused")

			idx.Reset()
			require.Equal(t, 0, idx.Len())
			_, ok = idx.Lookup(2)
			require.False(t, ok)
		})
	}
}

func TestIndexGrow(t *testing.T) {
	for _, tc := range indexes {
		t.Run(tc.name, func(t *testing.T) {
			idx := tc.make(1)
			h := idx.Insert(1, "one", 0)

			// Shrinking is a no-op.
			idx.Grow(0)
			require.Equal(t, "one", *idx.Value(h))

			idx.Grow(32)
			require.Equal(t, "one", *idx.Value(h))

			// Inserts within the reservation keep value pointers put.
			v := idx.Value(h)
			for k := 2; k <= 32; k++ {
				idx.Insert(k, "x", handle.Handle(k))
			}
			*v = "uno"
			got, ok := idx.Lookup(1)
			require.True(t, ok)
			require.Equal(t, "uno", *idx.Value(got))
		})
	}
}

// TestIndexMatchesModel checks both implementations against a plain map
// under random inserts, reinserts and removals.
func TestIndexMatchesModel(t *testing.T) {
	for _, tc := range indexes {
		t.Run(tc.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				idx := tc.make(8)
				model := map[int]string{}

				ops := rapid.IntRange(1, 100).Draw(rt, "ops")
				for i := 0; i < ops; i++ {
					key := rapid.IntRange(0, 15).Draw(rt, "key")
					val := rapid.StringN(0, 4, -1).Draw(rt, "val")
					_, present := model[key]

					switch op := rapid.IntRange(0, 2).Draw(rt, "op"); {
					case op == 0 && !present:
						idx.Insert(key, val, 0)
						model[key] = val

					case op == 1 && !present && len(model) > 0:
						victim := -1
						for k := range model {
							if victim < 0 || k < victim {
								victim = k
							}
						}
						h, ok := idx.Lookup(victim)
						require.True(rt, ok)
						idx.Reinsert(h, key, val, 0)
						delete(model, victim)
						model[key] = val

					case op == 2 && present:
						h, _ := idx.Lookup(key)
						idx.Remove(h)
						delete(model, key)
					}

					require.Equal(rt, len(model), idx.Len())
					for k, v := range model {
						h, ok := idx.Lookup(k)
						require.True(rt, ok, "key %d missing", k)
						require.Equal(rt, k, idx.Key(h))
						require.Equal(rt, v, *idx.Value(h))
					}
				}
			})
		})
	}
}
