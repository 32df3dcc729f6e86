package lrumap_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type pair struct{ k, v int }

// modelLRU is a deliberately naive LRU over a slice, most recent first.
type modelLRU struct {
	capacity int
	items    []pair
}

func (m *modelLRU) find(k int) int {
	for i, p := range m.items {
		if p.k == k {
			return i
		}
	}
	return -1
}

func (m *modelLRU) touch(i int) {
	p := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.items = append([]pair{p}, m.items...)
}

func (m *modelLRU) put(k, v int) {
	if i := m.find(k); i >= 0 {
		m.items[i].v = v
		m.touch(i)
		return
	}
	if len(m.items) == m.capacity {
		m.items = m.items[:len(m.items)-1]
	}
	m.items = append([]pair{{k, v}}, m.items...)
}

func (m *modelLRU) get(k int) (int, bool) {
	i := m.find(k)
	if i < 0 {
		return 0, false
	}
	v := m.items[i].v
	m.touch(i)
	return v, true
}

func (m *modelLRU) String() string {
	parts := make([]string, len(m.items))
	for i, p := range m.items {
		parts[i] = fmt.Sprintf("{%d,%d}", p.k, p.v)
	}
	return strings.Join(parts, ",")
}

// TestCache_MatchesModel checks every backing against the naive model for
// random Put and Get sequences. The dump doubles as the order check.
func TestCache_MatchesModel(t *testing.T) {
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				capacity := rapid.IntRange(1, 8).Draw(rt, "capacity")
				c, err := b.make(capacity)
				require.NoError(rt, err)
				m := &modelLRU{capacity: capacity}

				ops := rapid.IntRange(1, 200).Draw(rt, "ops")
				for i := 0; i < ops; i++ {
					k := rapid.IntRange(0, 2*capacity).Draw(rt, "key")

					if rapid.Bool().Draw(rt, "put") {
						v := rapid.Int().Draw(rt, "value")
						lenBefore, present := c.Len(), c.Contains(k)
						c.Put(k, v)
						m.put(k, v)

						got, ok := c.Peek(k)
						require.True(rt, ok)
						require.Equal(rt, v, got)
						if present {
							require.Equal(rt, lenBefore, c.Len())
						}
					} else {
						before := c.String()
						got, ok := c.Get(k)
						want, wantOK := m.get(k)
						require.Equal(rt, wantOK, ok)
						if ok {
							require.Equal(rt, want, *got)
						} else {
							require.Equal(rt, before, c.String())
						}
					}

					require.LessOrEqual(rt, c.Len(), capacity)
					require.Equal(rt, len(m.items), c.Len())
					require.Equal(rt, m.String(), c.String())
				}
			})
		})
	}
}
