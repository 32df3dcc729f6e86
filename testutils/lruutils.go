package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/venkatsvpr/lrumap/internal/scenario"
)

// Cache is the surface the shared tests exercise.
type Cache interface {
	Put(key, value int)
	Get(key int) (*int, bool)
	Peek(key int) (int, bool)
	Contains(key int) bool
	Keys() []int
	Len() int
	Cap() int
	String() string
}

// ScenarioTest plays the basic scripted session against an empty cache of
// scenario.BasicCapacity and fails on the first divergent dump.
func ScenarioTest(t *testing.T, l Cache) {
	t.Helper()

	require.Equal(t, scenario.BasicCapacity, l.Cap())
	err := scenario.Run(l, scenario.Basic(), func(r scenario.Result) {
		require.NoError(t, r.Err)
		require.Equal(t, r.Step.Want, r.Actual, "after %v", r.Step)
	})
	require.NoError(t, err)
}

func BasicTest(t *testing.T, l Cache) {
	t.Helper()
	capacity := l.Cap()

	// add twice as much the capacity to check if eviction occurs
	for i := 0; i < 2*capacity; i++ {
		l.Put(i, i)
		require.LessOrEqual(t, l.Len(), capacity)
	}
	require.Equal(t, capacity, l.Len())

	// cache should contain only the keys from capacity..2*capacity, anything before
	// that should have been evicted
	for i, k := range l.Keys() {
		v, ok := l.Get(k)
		if !ok || *v != k || *v != i+capacity {
			t.Fatalf("bad key: %v", k)
		}
	}

	for i := 0; i < capacity; i++ {
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be evicted")
		}
	}

	// this makes this item the most recently accessed; moved to the front
	l.Get(capacity)

	keys := l.Keys()
	require.Equal(t, capacity, keys[len(keys)-1])
	for i, k := range keys[:len(keys)-1] {
		if k != i+capacity+1 {
			t.Fatalf("out of order key: %v %v", i, k)
		}
	}

	// updating a present key reorders it but keeps the length
	l.Put(capacity+1, -1)
	require.Equal(t, capacity, l.Len())
	v, ok := l.Peek(capacity + 1)
	require.True(t, ok)
	require.Equal(t, -1, v)
}

// EvictionTest checks that a new key at capacity evicts exactly the least
// recently used key.
func EvictionTest(t *testing.T, l Cache) {
	t.Helper()
	capacity := l.Cap()

	for i := 0; i < capacity; i++ {
		l.Put(i, i)
	}

	// touch the oldest, so 1 becomes the victim
	l.Get(0)
	l.Put(capacity, capacity)

	require.False(t, l.Contains(1), "least recently used key not evicted")
	for _, k := range []int{0, capacity} {
		require.True(t, l.Contains(k), "key %d should survive", k)
	}
	require.Equal(t, capacity, l.Len())
}

func ContainsTest(t *testing.T, l Cache) {
	t.Helper()
	capacity := l.Cap()

	for i := 0; i < capacity; i++ {
		l.Put(i, i)
	}

	// contains should not update the recent-ness so this item will remain the oldest
	if !l.Contains(0) {
		t.Errorf("0 should be contained")
	}

	// oldest (0) should have been evicted
	l.Put(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("Contains should not have updated recent-ness of 0")
	}
}

func PeekTest(t *testing.T, l Cache) {
	t.Helper()
	capacity := l.Cap()

	for i := 0; i < capacity; i++ {
		l.Put(i, i)
	}

	before := l.String()
	if v, ok := l.Peek(0); !ok || v != 0 {
		t.Errorf("0 should be set to 0: %v, %v", v, ok)
	}
	require.Equal(t, before, l.String(), "Peek changed the order")

	l.Put(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("should have been removed to make room for the new item")
	}
}

// MissTest checks that a miss reports not found and leaves the order alone.
func MissTest(t *testing.T, l Cache) {
	t.Helper()

	l.Put(1, 10)
	l.Put(2, 20)
	before := l.String()

	v, ok := l.Get(3)
	require.False(t, ok)
	require.Nil(t, v)
	require.Equal(t, before, l.String())
}
