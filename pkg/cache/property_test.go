package cache_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/lruviz/pkg/cache"
)

// lruModel is a reference implementation of the cache semantics: a plain
// slice of entries kept in most-recently-used-first order. Every operation
// is O(n), which is fine for a model.
type lruModel struct {
	capacity int
	entries  []cache.Entry[int, int]
}

func (m *lruModel) index(key int) int {
	return slices.IndexFunc(m.entries, func(e cache.Entry[int, int]) bool {
		return e.Key == key
	})
}

func (m *lruModel) get(key int) (int, bool) {
	i := m.index(key)
	if i < 0 {
		return 0, false
	}
	e := m.entries[i]
	m.entries = slices.Delete(m.entries, i, i+1)
	m.entries = slices.Insert(m.entries, 0, e)
	return e.Value, true
}

func (m *lruModel) peek(key int) (int, bool) {
	i := m.index(key)
	if i < 0 {
		return 0, false
	}
	return m.entries[i].Value, true
}

func (m *lruModel) put(key, value int) (int, bool) {
	if i := m.index(key); i >= 0 {
		prev := m.entries[i].Value
		m.entries = slices.Delete(m.entries, i, i+1)
		m.entries = slices.Insert(m.entries, 0, cache.Entry[int, int]{Key: key, Value: value})
		return prev, true
	}

	m.entries = slices.Insert(m.entries, 0, cache.Entry[int, int]{Key: key, Value: value})
	if len(m.entries) > m.capacity {
		// The tail is the least recently used entry; exactly one goes.
		m.entries = m.entries[:m.capacity]
	}
	return 0, false
}

func (m *lruModel) remove(key int) (int, bool) {
	i := m.index(key)
	if i < 0 {
		return 0, false
	}
	v := m.entries[i].Value
	m.entries = slices.Delete(m.entries, i, i+1)
	return v, true
}

func (m *lruModel) clear() {
	m.entries = nil
}

// TestCache_Properties drives random operation sequences against the model
// and checks after every step that the cache and the model agree on the
// full entry listing, which pins down the capacity bound, recency ordering,
// eviction choice, overwrite semantics, read promotion and miss
// transparency all at once.
func TestCache_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 8).Draw(t, "capacity")

		c, err := cache.New[int, int](capacity)
		require.NoError(t, err)

		model := &lruModel{capacity: capacity}

		// A small key domain forces overwrites and evictions.
		key := rapid.IntRange(0, 11)
		value := rapid.IntRange(0, 999)

		t.Repeat(map[string]func(*rapid.T){
			"get": func(t *rapid.T) {
				k := key.Draw(t, "key")
				gotV, gotOK := c.Get(k)
				wantV, wantOK := model.get(k)
				if gotOK != wantOK || gotV != wantV {
					t.Fatalf("get(%d): got (%d, %v), want (%d, %v)",
						k, gotV, gotOK, wantV, wantOK)
				}
			},
			"peek": func(t *rapid.T) {
				k := key.Draw(t, "key")
				gotV, gotOK := c.Peek(k)
				wantV, wantOK := model.peek(k)
				if gotOK != wantOK || gotV != wantV {
					t.Fatalf("peek(%d): got (%d, %v), want (%d, %v)",
						k, gotV, gotOK, wantV, wantOK)
				}
			},
			"put": func(t *rapid.T) {
				k := key.Draw(t, "key")
				v := value.Draw(t, "value")
				gotPrev, gotExisted := c.Put(k, v)
				wantPrev, wantExisted := model.put(k, v)
				if gotExisted != wantExisted || gotPrev != wantPrev {
					t.Fatalf("put(%d, %d): got (%d, %v), want (%d, %v)",
						k, v, gotPrev, gotExisted, wantPrev, wantExisted)
				}
			},
			"remove": func(t *rapid.T) {
				k := key.Draw(t, "key")
				gotV, gotOK := c.Remove(k)
				wantV, wantOK := model.remove(k)
				if gotOK != wantOK || gotV != wantV {
					t.Fatalf("remove(%d): got (%d, %v), want (%d, %v)",
						k, gotV, gotOK, wantV, wantOK)
				}
			},
			"clear": func(t *rapid.T) {
				c.Clear()
				model.clear()
			},
			"clear twice": func(t *rapid.T) {
				c.Clear()
				c.Clear()
				model.clear()
			},
			"": func(t *rapid.T) {
				// Invariants, checked after every action.
				if c.Len() > capacity {
					t.Fatalf("capacity bound violated: len %d > cap %d",
						c.Len(), capacity)
				}
				if c.Cap() != capacity {
					t.Fatalf("capacity changed: got %d, want %d",
						c.Cap(), capacity)
				}

				snap := c.Snapshot()
				if len(snap) != c.Len() {
					t.Fatalf("snapshot length %d != len %d",
						len(snap), c.Len())
				}
				if len(snap) != len(model.entries) {
					t.Fatalf("snapshot length %d != model length %d",
						len(snap), len(model.entries))
				}
				for i, e := range snap {
					if e != model.entries[i] {
						t.Fatalf("snapshot[%d] = %+v, model has %+v "+
							"(snapshot %v, model %v)",
							i, e, model.entries[i], snap, model.entries)
					}
				}

				// Snapshot must itself be side-effect free.
				again := c.Snapshot()
				if !slices.Equal(snap, again) {
					t.Fatalf("repeated snapshots differ: %v then %v",
						snap, again)
				}
			},
		})
	})
}

// TestCache_EvictionProperty checks that inserting into a full cache evicts
// exactly the least recently used key and nothing else.
func TestCache_EvictionProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 6).Draw(t, "capacity")

		c, err := cache.New[int, int](capacity)
		require.NoError(t, err)

		var evicted []int
		c.SetEvictCallback(func(key, _ int) {
			evicted = append(evicted, key)
		})

		// Fill the cache with distinct keys.
		for i := 0; i < capacity; i++ {
			c.Put(i, i)
		}

		// Touch a random subset so the LRU candidate is not just
		// insertion order.
		touches := rapid.SliceOfN(rapid.IntRange(0, capacity-1), 0, 2*capacity).
			Draw(t, "touches")
		for _, k := range touches {
			c.Get(k)
		}

		snap := c.Snapshot()
		lru := snap[len(snap)-1].Key

		// A fresh key displaces exactly the current tail.
		c.Put(capacity, capacity)

		require.Equal(t, []int{lru}, evicted)
		require.Equal(t, capacity, c.Len())

		_, ok := c.Peek(lru)
		require.False(t, ok, "evicted key must be gone")
	})
}
