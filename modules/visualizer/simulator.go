package visualizer

import (
	"sync"

	"github.com/dmitrymomot/lruviz/pkg/cache"
)

// Simulator wraps one cache instance for interactive demonstration. The
// capacity is fixed for the simulator's lifetime; replacing it requires a
// new instance. It remembers the most recent eviction so the page can show
// which entry was pushed out.
type Simulator struct {
	mu          sync.Mutex
	cache       *cache.Cache[int, int]
	lastEvicted *cache.Entry[int, int]
}

// State is a point-in-time view of a simulator for rendering.
type State struct {
	Capacity    int
	Len         int
	Entries     []cache.Entry[int, int] // MRU to LRU
	LastEvicted *cache.Entry[int, int]
}

// NewSimulator creates a simulator around a fresh cache of the given
// capacity. Returns cache.ErrInvalidCapacity for capacities below 1.
func NewSimulator(capacity int) (*Simulator, error) {
	c, err := cache.New[int, int](capacity)
	if err != nil {
		return nil, err
	}

	s := &Simulator{cache: c}
	c.SetEvictCallback(func(key, value int) {
		s.lastEvicted = &cache.Entry[int, int]{Key: key, Value: value}
	})
	return s, nil
}

// Get looks up a key, promoting it to most recently used on a hit.
func (s *Simulator) Get(key int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

// Put inserts or updates a key. It returns the entry evicted to make room,
// if any.
func (s *Simulator) Put(key, value int) *cache.Entry[int, int] {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.lastEvicted
	s.cache.Put(key, value)
	if s.lastEvicted != prev {
		return s.lastEvicted
	}
	return nil
}

// Clear removes all entries. The capacity is unchanged.
func (s *Simulator) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
	s.lastEvicted = nil
}

// State returns the current snapshot in MRU-to-LRU order.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Capacity:    s.cache.Cap(),
		Len:         s.cache.Len(),
		Entries:     s.cache.Snapshot(),
		LastEvicted: s.lastEvicted,
	}
}
