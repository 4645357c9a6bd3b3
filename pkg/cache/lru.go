package cache

import (
	"container/list"
	"sync"
)

// Entry is a single key-value pair as observed by Snapshot.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a thread-safe, fixed-capacity LRU cache.
// When the cache is full, inserting a new key evicts the least recently
// used entry. Capacity is fixed at construction time.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List // front = most recently used, back = least
	mu       sync.Mutex
	onEvict  func(key K, value V) // Callback for cleanup when items are evicted
}

// New creates an empty LRU cache holding at most capacity entries.
// Returns ErrInvalidCapacity if capacity is less than 1.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		eviction: list.New(),
	}, nil
}

// SetEvictCallback sets a callback invoked whenever an entry leaves the
// cache: capacity evictions, Remove, and Clear. Useful for cleanup or for
// surfacing evictions to observers.
func (c *Cache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value and marks its key as most recently used.
// Returns the value and true if found, zero value and false otherwise.
// A miss leaves the cache state untouched.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Peek retrieves a value without updating recency. Reads made through Peek
// do not protect the key from eviction.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Put adds or updates an entry and marks its key as most recently used.
// Inserting a new key into a full cache evicts exactly the least recently
// used entry. Returns the previous value and whether the key existed.
func (c *Cache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		oldValue := entry.value
		entry.value = value
		return oldValue, true
	}

	elem := c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value})
	c.items[key] = elem

	// A single insert overshoots capacity by at most one.
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	var zero V
	return zero, false
}

// Remove deletes an entry by key.
// Returns the removed value and true if it existed, zero value and false otherwise.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Clear removes all entries, leaving capacity unchanged. Idempotent.
// If an evict callback is set, it is called for each dropped entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, elem := range c.items {
			entry := elem.Value.(*lruEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element, c.capacity)
	c.eviction.Init()
}

// Snapshot returns all live entries ordered from most to least recently
// used. It does not count as a use of any key: recency order is unchanged.
// Each call returns a fresh slice safe for the caller to keep.
func (c *Cache[K, V]) Snapshot() []Entry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry[K, V], 0, c.eviction.Len())
	for elem := c.eviction.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*lruEntry[K, V])
		entries = append(entries, Entry[K, V]{Key: entry.key, Value: entry.value})
	}
	return entries
}

// Must be called with lock held.
func (c *Cache[K, V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// Must be called with lock held.
func (c *Cache[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
