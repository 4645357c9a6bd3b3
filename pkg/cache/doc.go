// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache with a fixed capacity chosen at construction time.
//
// When the cache is full, inserting a new key evicts the entry that has
// gone the longest without being read or written. Both Get and Put count
// as a use of the key; Peek and Snapshot do not.
//
// # Usage
//
// Create a cache with a capacity:
//
//	c, err := cache.New[string, int](100)
//	if err != nil {
//		// capacity was < 1
//	}
//
// Basic operations:
//
//	c.Put("a", 1)            // insert at most-recently-used position
//	v, ok := c.Get("a")      // read and promote
//	v, ok = c.Peek("a")      // read without promoting
//	c.Remove("a")            // explicit removal
//	c.Clear()                // drop everything, keep capacity
//
// Snapshot lists all live entries from most to least recently used without
// touching recency order, which makes it suitable for rendering the cache
// state:
//
//	for _, e := range c.Snapshot() {
//		fmt.Println(e.Key, e.Value)
//	}
//
// # Eviction callbacks
//
// For values that need cleanup when they leave the cache, register a
// callback. It fires for capacity evictions as well as Remove and Clear:
//
//	c.SetEvictCallback(func(key string, f *os.File) {
//		f.Close()
//	})
//
// # Performance
//
// Get, Peek, Put and Remove are O(1) expected time; Snapshot is O(n).
// All operations take an internal mutex and are safe for concurrent use,
// though a single cache instance is typically owned by one logical session.
package cache
