// Package visualizer is the interactive LRU cache demo.
//
// Each browser session gets its own Simulator wrapping one fixed-capacity
// cache instance. The Service keys simulators on session ID and keeps them
// in a bounded LRU registry, so the demo itself exercises the cache it
// demonstrates. Handle returns the HTTP surface: a single page plus form
// POST actions (init, put, get, clear, reset) using POST-redirect-GET with
// query-parameter flash feedback.
package visualizer
