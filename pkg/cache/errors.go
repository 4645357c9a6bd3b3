package cache

import "errors"

// ErrInvalidCapacity indicates a cache was requested with capacity < 1.
// It is returned before any instance is allocated.
var ErrInvalidCapacity = errors.New("cache.invalid_capacity")
