package visualizer

import "errors"

var (
	// ErrNotInitialized indicates the session has no cache instance yet
	ErrNotInitialized = errors.New("visualizer.not_initialized")
)
