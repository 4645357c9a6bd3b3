package visualizer

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lruviz/pkg/cache"
	"github.com/dmitrymomot/lruviz/pkg/logger"
)

// Service owns one Simulator per session. Simulators live in a bounded LRU
// registry so abandoned sessions age out instead of accumulating.
type Service struct {
	sims *cache.Cache[uuid.UUID, *Simulator]
	log  *slog.Logger
}

// NewService creates the visualizer service. The registry capacity comes
// from cfg.SessionLimit.
func NewService(cfg Config, log *slog.Logger) (*Service, error) {
	sims, err := cache.New[uuid.UUID, *Simulator](cfg.SessionLimit)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("visualizer"))

	// Fires on capacity evictions and explicit resets alike.
	sims.SetEvictCallback(func(sessionID uuid.UUID, _ *Simulator) {
		log.Info("simulator dropped from registry", logger.SessionID(sessionID))
	})

	return &Service{sims: sims, log: log}, nil
}

// Init creates a fresh simulator for the session, replacing any existing
// one. Returns cache.ErrInvalidCapacity for capacities below 1.
func (s *Service) Init(sessionID uuid.UUID, capacity int) error {
	sim, err := NewSimulator(capacity)
	if err != nil {
		return err
	}

	s.sims.Put(sessionID, sim)
	s.log.Info("cache initialized",
		logger.SessionID(sessionID),
		logger.Capacity(capacity),
	)
	return nil
}

// Put stores a key/value pair in the session's cache.
func (s *Service) Put(sessionID uuid.UUID, key, value int) error {
	sim, ok := s.sims.Get(sessionID)
	if !ok {
		return ErrNotInitialized
	}

	if evicted := sim.Put(key, value); evicted != nil {
		s.log.Info("entry evicted",
			logger.SessionID(sessionID),
			logger.CacheKey(evicted.Key),
		)
	}
	return nil
}

// Get looks up a key in the session's cache, promoting it on a hit.
func (s *Service) Get(sessionID uuid.UUID, key int) (int, bool, error) {
	sim, ok := s.sims.Get(sessionID)
	if !ok {
		return 0, false, ErrNotInitialized
	}

	value, found := sim.Get(key)
	return value, found, nil
}

// Clear empties the session's cache, keeping its capacity.
func (s *Service) Clear(sessionID uuid.UUID) error {
	sim, ok := s.sims.Get(sessionID)
	if !ok {
		return ErrNotInitialized
	}

	sim.Clear()
	s.log.Info("cache cleared", logger.SessionID(sessionID))
	return nil
}

// Reset discards the session's simulator entirely; the next page render
// shows the init form again.
func (s *Service) Reset(sessionID uuid.UUID) error {
	if _, existed := s.sims.Remove(sessionID); !existed {
		return ErrNotInitialized
	}

	s.log.Info("cache reset", logger.SessionID(sessionID))
	return nil
}

// State returns the render state for the session. The second return value
// reports whether a simulator exists; reading state does not refresh the
// session's position in the registry.
func (s *Service) State(sessionID uuid.UUID) (State, bool) {
	sim, ok := s.sims.Peek(sessionID)
	if !ok {
		return State{}, false
	}
	return sim.State(), true
}
