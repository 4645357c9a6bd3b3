package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

// Manager coordinates session storage and transport. It creates anonymous
// sessions on demand and keeps their activity timestamps fresh.
type Manager struct {
	store     Store
	transport Transport
	config    Config
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets a custom session store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport sets a custom token transport.
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithConfig replaces the full configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithTTL overrides the session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// New creates a session Manager. Without options it uses an in-memory store
// and cookie transport configured from DefaultConfig.
func New(opts ...Option) *Manager {
	m := &Manager{config: DefaultConfig()}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	if m.transport == nil {
		m.transport = NewCookieTransport(m.config.CookieName, m.config.SecureCookies)
	}
	return m
}

// Ensure returns the session associated with the request, creating a new one
// when the request carries no valid token. New sessions are written back to
// the transport; existing ones get their activity timestamp refreshed.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err == nil {
		sess, err := m.store.Get(ctx, token)
		if err == nil {
			sess.Touch()
			if err := m.store.UpdateActivity(ctx, token, sess.LastActivityAt); err != nil {
				return nil, err
			}
			return sess, nil
		}
	}
	return m.create(ctx, w)
}

// Get returns the session for the request without creating one.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return m.store.Get(ctx, token)
}

// Destroy removes the request's session from the store and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil // nothing to destroy
	}
	if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return m.transport.ClearToken(w)
}

func (m *Manager) create(ctx context.Context, w http.ResponseWriter) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	sess := NewSession(token, m.config.TTL)
	if err := m.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, token, m.config.TTL); err != nil {
		return nil, err
	}
	return sess, nil
}

// generateToken produces a 256-bit random token in URL-safe base64.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
