package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lruviz/pkg/session"
)

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	return session.New(
		session.WithCookieName("sid"),
		session.WithTTL(time.Hour),
	)
}

// sessionCookie extracts the session cookie set on a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestManager_EnsureCreatesSession(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	sess, err := m.Ensure(req.Context(), rec, req)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.Token)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, sess.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestManager_EnsureReusesSession(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	first, err := m.Ensure(req.Context(), rec, req)
	require.NoError(t, err)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(sessionCookie(t, rec))
	second, err := m.Ensure(req2.Context(), httptest.NewRecorder(), req2)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Token, second.Token)
}

func TestManager_EnsureReplacesUnknownToken(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "bogus-token"})

	sess, err := m.Ensure(req.Context(), rec, req)
	require.NoError(t, err)
	assert.NotEqual(t, "bogus-token", sess.Token)
	assert.Equal(t, sess.Token, sessionCookie(t, rec).Value)
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.Get(req.Context(), req)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("existing session", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		created, err := m.Ensure(req.Context(), rec, req)
		require.NoError(t, err)

		req2 := httptest.NewRequest(http.MethodGet, "/", nil)
		req2.AddCookie(sessionCookie(t, rec))
		got, err := m.Get(req2.Context(), req2)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.Ensure(req.Context(), rec, req)
	require.NoError(t, err)
	cookie := sessionCookie(t, rec)

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req2.AddCookie(cookie)
	require.NoError(t, m.Destroy(req2.Context(), rec2, req2))

	cleared := sessionCookie(t, rec2)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.AddCookie(cookie)
	_, err = m.Get(req3.Context(), req3)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_DestroyWithoutSession(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	assert.NoError(t, m.Destroy(req.Context(), httptest.NewRecorder(), req))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	var seen *session.Session
	handler := session.Middleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = session.MustFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, seen.Token, sessionCookie(t, rec).Value)
}
