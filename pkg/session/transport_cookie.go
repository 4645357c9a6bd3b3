package session

import (
	"net/http"
	"time"
)

// CookieTransport implements Transport using a plain HTTP cookie. The token
// itself is an opaque random value, so no additional encoding is applied.
type CookieTransport struct {
	cookieName string
	secure     bool
}

// NewCookieTransport creates a new cookie-based transport
func NewCookieTransport(cookieName string, secure bool) *CookieTransport {
	return &CookieTransport{
		cookieName: cookieName,
		secure:     secure,
	}
}

// GetToken extracts the session token from the cookie
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(t.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrSessionNotFound
	}
	return cookie.Value, nil
}

// SetToken stores the session token in a cookie
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode, // CSRF protection
	})
	return nil
}

// ClearToken removes the session cookie
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
