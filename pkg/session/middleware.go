package session

import "net/http"

// Middleware ensures every request carries a session, creating one when
// missing, and injects it into the request context.
func Middleware(m *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := m.Ensure(r.Context(), w, r)
			if err != nil {
				http.Error(w, "failed to establish session", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
