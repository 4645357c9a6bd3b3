// Package session provides anonymous cookie-backed sessions.
//
// A session identifies a browser across requests without any notion of a
// user account. The Manager issues a random token, stores the session in a
// pluggable Store, and moves the token via a Transport (an HTTP cookie by
// default). Expired sessions are swept by the in-memory store's cleanup
// loop.
//
// Typical wiring:
//
//	manager := session.New(session.WithConfig(cfg))
//	router.Use(session.Middleware(manager))
//
// Handlers read the session from the request context:
//
//	sess, ok := session.FromContext(r.Context())
package session
