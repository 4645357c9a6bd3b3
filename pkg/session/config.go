package session

import "time"

// Config holds session management configuration loaded from the environment.
type Config struct {
	CookieName      string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	SecureCookies   bool          `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns a Config with sane defaults for development.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		TTL:             24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		SecureCookies:   false,
	}
}
