// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to
// deliver a small API that:
//
//   - Falls back to the default .env file in the working directory.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is parsed
//     only once for the lifetime of the process.
//   - Exposes MustLoad for configuration the process cannot start without.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type SessionConfig struct {
//	    CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
//	    TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
// Then populate it:
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent Load calls for the same type are served from the in-memory
// cache without re-parsing.
//
// # Error Handling
//
// Sentinel errors comparable with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrConfigNotLoaded – the type has not been loaded yet.
//   - ErrNilPointer – nil pointer passed to Load/MustLoad.
package config
