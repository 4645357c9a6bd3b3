package visualizer

// Config holds visualizer module configuration loaded from the environment.
type Config struct {
	// SessionLimit bounds how many per-session cache instances are kept
	// alive at once; the least recently used one is dropped beyond that.
	SessionLimit int `env:"VISUALIZER_SESSION_LIMIT" envDefault:"1024"`
}

// DefaultConfig returns a Config with sane defaults for development.
func DefaultConfig() Config {
	return Config{SessionLimit: 1024}
}
