package core

// RuntimeConfig contains configuration passed to a session at start.
// Frontends fill it from CLI flags; the game uses it for deterministic setup.
type RuntimeConfig struct {
	Seed       int64 // RNG seed for deterministic gameplay, 0 means time-based
	Foreground bool  // Start with background processing disabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:       0, // 0 means use current time in platform layer
		Foreground: false,
	}
}
