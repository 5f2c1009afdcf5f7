package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Gameplay ticks per second (0 = use the game config)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of the game for the platform.
type GameState struct {
	Phase   string        // "title", "playing" or "gameover"
	Score   int           // Displayed score
	Health  int           // Displayed health
	Level   int           // Current level (0 outside of a session)
	Elapsed time.Duration // Time since the session started
}
