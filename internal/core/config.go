package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size its board on screen and to seed its RNG.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Wall-clock duration of one simulation tick
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 140 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status of a game, reported to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
