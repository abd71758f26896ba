package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded YAML and backs it up if that ever fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:       19,
			Height:      19,
			CellWidth:   2,
			AppleMargin: 0,
		},
		Timing: TimingConfig{
			TickInterval: 140 * time.Millisecond,
			Countdown:    3 * time.Second,
			RespawnDelay: 400 * time.Millisecond,
		},
		Snake: SnakeSettings{
			InitialLength: 3,
		},
		Storage: StorageConfig{
			HighScoreFile: "~/.snake/high.txt",
			Database:      "~/.snake/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
