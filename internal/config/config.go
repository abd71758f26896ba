// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SnakeConfig contains all configuration for the game and its storage.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Snake   SnakeSettings `yaml:"snake"`
	Storage StorageConfig `yaml:"storage"`
}

// GridConfig defines the board.
type GridConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	CellWidth   int `yaml:"cell_width"`
	AppleMargin int `yaml:"apple_margin"`
}

// TimingConfig defines the game clock.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Countdown    time.Duration `yaml:"countdown"`
	RespawnDelay time.Duration `yaml:"respawn_delay"`
}

// SnakeSettings defines the snake at spawn.
type SnakeSettings struct {
	InitialLength int `yaml:"initial_length"`
}

// StorageConfig locates persisted files. A leading ~ means the home directory.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file"`
	Database      string `yaml:"database"`
}

// Validate reports the first setting that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("cell_width must be positive, got %d", c.Grid.CellWidth))
	}
	if c.Grid.AppleMargin < 0 || 2*c.Grid.AppleMargin >= min(c.Grid.Width, c.Grid.Height) {
		errs = append(errs, fmt.Errorf("apple_margin %d leaves no room for apples", c.Grid.AppleMargin))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Timing.Countdown < 0 || c.Timing.RespawnDelay < 0 {
		errs = append(errs, errors.New("countdown and respawn_delay must not be negative"))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial_length must be positive, got %d", c.Snake.InitialLength))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts a preset name; empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// SpeedFactorForPreset returns the multiplier applied to the tick interval.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplySnakePreset scales the tick interval for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	factor := SpeedFactorForPreset(preset)
	cfg.Timing.TickInterval = time.Duration(math.Round(float64(cfg.Timing.TickInterval) * factor))
}
