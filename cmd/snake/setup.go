package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

// The high score file is what the game persists through.
var _ snake.HighScores = (*highscore.File)(nil)

// loadConfig reads the config, applies the difficulty preset and the
// storage path flags.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagHighFile != "" {
		cfg.Storage.HighScoreFile = flagHighFile
	}
	if flagDBPath != "" {
		cfg.Storage.Database = flagDBPath
	}
	return cfg, nil
}

// settingsFromConfig converts the file config into game settings.
func settingsFromConfig(cfg config.SnakeConfig) snake.Settings {
	return snake.Settings{
		GridW:         cfg.Grid.Width,
		GridH:         cfg.Grid.Height,
		CellWidth:     cfg.Grid.CellWidth,
		AppleMargin:   cfg.Grid.AppleMargin,
		InitialLength: cfg.Snake.InitialLength,
		Countdown:     cfg.Timing.Countdown,
		RespawnDelay:  cfg.Timing.RespawnDelay,
	}
}

// newLogger builds the process logger. With no --log-file, logs go to
// fallback; the returned closer releases the file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}
