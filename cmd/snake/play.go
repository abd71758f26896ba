package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal. The snake starts moving after a
three second countdown.

Controls:
  Arrows/WASD  - Steer
  Space        - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ticks
  normal - Classic speed
  hard   - Faster ticks

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42
  snake play --menu
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick the difficulty from a menu before playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagMenu {
		preset, ok, err := tui.RunDifficultySelector(width, height)
		if err != nil {
			return fmt.Errorf("error running menu: %w", err)
		}
		if !ok {
			return nil
		}
		flagDifficulty = string(preset)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	high, err := highscore.Open(cfg.Storage.HighScoreFile, logger)
	if err != nil {
		return err
	}

	// Score history is optional; the game still works without it
	store, err := storage.Open(cfg.Storage.Database)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	game := snake.New(settingsFromConfig(cfg), high, logger)
	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.Timing.TickInterval,
		Seed:         flagSeed,
	}

	logger.Info("starting game",
		"difficulty", flagDifficulty,
		"tick", cfg.Timing.TickInterval,
		"high", high.Best(),
	)

	if err := tui.Run(game, store, runtime, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
