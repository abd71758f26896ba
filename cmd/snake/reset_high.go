package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagResetHistory bool

var resetHighCmd = &cobra.Command{
	Use:   "reset-high",
	Short: "Forget the stored high score",
	Long: `Delete the high score file so the next game starts from 0.
With --history, the score history database is cleared as well.

Examples:
  snake reset-high
  snake reset-high --history`,
	Args: cobra.NoArgs,
	RunE: runResetHigh,
}

func init() {
	resetHighCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also clear the score history")
}

func runResetHigh(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	high, err := highscore.Open(cfg.Storage.HighScoreFile, logger)
	if err != nil {
		return err
	}
	previous := high.Best()
	if err := high.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "High score reset (was %d)\n", previous)

	if !flagResetHistory {
		return nil
	}

	store, err := storage.Open(cfg.Storage.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	defer store.Close()

	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Score history cleared")
	return nil
}
