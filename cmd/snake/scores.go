package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best recorded games. In a terminal this opens a
scrollable table; with --plain, or when output is piped, the top 10 are
printed as text.

Examples:
  snake scores
  snake scores --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 as plain text")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Database)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height)
	}

	high, err := highscore.Open(cfg.Storage.HighScoreFile, nil)
	if err != nil {
		return err
	}
	return printScores(cmd.OutOrStdout(), store, high.Best())
}

// printScores writes the top 10 games and the stored high score.
func printScores(w io.Writer, store *storage.Store, best int) error {
	scores, err := store.TopScores(10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Snake")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Length", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-12s  %s\n",
			i+1, entry.Score, entry.Length, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
