// snake is the classic Snake arcade game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play a game in this terminal
//	snake scores             - Show the recorded score history
//	snake serve              - Start SSH server for remote play
//	snake reset-high         - Forget the stored high score
//
// Global flags:
//
//	--config <path>      - Custom YAML config
//	--difficulty <name>  - easy, normal or hard
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--high-file <path>   - High score file (default: ~/.snake/high.txt)
//	--db <path>          - Score history database (default: ~/.snake/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagHighFile   string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Steer the snake around the board, eat apples to grow and score,
and don't run into the walls or yourself.

Available commands:
  play        - Play a game (default)
  scores      - View the score history
  serve       - Start SSH server for remote play
  reset-high  - Forget the stored high score

Examples:
  snake
  snake play --difficulty hard
  snake scores --plain
  snake serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagHighFile, "high-file", "", "Path to high score file (overrides config)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetHighCmd)
}
