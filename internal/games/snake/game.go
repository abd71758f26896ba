// Package snake implements the classic Snake arcade game: a segmented
// creature steered around a fixed grid that grows by eating apples and dies
// on hitting itself or the board edge.
package snake

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the lifecycle stage of a game.
type Phase string

const (
	PhaseCountdown Phase = "countdown"
	PhaseRunning   Phase = "running"
	PhaseStopped   Phase = "stopped"
)

// Settings holds the board and timing parameters of a game.
type Settings struct {
	GridW         int           // Board width in cells
	GridH         int           // Board height in cells
	CellWidth     int           // Terminal columns per cell
	AppleMargin   int           // Cells along each edge where apples never spawn
	InitialLength int           // Segments at spawn
	Countdown     time.Duration // Delay before the snake starts moving
	RespawnDelay  time.Duration // Delay between eating an apple and the next one
}

// DefaultSettings returns the classic 19x19 board.
func DefaultSettings() Settings {
	return Settings{
		GridW:         19,
		GridH:         19,
		CellWidth:     2,
		AppleMargin:   0,
		InitialLength: 3,
		Countdown:     3 * time.Second,
		RespawnDelay:  400 * time.Millisecond,
	}
}

// HighScores persists the best score across games.
type HighScores interface {
	// Best returns the stored high score, 0 if none.
	Best() int
	// Submit stores score if it beats the current best and reports whether it
	// did. A failed write still raises the in-memory best.
	Submit(score int) (bool, error)
}

// Game orchestrates one session: countdown, ticking the snake, apples,
// score and the end-of-game high-score check.
type Game struct {
	settings Settings
	scores   HighScores
	logger   *log.Logger

	cfg  core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	phase          Phase
	countdownTicks int
	countdownLeft  int
	respawnTicks   int

	snake    *Snake
	apple    Point
	hasApple bool
	schedule Scheduler

	score     int
	highScore int
	newHigh   bool
	boardFull bool
}

// New creates a game. scores may be nil to disable persistence; logger may be
// nil to discard diagnostics. Call Reset before the first Step.
func New(settings Settings, scores HighScores, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		settings: settings,
		scores:   scores,
		logger:   logger,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	g.phase = PhaseCountdown
	g.countdownTicks = ticksFor(g.settings.Countdown, cfg.TickInterval)
	g.countdownLeft = g.countdownTicks
	g.respawnTicks = core.Max(1, ticksFor(g.settings.RespawnDelay, cfg.TickInterval))

	g.score = 0
	g.newHigh = false
	g.boardFull = false
	g.highScore = 0
	if g.scores != nil {
		g.highScore = g.scores.Best()
	}

	start := Point{X: g.settings.GridW / 2, Y: g.settings.GridH / 2}
	g.snake = NewSnake(start, g.settings.InitialLength, g.bounds())

	g.schedule.Clear()
	g.hasApple = false
	g.placeApple()
}

// ticksFor converts a wall-clock delay into whole ticks, rounding up.
func ticksFor(d, interval time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d) / float64(interval)))
}

// bounds returns the playable board in cell coordinates.
func (g *Game) bounds() core.Rect {
	return core.NewRect(0, 0, g.settings.GridW, g.settings.GridH)
}

// placeApple moves the apple to a free cell. A full board ends the game.
func (g *Game) placeApple() {
	area := g.bounds().Inset(g.settings.AppleMargin)
	p, err := placeApple(g.rng, area, g.snake.Occupies)
	if errors.Is(err, ErrBoardFull) {
		g.logger.Info("no room left for an apple", "length", g.snake.Len())
		g.boardFull = true
		g.hasApple = false
		if g.phase == PhaseRunning {
			g.endGame()
		}
		return
	}
	g.apple = p
	g.hasApple = true
}

// HandleEvent applies player input. Turns are queued on the snake and take
// effect on its next step; a restart is honoured only after game over.
func (g *Game) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case TurnRequest:
		if g.snake != nil {
			g.snake.QueueTurn(ev.Dir)
		}
	case RestartRequest:
		if g.phase == PhaseStopped && g.countdownLeft == 0 {
			g.restart()
		}
	}
}

// restart reinitializes everything with a fresh seed drawn from the current RNG.
func (g *Game) restart() {
	cfg := g.cfg
	cfg.Seed = g.rng.Int63()
	g.Reset(cfg)
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseStopped:
		return core.StepResult{State: g.State()}
	case PhaseCountdown:
		if g.countdownLeft > 0 {
			g.countdownLeft--
			return core.StepResult{State: g.State()}
		}
		g.phase = PhaseRunning
	}

	if g.boardFull {
		g.endGame()
		return core.StepResult{State: g.State()}
	}

	g.snake.Advance()

	if g.hasApple && g.snake.Head() == g.apple {
		g.snake.Grow()
		g.score++
		g.hasApple = false
		g.schedule.After(g.tick, g.respawnTicks, ScheduledRespawnApple)
	}

	if g.snake.IsDead() {
		g.endGame()
		return core.StepResult{State: g.State()}
	}

	// Deferred events fire after the move; a respawned apple is never
	// eaten on the tick it appears.
	for _, kind := range g.schedule.Due(g.tick) {
		if kind == ScheduledRespawnApple {
			g.placeApple()
		}
	}

	return core.StepResult{State: g.State()}
}

// endGame stops the simulation and records a new high score if one was set.
func (g *Game) endGame() {
	g.phase = PhaseStopped
	g.schedule.Clear()

	if g.scores == nil {
		if g.score > g.highScore {
			g.highScore = g.score
			g.newHigh = true
		}
		return
	}

	newHigh, err := g.scores.Submit(g.score)
	if err != nil {
		g.logger.Warn("could not save high score", "score", g.score, "error", err)
	}
	g.newHigh = newHigh
	g.highScore = core.Max(g.scores.Best(), g.highScore)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseStopped,
	}
}

// Phase returns the lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// Snake exposes the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple cell and whether an apple is on the board.
func (g *Game) Apple() (Point, bool) {
	return g.apple, g.hasApple
}

// Score returns the apples eaten this game.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// NewHighScore reports whether the finished game set a new high score.
func (g *Game) NewHighScore() bool {
	return g.newHigh
}

// Length returns the snake's segment count.
func (g *Game) Length() int {
	if g.snake == nil {
		return 0
	}
	return g.snake.Len()
}

// CountdownDigit returns the whole seconds left before the start, rounded
// the way the on-screen countdown shows them (3, 2, 1). It is 0 once running.
func (g *Game) CountdownDigit() int {
	if g.phase != PhaseCountdown {
		return 0
	}
	total := int(math.Ceil(g.settings.Countdown.Seconds()))
	elapsed := time.Duration(g.countdownTicks-g.countdownLeft) * g.cfg.TickInterval
	return core.Max(1, total-int(elapsed/time.Second))
}
