package snake

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// memScores is an in-memory HighScores.
type memScores struct {
	best    int
	submits int
	err     error
}

func (m *memScores) Best() int { return m.best }

func (m *memScores) Submit(score int) (bool, error) {
	m.submits++
	if score > m.best {
		m.best = score
		return true, m.err
	}
	return false, nil
}

var testCfg = core.RuntimeConfig{
	ScreenW:      80,
	ScreenH:      30,
	TickInterval: 140 * time.Millisecond,
	Seed:         42,
}

// newTestGame returns a reset game with the apple parked in a corner so the
// snake heading up from the center never eats it by accident.
func newTestGame(t *testing.T, scores HighScores) *Game {
	t.Helper()
	g := New(DefaultSettings(), scores, nil)
	g.Reset(testCfg)
	g.apple = Point{X: 0, Y: 18}
	g.hasApple = true
	return g
}

// finishCountdown steps through the countdown and the first running tick.
func finishCountdown(t *testing.T, g *Game) {
	t.Helper()
	for range g.countdownTicks + 1 {
		g.Step()
	}
	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %s after countdown, expected running", g.Phase())
	}
}

func TestCountdownBlocksSimulation(t *testing.T) {
	g := newTestGame(t, nil)

	if g.countdownTicks != 22 {
		t.Fatalf("countdownTicks = %d, expected 22 for 3s at 140ms", g.countdownTicks)
	}
	if g.CountdownDigit() != 3 {
		t.Errorf("CountdownDigit() = %d at start, expected 3", g.CountdownDigit())
	}

	for range g.countdownTicks {
		g.Step()
		if g.Phase() != PhaseCountdown {
			t.Fatalf("phase = %s during countdown", g.Phase())
		}
	}
	if g.Snake().Head() != (Point{X: 9, Y: 9}) {
		t.Errorf("snake moved during countdown: %+v", g.Snake().Head())
	}
	if g.CountdownDigit() != 1 {
		t.Errorf("CountdownDigit() = %d at the end, expected 1", g.CountdownDigit())
	}

	g.Step()
	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %s, expected running", g.Phase())
	}
	if g.Snake().Head() != (Point{X: 9, Y: 8}) {
		t.Errorf("head = %+v after first running tick, expected (9,8)", g.Snake().Head())
	}
}

func TestInputIgnoredDuringCountdown(t *testing.T) {
	g := newTestGame(t, nil)

	g.HandleEvent(TurnRequest{Dir: DirLeft})
	if g.Snake().PendingTurns() != 0 {
		t.Error("turn queued before the snake moved")
	}

	finishCountdown(t, g)
	if g.Snake().Heading() != DirUp {
		t.Errorf("heading = %v, expected up", g.Snake().Heading())
	}

	g.HandleEvent(TurnRequest{Dir: DirLeft})
	g.Step()
	if g.Snake().Heading() != DirLeft {
		t.Errorf("heading = %v, expected left", g.Snake().Heading())
	}
}

func TestAppleEatenGrowsAndRespawns(t *testing.T) {
	g := newTestGame(t, nil)
	finishCountdown(t, g) // head at (9,8), heading up

	g.apple = Point{X: 9, Y: 7}
	g.Step()

	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	if g.Length() != 4 {
		t.Errorf("length = %d, expected 4", g.Length())
	}
	if _, ok := g.Apple(); ok {
		t.Error("apple should be absent until the respawn delay passes")
	}

	if g.respawnTicks != 3 {
		t.Fatalf("respawnTicks = %d, expected 3 for 400ms at 140ms", g.respawnTicks)
	}
	g.Step()
	g.Step()
	if _, ok := g.Apple(); ok {
		t.Error("apple respawned early")
	}
	g.Step()
	apple, ok := g.Apple()
	if !ok {
		t.Fatal("apple should be back after the respawn delay")
	}
	if g.Snake().Occupies(apple) {
		t.Errorf("apple respawned on the snake at %+v", apple)
	}
}

func TestDeathStopsGameAndSavesHighScore(t *testing.T) {
	scores := &memScores{best: 3}
	g := newTestGame(t, scores)
	if g.HighScore() != 3 {
		t.Fatalf("HighScore() = %d, expected stored 3", g.HighScore())
	}
	finishCountdown(t, g)
	g.score = 5

	// Head at (9,8) heading up: eight more steps reach row 0, the ninth leaves.
	for range 9 {
		g.Step()
	}

	if g.Phase() != PhaseStopped {
		t.Fatalf("phase = %s, expected stopped", g.Phase())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
	if scores.best != 5 {
		t.Errorf("persisted high score = %d, expected 5", scores.best)
	}
	if g.HighScore() != 5 || !g.NewHighScore() {
		t.Errorf("HighScore() = %d new=%v, expected 5 new=true", g.HighScore(), g.NewHighScore())
	}

	// Stopped games do not tick.
	snap := g.Snapshot()
	g.Step()
	if g.Snapshot().HeadY != snap.HeadY || g.Score() != 5 {
		t.Error("stopped game changed state")
	}
}

func TestLowScoreKeepsHighScore(t *testing.T) {
	scores := &memScores{best: 10}
	g := newTestGame(t, scores)
	finishCountdown(t, g)
	g.score = 4

	for range 9 {
		g.Step()
	}

	if g.Phase() != PhaseStopped {
		t.Fatalf("phase = %s, expected stopped", g.Phase())
	}
	if scores.best != 10 {
		t.Errorf("persisted high score = %d, expected 10", scores.best)
	}
	if g.NewHighScore() {
		t.Error("score below the record flagged as new")
	}
}

func TestHighScoreWriteFailureStillReported(t *testing.T) {
	scores := &memScores{best: 1, err: errors.New("disk full")}
	g := newTestGame(t, scores)
	finishCountdown(t, g)
	g.score = 2

	for range 9 {
		g.Step()
	}

	if !g.NewHighScore() || g.HighScore() != 2 {
		t.Errorf("HighScore() = %d new=%v, expected 2 new=true", g.HighScore(), g.NewHighScore())
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, &memScores{})
	finishCountdown(t, g)

	// Ignored while running.
	g.HandleEvent(RestartRequest{})
	if g.Phase() != PhaseRunning {
		t.Fatalf("restart honoured mid-game, phase = %s", g.Phase())
	}

	g.score = 7
	for range 9 {
		g.Step()
	}
	if g.Phase() != PhaseStopped {
		t.Fatalf("phase = %s, expected stopped", g.Phase())
	}

	g.HandleEvent(RestartRequest{})

	if g.Phase() != PhaseCountdown {
		t.Errorf("phase = %s after restart, expected countdown", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d after restart, expected 0", g.Score())
	}
	if g.HighScore() != 7 {
		t.Errorf("high score = %d after restart, expected 7 to carry over", g.HighScore())
	}
	if g.Length() != 3 || g.Snake().Head() != (Point{X: 9, Y: 9}) || g.Snake().IsDead() {
		t.Errorf("snake not reset: %s", g.DebugState())
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	settings := DefaultSettings()
	settings.AppleMargin = 10 // Leaves no cell for apples
	g := New(settings, nil, nil)
	g.Reset(testCfg)

	if _, ok := g.Apple(); ok {
		t.Fatal("apple placed with no free area")
	}
	for range g.countdownTicks + 1 {
		g.Step()
	}

	if g.Phase() != PhaseStopped {
		t.Errorf("phase = %s, expected stopped on a full board", g.Phase())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New(DefaultSettings(), nil, nil)
	g1.Reset(testCfg)
	g2 := New(DefaultSettings(), nil, nil)
	g2.Reset(testCfg)

	inputs := map[int]Direction{30: DirLeft, 34: DirDown, 40: DirRight, 47: DirUp}
	for i := range 120 {
		if d, ok := inputs[i]; ok {
			g1.HandleEvent(TurnRequest{Dir: d})
			g2.HandleEvent(TurnRequest{Dir: d})
		}
		g1.Step()
		g2.Step()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestEventForAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Event
		ok     bool
	}{
		{core.ActionUp, TurnRequest{Dir: DirUp}, true},
		{core.ActionLeft, TurnRequest{Dir: DirLeft}, true},
		{core.ActionRestart, RestartRequest{}, true},
		{core.ActionQuit, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			got, ok := EventForAction(tc.action)
			if ok != tc.ok || got != tc.want {
				t.Errorf("EventForAction(%v) = %v, %v", tc.action, got, ok)
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, &memScores{})
	screen := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Get ready") {
		t.Error("countdown overlay missing")
	}

	finishCountdown(t, g)
	g.Render(screen)
	content := screen.String()
	if !strings.Contains(content, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(content, headChars[DirUp]) {
		t.Error("snake head missing")
	}
	if !strings.ContainsRune(content, appleChar) {
		t.Error("apple missing")
	}

	g.score = 5
	for range 9 {
		g.Step()
	}
	g.Render(screen)
	content = screen.String()
	if !strings.Contains(content, "GAME OVER!") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(content, "High: 5 (New!)") {
		t.Error("new high score readout missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(30, 10)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small notice")
	}
}

func TestIdentity(t *testing.T) {
	g := New(DefaultSettings(), nil, nil)
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}
