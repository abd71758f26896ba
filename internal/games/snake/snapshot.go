package snake

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Score         int
	HighScore     int
	NewHighScore  bool
	SnakeLen      int
	HeadX         int
	HeadY         int
	Heading       Direction
	Dead          bool
	HasApple      bool
	AppleX        int
	AppleY        int
	CountdownLeft int
	PendingEvents int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Score:         g.score,
		HighScore:     g.highScore,
		NewHighScore:  g.newHigh,
		HasApple:      g.hasApple,
		AppleX:        g.apple.X,
		AppleY:        g.apple.Y,
		CountdownLeft: g.countdownLeft,
		PendingEvents: g.schedule.Len(),
	}
	if g.snake != nil {
		head := g.snake.Head()
		snap.SnakeLen = g.snake.Len()
		snap.HeadX = head.X
		snap.HeadY = head.Y
		snap.Heading = g.snake.Heading()
		snap.Dead = g.snake.IsDead()
	}
	return snap
}
