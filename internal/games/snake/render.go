package snake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout rows above and below the board.
const (
	hudHeight    = 2
	footerHeight = 1
)

// Glyphs used on the board.
const (
	bodyChar  = '█'
	appleChar = '●'
	gridChar  = '·'
	crashChar = '✖'
)

var headChars = map[Direction]rune{
	DirRight: '▶',
	DirUp:    '▲',
	DirLeft:  '◀',
	DirDown:  '▼',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.snake == nil {
		return
	}
	g.renderHUD(dst)

	board, ok := g.boardRect(dst)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.phase == PhaseCountdown {
		g.renderOverlay(dst, "Get ready", fmt.Sprintf("%d", g.CountdownDigit()))
		return
	}

	dst.DrawBox(board, core.ColorDarkGreen)
	g.renderGrid(dst, board)
	g.renderSnake(dst, board)
	if g.hasApple {
		g.drawCell(dst, board, g.apple, appleChar, ' ', core.ColorBrightRed)
	}
	g.renderFooter(dst, board)

	if g.phase == PhaseStopped {
		title := "GAME OVER!"
		if g.boardFull {
			title = "BOARD FULL!"
		}
		g.renderOverlay(dst, title, g.highScoreLine(), "Press SPACE to restart")
	}
}

// boardRect returns the on-screen box around the board, centered
// horizontally below the HUD. It reports false if the screen is too small.
func (g *Game) boardRect(dst *core.Screen) (core.Rect, bool) {
	cw := core.Max(1, g.settings.CellWidth)
	w := g.settings.GridW*cw + 2
	h := g.settings.GridH + 2
	if dst.Width() < w || dst.Height() < h+hudHeight+footerHeight {
		return core.Rect{}, false
	}
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h), true
}

// drawCell paints one board cell; the first column gets lead, the rest fill.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, p Point, lead, fill rune, c core.Color) {
	cw := core.Max(1, g.settings.CellWidth)
	x := board.X + 1 + p.X*cw
	y := board.Y + 1 + p.Y
	dst.SetColored(x, y, lead, c)
	for i := 1; i < cw; i++ {
		dst.SetColored(x+i, y, fill, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  High: %d  Length: %d", g.score, g.highScore, g.Length())
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderGrid(dst *core.Screen, board core.Rect) {
	for y := range g.settings.GridH {
		for x := range g.settings.GridW {
			g.drawCell(dst, board, Point{X: x, Y: y}, gridChar, ' ', core.ColorDarkGreen)
		}
	}
}

func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	segments := g.snake.Segments()
	// Tail first so the head wins where segments overlap.
	for i := len(segments) - 1; i > 0; i-- {
		g.drawCell(dst, board, segments[i], bodyChar, bodyChar, core.ColorGreen)
	}

	head := headChars[g.snake.Heading()]
	color := core.ColorBrightGreen
	if g.snake.IsDead() {
		head = crashChar
		color = core.ColorRed
	}
	g.drawCell(dst, board, g.snake.Head(), head, ' ', color)
}

func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	if g.phase != PhaseStopped {
		return
	}
	dst.DrawTextCentered(board.Bottom(), g.highScoreLine(), core.ColorYellow)
}

// highScoreLine is the end-of-game readout, tagged when the record fell.
func (g *Game) highScoreLine() string {
	line := fmt.Sprintf("High: %d", g.highScore)
	if g.newHigh {
		line += " (New!)"
	}
	return line
}

// renderOverlay draws a centered box with one line of text per row.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(l))
	}

	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorBrightWhite
		if i > 0 {
			color = core.ColorYellow
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Score: %d, High: %d\n", g.tick, g.phase, g.score, g.highScore)
	if g.snake != nil {
		head := g.snake.Head()
		fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Head: (%d, %d)\n", g.snake.Len(), g.snake.Heading(), head.X, head.Y)
	}
	fmt.Fprintf(&b, "Apple: (%d, %d) present=%v\n", g.apple.X, g.apple.Y, g.hasApple)
	return b.String()
}
