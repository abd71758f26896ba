package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left for an apple.
var ErrBoardFull = errors.New("snake: no free cell for apple")

// samplesPerCell bounds rejection sampling before falling back to a scan.
const samplesPerCell = 4

// placeApple picks a uniformly random cell of area not covered by the snake.
// It samples blindly first; a crowded board falls through to an exhaustive
// scan of the free cells.
func placeApple(rng *rand.Rand, area core.Rect, occupied func(Point) bool) (Point, error) {
	cells := area.Area()
	if cells <= 0 {
		return Point{}, ErrBoardFull
	}

	for range samplesPerCell * cells {
		p := Point{X: area.X + rng.Intn(area.W), Y: area.Y + rng.Intn(area.H)}
		if !occupied(p) {
			return p, nil
		}
	}

	var free []Point
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			p := Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
