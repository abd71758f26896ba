package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is a heading expressed in degrees, counter-clockwise from east.
type Direction int

const (
	DirRight Direction = 0
	DirUp    Direction = 90
	DirLeft  Direction = 180
	DirDown  Direction = 270
)

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 180) % 360
}

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool {
	switch d {
	case DirRight, DirUp, DirLeft, DirDown:
		return true
	}
	return false
}

// Delta returns the one-cell displacement for the heading.
// The y axis grows downwards, so up is -1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionForAction maps a steering action to its heading.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
