package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player-controlled creature. It moves one cell per Advance and
// dies on touching its own body or leaving the board. Death is final; a new
// Snake is built on restart.
type Snake struct {
	heading  Direction
	head     Point
	segments []Point // Head at index 0
	turns    TurnQueue
	moved    bool
	dead     bool
	bounds   core.Rect
}

// NewSnake creates a snake of the given length with every segment stacked on
// start, heading up. Length is raised to 1 if smaller.
func NewSnake(start Point, length int, bounds core.Rect) *Snake {
	length = core.Max(1, length)
	segments := make([]Point, length)
	for i := range segments {
		segments[i] = start
	}
	return &Snake{
		heading:  DirUp,
		head:     start,
		segments: segments,
		bounds:   bounds,
	}
}

// QueueTurn records a heading request for the next Advance. Requests made
// before the first step or after death are ignored; the return value reports
// whether the request was kept.
func (s *Snake) QueueTurn(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return s.turns.Push(d)
}

// Advance runs one tick: resolve the heading from queued turns, then move the
// head one cell unless that cell is part of the body or off the board.
func (s *Snake) Advance() {
	if s.dead {
		return
	}

	s.resolveHeading()

	next := s.head.Step(s.heading)
	if !s.moved {
		s.moved = true
		s.turns.setOpen(true)
	}

	if s.Occupies(next) || !s.bounds.Contains(next.X, next.Y) {
		s.dead = true
		s.turns.setOpen(false)
		return
	}

	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = next
	s.head = next
}

// resolveHeading consumes every queued turn and adopts the first one that
// neither repeats nor reverses the current heading. The rest are dropped.
func (s *Snake) resolveHeading() {
	current := s.heading
	for _, d := range s.turns.Drain() {
		if s.heading != current {
			continue
		}
		if d != current && d != current.Opposite() {
			s.heading = d
		}
	}
}

// Grow appends a segment on top of the tail. The new segment separates from
// the old tail on the following Advance.
func (s *Snake) Grow() {
	s.segments = append(s.segments, s.segments[len(s.segments)-1])
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	return slices.Contains(s.segments, p)
}

// IsDead reports whether the snake has crashed.
func (s *Snake) IsDead() bool {
	return s.dead
}

// Head returns the head cell.
func (s *Snake) Head() Point {
	return s.head
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Point {
	return slices.Clone(s.segments)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// PendingTurns returns the number of queued turn requests.
func (s *Snake) PendingTurns() int {
	return s.turns.Len()
}
