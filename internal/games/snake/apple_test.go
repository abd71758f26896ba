package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestAppleNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(999))

	for i := range 200 {
		s := NewSnake(Point{X: 9, Y: 9}, 3, board19)
		s.Advance()
		for j := range 30 + i%40 {
			if j%5 == 0 {
				s.QueueTurn([]Direction{DirLeft, DirDown, DirRight, DirUp}[j/5%4])
			}
			s.Grow()
			s.Advance()
			if s.IsDead() {
				break
			}
		}

		p, err := placeApple(rng, board19, s.Occupies)
		if err != nil {
			t.Fatalf("placeApple() failed: %v", err)
		}
		if s.Occupies(p) {
			t.Fatalf("apple placed on snake at %+v", p)
		}
		if !board19.Contains(p.X, p.Y) {
			t.Fatalf("apple placed off board at %+v", p)
		}
	}
}

func TestAppleFindsLastFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	area := core.NewRect(0, 0, 5, 5)
	free := Point{X: 3, Y: 1}

	p, err := placeApple(rng, area, func(p Point) bool { return p != free })
	if err != nil {
		t.Fatalf("placeApple() failed: %v", err)
	}
	if p != free {
		t.Errorf("apple at %+v, expected the only free cell %+v", p, free)
	}
}

func TestAppleBoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := placeApple(rng, core.NewRect(0, 0, 4, 4), func(Point) bool { return true })
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("err = %v, expected ErrBoardFull", err)
	}

	_, err = placeApple(rng, core.Rect{}, func(Point) bool { return false })
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("empty area: err = %v, expected ErrBoardFull", err)
	}
}

func TestAppleRespectsMargin(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	area := board19.Inset(2)

	for range 500 {
		p, err := placeApple(rng, area, func(Point) bool { return false })
		if err != nil {
			t.Fatalf("placeApple() failed: %v", err)
		}
		if p.X < 2 || p.Y < 2 || p.X > 16 || p.Y > 16 {
			t.Fatalf("apple at %+v inside the margin", p)
		}
	}
}
