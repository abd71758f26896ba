package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Event is player input delivered to the game between ticks.
type Event interface {
	snakeEvent()
}

// TurnRequest asks the snake to change heading on its next step.
type TurnRequest struct {
	Dir Direction
}

func (TurnRequest) snakeEvent() {}

// RestartRequest asks for a fresh game once the current one is over.
type RestartRequest struct{}

func (RestartRequest) snakeEvent() {}

// EventForAction converts a platform action into a game event.
// Actions the game does not handle return false.
func EventForAction(a core.Action) (Event, bool) {
	if d, ok := DirectionForAction(a); ok {
		return TurnRequest{Dir: d}, true
	}
	if a == core.ActionRestart {
		return RestartRequest{}, true
	}
	return nil, false
}
