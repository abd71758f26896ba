package snake

import "sync"

// TurnQueue buffers heading requests between key presses and the tick that
// consumes them. Input may arrive from a different goroutine than the tick
// (SSH sessions), so every access is guarded.
//
// The queue starts closed: requests are dropped until the snake has made its
// first step, and again once it is dead.
type TurnQueue struct {
	mu      sync.Mutex
	open    bool
	pending []Direction
}

// Push appends a request. It reports false when the queue is closed.
func (q *TurnQueue) Push(d Direction) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.open {
		return false
	}
	q.pending = append(q.pending, d)
	return true
}

// Drain removes and returns every pending request in arrival order.
func (q *TurnQueue) Drain() []Direction {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending requests.
func (q *TurnQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *TurnQueue) setOpen(open bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.open = open
	if !open {
		q.pending = nil
	}
}
