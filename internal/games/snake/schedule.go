package snake

import "slices"

// ScheduledKind identifies deferred work queued on the Scheduler.
type ScheduledKind int

const (
	// ScheduledRespawnApple puts a new apple on the board.
	ScheduledRespawnApple ScheduledKind = iota + 1
)

type scheduledEvent struct {
	due  uint64
	kind ScheduledKind
}

// Scheduler holds one-shot events keyed by the tick on which they fire.
// It is polled from Step, so it needs no locking.
type Scheduler struct {
	events []scheduledEvent // Sorted by due, stable for equal ticks
}

// After schedules kind to fire delay ticks after now. A delay below one tick
// fires on the next tick.
func (s *Scheduler) After(now uint64, delay int, kind ScheduledKind) {
	if delay < 1 {
		delay = 1
	}
	ev := scheduledEvent{due: now + uint64(delay), kind: kind}
	i, _ := slices.BinarySearchFunc(s.events, ev.due+1, func(e scheduledEvent, t uint64) int {
		switch {
		case e.due < t:
			return -1
		case e.due > t:
			return 1
		}
		return 0
	})
	s.events = slices.Insert(s.events, i, ev)
}

// Due removes and returns, in firing order, every event due at or before now.
func (s *Scheduler) Due(now uint64) []ScheduledKind {
	n := 0
	for n < len(s.events) && s.events[n].due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]ScheduledKind, n)
	for i := range n {
		out[i] = s.events[i].kind
	}
	s.events = slices.Delete(s.events, 0, n)
	return out
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return len(s.events)
}

// Clear drops every pending event.
func (s *Scheduler) Clear() {
	s.events = nil
}
