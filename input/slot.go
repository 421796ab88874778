// Package input provides DirectionSource implementations: a latest-intent
// slot for asynchronous producers, scripted sequences, and raylib keyboard
// and pointer readers.
package input

import (
	"sync"

	"gesture-snake/game/types"
)

// Slot is a single-value handoff between a producer goroutine and the
// engine. Publish overwrites any intent not yet taken; PollDirection takes
// the pending intent and clears the slot.
type Slot struct {
	mu      sync.Mutex
	dir     types.Direction
	pending bool
}

func NewSlot() *Slot {
	return &Slot{}
}

// Publish stores dir as the latest intent. Stop is ignored.
func (s *Slot) Publish(dir types.Direction) {
	if dir == types.Stop {
		return
	}
	s.mu.Lock()
	s.dir = dir
	s.pending = true
	s.mu.Unlock()
}

func (s *Slot) PollDirection() (types.Direction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending {
		return types.Stop, false
	}
	s.pending = false
	return s.dir, true
}
