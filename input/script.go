package input

import "gesture-snake/game/types"

// Script replays a fixed sequence of per-tick samples. A sample of Stop
// means "no intent this tick". Once exhausted it produces nothing, or
// starts over when Loop is set.
type Script struct {
	Steps []types.Direction
	Loop  bool
	pos   int
}

func NewScript(steps ...types.Direction) *Script {
	return &Script{Steps: steps}
}

func (s *Script) PollDirection() (types.Direction, bool) {
	if s.pos >= len(s.Steps) {
		if !s.Loop || len(s.Steps) == 0 {
			return types.Stop, false
		}
		s.pos = 0
	}
	dir := s.Steps[s.pos]
	s.pos++
	return dir, dir != types.Stop
}

// Remaining is the number of samples left before the script runs out
func (s *Script) Remaining() int {
	return len(s.Steps) - s.pos
}
