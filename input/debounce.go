package input

import "gesture-snake/game/types"

// Source matches game.DirectionSource without importing the engine
type Source interface {
	PollDirection() (types.Direction, bool)
}

// Debounce forwards an intent only when it differs from the last one it
// forwarded. Classifiers keep emitting the same heading while a pose is
// held; the engine tolerates that, this only trims the repeats.
type Debounce struct {
	src  Source
	last types.Direction
}

func NewDebounce(src Source) *Debounce {
	return &Debounce{src: src}
}

func (d *Debounce) PollDirection() (types.Direction, bool) {
	dir, ok := d.src.PollDirection()
	if !ok || dir == d.last {
		return types.Stop, false
	}
	d.last = dir
	return dir, true
}

// Reset forgets the last forwarded intent, e.g. after a run restarts
func (d *Debounce) Reset() {
	d.last = types.Stop
}
