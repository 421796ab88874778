package input

import "gesture-snake/game/types"

// Quadrant maps a point in screen space (y grows downward) to a heading:
// upper-right is Up, upper-left is Left, lower-left is Down, lower-right is
// Right. Points on either centre line, or within deadZone of the centre,
// produce nothing.
func Quadrant(x, y, width, height, deadZone float32) (types.Direction, bool) {
	cx, cy := width/2, height/2
	dx, dy := x-cx, y-cy
	if dx == 0 || dy == 0 {
		return types.Stop, false
	}
	if dx*dx+dy*dy < deadZone*deadZone {
		return types.Stop, false
	}
	switch {
	case dx > 0 && dy < 0:
		return types.Up, true
	case dx < 0 && dy < 0:
		return types.Left, true
	case dx < 0 && dy > 0:
		return types.Down, true
	default:
		return types.Right, true
	}
}
