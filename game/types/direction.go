package types

// Direction is a cardinal heading. Stop is only the pre-movement value.
type Direction int

const (
	Stop Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "stop"
	}
}

// ParseDirection accepts the names returned by String
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "right":
		return Right, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "stop":
		return Stop, true
	}
	return Stop, false
}

// Offset converts a Direction into a one-unit displacement.
// Y grows upward, as on a cartesian plane centred on the origin.
func (d Direction) Offset(unit int) Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: unit}
	case Right:
		return Cell{X: unit, Y: 0}
	case Down:
		return Cell{X: 0, Y: -unit}
	case Left:
		return Cell{X: -unit, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading. Stop has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Stop
	}
}

// TurnLeft returns the direction after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Directions lists the four movement headings in clockwise order
var Directions = [4]Direction{Up, Right, Down, Left}
