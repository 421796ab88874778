package entity

import (
	"gesture-snake/game/types"
)

// Segment is one body cell. A segment appended on pickup is not placed
// until the following propagation hands it the former tail's position.
type Segment struct {
	Pos    types.Cell
	Placed bool
}

type Snake struct {
	Head      types.Cell
	Body      []Segment // head-adjacent segment first
	Direction types.Direction
	origin    types.Cell
}

func NewSnake(origin types.Cell) *Snake {
	return &Snake{
		Head:      origin,
		Body:      make([]Segment, 0),
		Direction: types.Stop,
		origin:    origin,
	}
}

// SetDirection applies an intent unless it is Stop or a 180-degree turn.
// It reports whether the heading changed.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.Stop || dir == s.Direction {
		return false
	}
	if s.Direction != types.Stop && dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Propagate shifts every segment into the slot its predecessor held before
// this tick. Walking from the tail keeps each read a pre-move value.
func (s *Snake) Propagate() {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	if len(s.Body) > 0 {
		s.Body[0] = Segment{Pos: s.Head, Placed: true}
	}
}

// Move translates the head one unit along the current direction
func (s *Snake) Move(unit int) {
	s.Head = s.Head.Add(s.Direction.Offset(unit))
}

// Grow appends an inert trailing segment
func (s *Snake) Grow() {
	s.Body = append(s.Body, Segment{})
}

// Reset returns the snake to its origin with an empty body
func (s *Snake) Reset() {
	s.Head = s.origin
	s.Direction = types.Stop
	s.Body = s.Body[:0]
}

// Cells returns the head followed by every placed segment
func (s *Snake) Cells() []types.Cell {
	cells := make([]types.Cell, 0, len(s.Body)+1)
	cells = append(cells, s.Head)
	return append(cells, s.PlacedBody()...)
}

// PlacedBody returns copies of the segment positions that occupy the grid
func (s *Snake) PlacedBody() []types.Cell {
	body := make([]types.Cell, 0, len(s.Body))
	for _, seg := range s.Body {
		if seg.Placed {
			body = append(body, seg.Pos)
		}
	}
	return body
}

// Length is the number of placed body segments, head excluded
func (s *Snake) Length() int {
	n := 0
	for _, seg := range s.Body {
		if seg.Placed {
			n++
		}
	}
	return n
}
