package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gesture-snake/game/types"
)

func TestSnake_SetDirection(t *testing.T) {
	tests := []struct {
		name    string
		current types.Direction
		intent  types.Direction
		want    types.Direction
		changed bool
	}{
		{name: "first move from stop", current: types.Stop, intent: types.Left, want: types.Left, changed: true},
		{name: "stop intent ignored", current: types.Up, intent: types.Stop, want: types.Up},
		{name: "same heading", current: types.Up, intent: types.Up, want: types.Up},
		{name: "reverse up", current: types.Up, intent: types.Down, want: types.Up},
		{name: "reverse right", current: types.Right, intent: types.Left, want: types.Right},
		{name: "quarter turn", current: types.Right, intent: types.Down, want: types.Down, changed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(types.Cell{})
			s.Direction = tt.current
			assert.Equal(t, tt.changed, s.SetDirection(tt.intent))
			assert.Equal(t, tt.want, s.Direction)
		})
	}
}

func TestSnake_PropagateUsesPreMoveSnapshot(t *testing.T) {
	s := NewSnake(types.Cell{})
	s.Head = types.Cell{X: 40, Y: 0}
	s.Body = []Segment{
		{Pos: types.Cell{X: 20, Y: 0}, Placed: true},
		{Pos: types.Cell{X: 0, Y: 0}, Placed: true},
	}
	s.Direction = types.Up

	s.Propagate()
	s.Move(20)

	assert.Equal(t, types.Cell{X: 40, Y: 20}, s.Head)
	assert.Equal(t, []types.Cell{{X: 40, Y: 0}, {X: 20, Y: 0}}, s.PlacedBody())
}

func TestSnake_GrowIsInertUntilPropagate(t *testing.T) {
	s := NewSnake(types.Cell{})
	s.Direction = types.Right
	s.Move(20)
	s.Grow()

	assert.Equal(t, 0, s.Length())
	assert.Len(t, s.Body, 1)
	assert.Equal(t, []types.Cell{{X: 20, Y: 0}}, s.Cells())

	s.Propagate()
	s.Move(20)
	assert.Equal(t, 1, s.Length())
	assert.Equal(t, []types.Cell{{X: 40, Y: 0}, {X: 20, Y: 0}}, s.Cells())
}

func TestSnake_Reset(t *testing.T) {
	s := NewSnake(types.Cell{})
	s.Direction = types.Left
	s.Move(20)
	s.Grow()
	s.Propagate()

	s.Reset()

	assert.Equal(t, types.Cell{}, s.Head)
	assert.Equal(t, types.Stop, s.Direction)
	assert.Empty(t, s.Body)
	assert.Equal(t, 0, s.Length())
}

func TestSnake_MoveWhileStopped(t *testing.T) {
	s := NewSnake(types.Cell{X: 20, Y: 20})
	s.Move(20)
	assert.Equal(t, types.Cell{X: 20, Y: 20}, s.Head)
}
