package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_Offset(t *testing.T) {
	assert.Equal(t, Cell{X: 0, Y: 20}, Up.Offset(20))
	assert.Equal(t, Cell{X: 20, Y: 0}, Right.Offset(20))
	assert.Equal(t, Cell{X: 0, Y: -20}, Down.Offset(20))
	assert.Equal(t, Cell{X: -20, Y: 0}, Left.Offset(20))
	assert.Equal(t, Cell{}, Stop.Offset(20))
}

func TestDirection_Turns(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d.Opposite(), d.TurnRight().TurnRight())
		assert.Equal(t, Cell{}, d.Offset(20).Add(d.Opposite().Offset(20)))
	}
	assert.Equal(t, Stop, Stop.Opposite())
}

func TestParseDirection(t *testing.T) {
	for _, d := range append(Directions[:], Stop) {
		got, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDirection("sideways")
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	b := SquareBounds(HalfExtent)
	assert.Equal(t, 580, b.Width())
	assert.Equal(t, 580, b.Height())
	assert.True(t, b.Contains(Cell{X: 280, Y: -280}))
	assert.False(t, b.Contains(Cell{X: 300, Y: 0}))
	assert.Equal(t, 5.0, Cell{}.Distance(Cell{X: 3, Y: 4}))
}
