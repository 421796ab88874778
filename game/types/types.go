package types

import "math"

// Cell is a grid-aligned position in world units
type Cell struct {
	X, Y int
}

// Add returns the cell translated by the given offset
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Distance returns the euclidean distance between two cells
func (c Cell) Distance(o Cell) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// Bounds is the playable square. Min and Max are inclusive.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// SquareBounds returns bounds centred on the origin
func SquareBounds(halfExtent int) Bounds {
	return Bounds{
		MinX: -halfExtent,
		MinY: -halfExtent,
		MaxX: halfExtent,
		MaxY: halfExtent,
	}
}

// Contains reports whether c lies inside the bounds
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// Width returns the horizontal extent in world units
func (b Bounds) Width() int {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent in world units
func (b Bounds) Height() int {
	return b.MaxY - b.MinY
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Game constants
const (
	GridUnit       = 20  // world units per cell
	HalfExtent     = 290 // playable square is [-290, 290] on both axes
	PickupDistance = 20  // head-to-food distance below which food is eaten
	FoodReward     = 10
)
