package manager

import (
	"gesture-snake/game/entity"
	"gesture-snake/game/types"
)

type CollisionManager struct {
	bounds    types.Bounds
	tolerance float64
}

// NewCollisionManager builds a checker for the given bounds. Two cells closer
// than tolerance are treated as the same cell.
func NewCollisionManager(bounds types.Bounds, tolerance float64) *CollisionManager {
	return &CollisionManager{
		bounds:    bounds,
		tolerance: tolerance,
	}
}

// IsWallCollision checks if a position lies outside the playable square
func (cm *CollisionManager) IsWallCollision(pos types.Cell) bool {
	return !cm.bounds.Contains(pos)
}

// IsFoodCollision checks if the head is close enough to eat the food
func (cm *CollisionManager) IsFoodCollision(head, food types.Cell) bool {
	return cm.overlaps(head, food)
}

// IsSelfCollision checks the head against every placed body segment
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	for _, seg := range snake.Body {
		if seg.Placed && cm.overlaps(snake.Head, seg.Pos) {
			return true
		}
	}
	return false
}

// IsOccupied reports whether pos overlaps the head or any placed segment
func (cm *CollisionManager) IsOccupied(pos types.Cell, snake *entity.Snake) bool {
	if cm.overlaps(pos, snake.Head) {
		return true
	}
	for _, seg := range snake.Body {
		if seg.Placed && cm.overlaps(pos, seg.Pos) {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, snake *entity.Snake) bool {
	return cm.bounds.Contains(pos) && !cm.IsOccupied(pos, snake)
}

func (cm *CollisionManager) overlaps(a, b types.Cell) bool {
	return a.Distance(b) < cm.tolerance
}
