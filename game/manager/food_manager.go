package manager

import (
	"gesture-snake/game/entity"
	"gesture-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxSpawnTries bounds the rejection loop; a full board falls back to a scan
const maxSpawnTries = 1000

type FoodManager struct {
	bounds       types.Bounds
	unit         int
	food         types.Cell
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(bounds types.Bounds, unit int, start types.Cell, seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		bounds:       bounds,
		unit:         unit,
		food:         start,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) GetFood() types.Cell {
	return fm.food
}

// SetFood places the food at an explicit cell
func (fm *FoodManager) SetFood(food types.Cell) {
	fm.food = food
}

// Relocate moves the food to a fresh cell that the snake does not occupy
func (fm *FoodManager) Relocate(snake *entity.Snake) types.Cell {
	fm.food = fm.GenerateFood(snake)
	return fm.food
}

// GenerateFood draws a uniformly random grid cell inside the bounds,
// redrawing while it lands on the snake.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Cell {
	minX, maxX := cellRange(fm.bounds.MinX, fm.bounds.MaxX, fm.unit)
	minY, maxY := cellRange(fm.bounds.MinY, fm.bounds.MaxY, fm.unit)

	for i := 0; i < maxSpawnTries; i++ {
		food := types.Cell{
			X: (minX + fm.rng.Intn(maxX-minX+1)) * fm.unit,
			Y: (minY + fm.rng.Intn(maxY-minY+1)) * fm.unit,
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}

	for kx := minX; kx <= maxX; kx++ {
		for ky := minY; ky <= maxY; ky++ {
			food := types.Cell{X: kx * fm.unit, Y: ky * fm.unit}
			if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
				return food
			}
		}
	}
	// Every cell is taken; leave the food where it is.
	return fm.food
}

// cellRange returns the first and last grid index k with lo <= k*unit <= hi
func cellRange(lo, hi, unit int) (int, int) {
	first := floorDiv(lo, unit)
	if first*unit < lo {
		first++
	}
	return first, floorDiv(hi, unit)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
