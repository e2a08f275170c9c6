package manager

import (
	"snake-buffer/game/entity"
	"snake-buffer/game/types"
)

type FoodManager struct {
	grid    types.Grid
	rnd     types.Random
	food    types.Point
	present bool
}

func NewFoodManager(grid types.Grid, rnd types.Random) *FoodManager {
	return &FoodManager{
		grid: grid,
		rnd:  rnd,
	}
}

// Place puts food on a free cell if none is present and reports whether it placed one.
// Candidates are drawn from [1, dim-2] on each axis until one misses the snake. Column
// width-1 shares its slot with the right border and the head stops at width-2, so it is
// never offered.
func (fm *FoodManager) Place(snake *entity.Snake) bool {
	if fm.present {
		return false
	}
	for {
		food := types.Point{
			X: 1 + uint16(fm.rnd.Intn(int(fm.grid.Width)-2)),
			Y: 1 + uint16(fm.rnd.Intn(int(fm.grid.Height)-2)),
		}
		if !snake.Contains(food) {
			fm.food = food
			fm.present = true
			return true
		}
	}
}

func (fm *FoodManager) Food() (types.Point, bool) {
	return fm.food, fm.present
}

// IsFoodCollision reports whether pos sits on the current food.
func (fm *FoodManager) IsFoodCollision(pos types.Point) bool {
	return fm.present && fm.food == pos
}

func (fm *FoodManager) Clear() {
	fm.food = types.Point{}
	fm.present = false
}
