package manager

import (
	"snake-buffer/game/entity"
	"snake-buffer/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports whether the snake would crash moving one more cell in its
// current direction. The wall test runs first so the self test never sees a head
// that is about to leave the board.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) (bool, error) {
	if cm.IsWallCollision(snake.Head(), snake.Direction()) {
		return true, nil
	}
	return cm.IsSelfCollision(snake.Body(), snake.Direction())
}

// IsWallCollision tests the head before the move. The border sits outside the
// interior, so a crash is reported while the head is still one cell short of it.
func (cm *CollisionManager) IsWallCollision(head types.Point, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return head.Y == 1
	case types.Right:
		return head.X == cm.grid.Width-2
	case types.Down:
		return head.Y == cm.grid.Height-1
	default:
		return head.X == 1
	}
}

// IsSelfCollision checks the next head against the body without its current head and
// tail. The tail is excluded even when the snake is digesting.
func (cm *CollisionManager) IsSelfCollision(body []types.Point, dir types.Direction) (bool, error) {
	next, err := body[0].Transform(dir, 1)
	if err != nil {
		return false, err
	}
	if len(body) < 3 {
		return false, nil
	}
	for _, part := range body[1 : len(body)-1] {
		if part == next {
			return true, nil
		}
	}
	return false, nil
}
