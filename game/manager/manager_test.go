package manager

import (
	"errors"
	"testing"

	"snake-buffer/game/entity"
	"snake-buffer/game/types"
)

// scriptedRandom replays values, then falls back to a counter.
type scriptedRandom struct {
	values []int
	n      int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.values) > 0 {
		v := r.values[0]
		r.values = r.values[1:]
		return v % n
	}
	r.n++
	return r.n % n
}

func mustSnake(t *testing.T, start types.Point, length uint16, d types.Direction) *entity.Snake {
	t.Helper()
	s, err := entity.NewSnake(start, length, d)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWallCollisionOffsets(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 30, Height: 10})
	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want bool
	}{
		{"up at 1", types.Point{X: 5, Y: 1}, types.Up, true},
		{"up at 2", types.Point{X: 5, Y: 2}, types.Up, false},
		{"left at 1", types.Point{X: 1, Y: 5}, types.Left, true},
		{"left at 2", types.Point{X: 2, Y: 5}, types.Left, false},
		{"right at width-2", types.Point{X: 28, Y: 5}, types.Right, true},
		{"right at width-3", types.Point{X: 27, Y: 5}, types.Right, false},
		{"down at height-1", types.Point{X: 5, Y: 9}, types.Down, true},
		{"down at height-2", types.Point{X: 5, Y: 8}, types.Down, false},
		{"up at row 1 heading down", types.Point{X: 5, Y: 1}, types.Down, false},
		{"right edge heading left", types.Point{X: 28, Y: 5}, types.Left, false},
	}
	for _, tt := range tests {
		if got := cm.IsWallCollision(tt.head, tt.dir); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 30, Height: 10})

	// A hook: head at (5,5), body curls so that moving down hits (5,6).
	body := []types.Point{
		{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6},
	}
	hit, err := cm.IsSelfCollision(body, types.Down)
	if err != nil || !hit {
		t.Errorf("expected bite moving down, got %v %v", hit, err)
	}
	hit, err = cm.IsSelfCollision(body, types.Up)
	if err != nil || hit {
		t.Errorf("expected free move up, got %v %v", hit, err)
	}

	// Next head lands on the tail, which is excluded.
	square := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}}
	hit, err = cm.IsSelfCollision(square, types.Down)
	if err != nil || hit {
		t.Errorf("tail cell should be excluded, got %v %v", hit, err)
	}

	if _, err := cm.IsSelfCollision([]types.Point{{X: 0, Y: 0}}, types.Up); !errors.Is(err, types.ErrUnderflow) {
		t.Errorf("expected underflow, got %v", err)
	}
	hit, err = cm.IsSelfCollision([]types.Point{{X: 3, Y: 3}, {X: 3, Y: 4}}, types.Up)
	if err != nil || hit {
		t.Errorf("short snake cannot bite itself, got %v %v", hit, err)
	}
}

func TestCheckCollisionWallFirst(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 30, Height: 10})
	s := mustSnake(t, types.Point{X: 5, Y: 1}, 3, types.Up)
	hit, err := cm.CheckCollision(s)
	if err != nil || !hit {
		t.Errorf("expected wall hit, got %v %v", hit, err)
	}
}

func TestFoodPlacementAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 6}
	s := mustSnake(t, types.Point{X: 5, Y: 3}, 3, types.Right)

	// First two candidates land on the body: (5,3) then (4,3).
	rnd := &scriptedRandom{values: []int{4, 2, 3, 2, 0, 0}}
	fm := NewFoodManager(grid, rnd)
	if !fm.Place(s) {
		t.Fatal("expected placement")
	}
	food, ok := fm.Food()
	if !ok {
		t.Fatal("food missing after Place")
	}
	if food != (types.Point{X: 1, Y: 1}) {
		t.Errorf("food at %s, want (1,1)", food)
	}

	if fm.Place(s) {
		t.Error("Place should be a no-op while food is present")
	}
	if !fm.IsFoodCollision(food) {
		t.Error("expected food collision at food cell")
	}

	fm.Clear()
	if _, ok := fm.Food(); ok {
		t.Error("food should be absent after Clear")
	}
	if fm.IsFoodCollision(types.Point{}) {
		t.Error("cleared food must not collide")
	}
}

func TestFoodPlacementRange(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 5}
	s := mustSnake(t, types.Point{X: 4, Y: 2}, 3, types.Left)
	fm := NewFoodManager(grid, types.NewRandom(7))
	for i := 0; i < 500; i++ {
		fm.Clear()
		fm.Place(s)
		food, _ := fm.Food()
		if food.X < 1 || food.X > grid.Width-2 || food.Y < 1 || food.Y > grid.Height-2 {
			t.Fatalf("food %s outside [1, dim-2]", food)
		}
		if s.Contains(food) {
			t.Fatalf("food %s placed on snake", food)
		}
	}
}

func TestFoodPlacementSkipsBorderColumn(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 10}
	s := mustSnake(t, types.Point{X: 15, Y: 5}, 3, types.Right)

	// The largest draw on each axis lands on the last playable cell.
	fm := NewFoodManager(grid, &scriptedRandom{values: []int{27, 7}})
	fm.Place(s)
	food, _ := fm.Food()
	if food != (types.Point{X: 28, Y: 8}) {
		t.Errorf("food at %s, want (28,8)", food)
	}

	cm := NewCollisionManager(grid)
	if cm.IsWallCollision(types.Point{X: food.X - 1, Y: food.Y}, types.Right) {
		t.Errorf("head left of %s cannot step onto it", food)
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	if sm.AverageScore() != 0 {
		t.Error("average of no games should be 0")
	}
	if !sm.AddToHistory(GameRecord{Score: 3}) {
		t.Error("first positive score should be a high score")
	}
	if sm.AddToHistory(GameRecord{Score: 1}) {
		t.Error("lower score is not a high score")
	}
	if sm.GetHighScore() != 3 {
		t.Errorf("high score %d, want 3", sm.GetHighScore())
	}
	if got := sm.AverageScore(); got != 2 {
		t.Errorf("average %v, want 2", got)
	}
	h := sm.GetScoreHistory()
	h[0].Score = 99
	if sm.GetScoreHistory()[0].Score != 3 {
		t.Error("history must be returned as a copy")
	}
}
