package ai

import (
	"fmt"
	"math"

	"snake-buffer/game"
	"snake-buffer/game/types"

	"golang.org/x/exp/rand"
)

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
}

// Observe reads the sensors the agent learns from.
func Observe(g *game.Game) State {
	head := g.Head()
	var s State
	if food, ok := g.Food(); ok {
		dx := int(food.X) - int(head.X)
		dy := int(food.Y) - int(head.Y)
		s.RelativeFoodDir = [2]int{sign(dx), sign(dy)}
		s.FoodDistance = abs(dx) + abs(dy)
	}
	for _, d := range types.Directions() {
		s.DangerDirs[d] = g.Danger(d)
	}
	return s
}

func (s State) key() string {
	return fmt.Sprintf("%d,%d|%t,%t,%t,%t",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		s.DangerDirs[types.Up], s.DangerDirs[types.Right],
		s.DangerDirs[types.Down], s.DangerDirs[types.Left])
}

type QTable map[string]map[types.Direction]float64

// QLearning is an epsilon-greedy tabular agent that steers a Game through key codes.
type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng  *rand.Rand
	keys game.KeyMap

	lastState  State
	lastAction types.Direction
	lastScore  uint16
	hasLast    bool
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
		keys:         game.DefaultKeyMap(),
	}
}

// NextKey learns from the previous move and returns the key code for the next one.
func (q *QLearning) NextKey(g *game.Game) string {
	state := Observe(g)
	if q.hasLast {
		q.Update(q.lastState, q.lastAction, state, Reward(q.lastState, state, g.Score() > q.lastScore, false), false)
	}

	action := q.GetAction(state)
	q.lastState = state
	q.lastAction = action
	q.lastScore = g.Score()
	q.hasLast = true
	return q.keys.Code(action)
}

// EndGame applies the terminal penalty for the last move and resets the episode.
func (q *QLearning) EndGame(g *game.Game) {
	if q.hasLast {
		state := Observe(g)
		q.Update(q.lastState, q.lastAction, state, Reward(q.lastState, state, false, true), true)
	}
	q.hasLast = false
	q.GamesPlayed++
}

func (q *QLearning) GetAction(state State) types.Direction {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return types.Direction(q.rng.Intn(4))
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) types.Direction {
	values := q.values(state)
	best := types.Up
	bestValue := math.Inf(-1)
	for _, d := range types.Directions() {
		if values[d] > bestValue {
			bestValue = values[d]
			best = d
		}
	}
	return best
}

func (q *QLearning) values(state State) map[types.Direction]float64 {
	k := state.key()
	if _, exists := q.QTable[k]; !exists {
		q.QTable[k] = make(map[types.Direction]float64)
		for _, d := range types.Directions() {
			q.QTable[k][d] = 0
		}
	}
	return q.QTable[k]
}

// Update applies one Q-learning step and returns the new value. A terminal transition
// has no future, so next only contributes when terminal is false.
func (q *QLearning) Update(state State, action types.Direction, next State, reward float64, terminal bool) float64 {
	current := q.values(state)

	maxNextQ := 0.0
	if !terminal {
		maxNextQ = math.Inf(-1)
		for _, value := range q.values(next) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	current[action] += q.LearningRate * (reward + q.Discount*maxNextQ - current[action])
	q.TotalReward += reward
	return current[action]
}

// Reward scores a transition: food and death dominate, otherwise distance to food.
func Reward(prev, next State, ate, died bool) float64 {
	switch {
	case died:
		return -1.0
	case ate:
		return 1.0
	}

	change := next.FoodDistance - prev.FoodDistance
	switch {
	case change < 0:
		return 0.5
	case change > 0:
		return -0.3
	}
	return 0
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
