package game

import (
	"time"

	"snake-buffer/game/entity"
	"snake-buffer/game/manager"
	"snake-buffer/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Game owns the board, the snake, the food and the render buffer.
// It is not safe for concurrent use.
type Game struct {
	id     string
	grid   types.Grid
	speed  uint16
	score  uint16
	over   bool
	snake  *entity.Snake
	food   *manager.FoodManager
	crash  *manager.CollisionManager
	buffer []uint16

	rnd    types.Random
	pacer  Pacer
	keys   KeyMap
	logger zerolog.Logger
}

const minBoard = 2 * (types.InitialLength - 1)

type Option func(*Game)

// WithRandom injects the uniform source used for the heading and food.
func WithRandom(rnd types.Random) Option {
	return func(g *Game) { g.rnd = rnd }
}

// WithPacer replaces the sleeping pacer.
func WithPacer(p Pacer) Option {
	return func(g *Game) { g.pacer = p }
}

func WithKeyMap(keys KeyMap) Option {
	return func(g *Game) { g.keys = keys }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// Default builds the 30x10 board at speed 2.
func Default(opts ...Option) (*Game, error) {
	return New(types.DefaultWidth, types.DefaultHeight, types.DefaultSpeed, opts...)
}

// New builds a game on a width x height interior. The snake starts in the middle
// with length 3 and a random heading.
func New(width, height, speed uint16, opts ...Option) (*Game, error) {
	if speed > types.MaxSpeed {
		return nil, errors.Wrapf(types.ErrSpeedRange, "speed %d exceeds %d", speed, types.MaxSpeed)
	}
	// The body trails InitialLength-1 cells behind the centre in any heading.
	if width < minBoard || height < minBoard {
		return nil, errors.Wrapf(types.ErrBoardSize, "%dx%d, need at least %dx%d", width, height, minBoard, minBoard)
	}

	g := &Game{
		id:     uuid.New().String(),
		grid:   types.Grid{Width: width, Height: height},
		speed:  speed,
		pacer:  SleepPacer{},
		keys:   DefaultKeyMap(),
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = types.NewRandom(uint64(time.Now().UnixNano()))
	}
	g.logger = g.logger.With().Str("game", g.id).Logger()

	heading := types.Direction(g.rnd.Intn(4))
	start := types.Point{X: width / 2, Y: height / 2}
	snake, err := entity.NewSnake(start, types.InitialLength, heading)
	if err != nil {
		return nil, errors.Wrap(err, "place initial snake")
	}
	g.snake = snake
	g.food = manager.NewFoodManager(g.grid, g.rnd)
	g.crash = manager.NewCollisionManager(g.grid)

	size := int(width)*int(height) + int(width) + int(height)
	g.buffer = make([]uint16, size)
	for i := range g.buffer {
		g.buffer[i] = ' '
	}

	g.logger.Debug().
		Uint16("width", width).
		Uint16("height", height).
		Uint16("speed", speed).
		Stringer("heading", heading).
		Msg("new game")
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Width() uint16 {
	return g.grid.Width
}

func (g *Game) Height() uint16 {
	return g.grid.Height
}

func (g *Game) Speed() uint16 {
	return g.speed
}

func (g *Game) Score() uint16 {
	return g.score
}

// Over reports whether a collision has ended the game.
func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Head() types.Point {
	return g.snake.Head()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction()
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []types.Point {
	return g.snake.Body()
}

func (g *Game) Food() (types.Point, bool) {
	return g.food.Food()
}

// Danger reports whether moving one cell towards dir from the current head would end
// the game, using the same tests as Tick.
func (g *Game) Danger(dir types.Direction) bool {
	if g.crash.IsWallCollision(g.snake.Head(), dir) {
		return true
	}
	hit, err := g.crash.IsSelfCollision(g.snake.Body(), dir)
	return err != nil || hit
}

// Tick runs one step and reports whether the game has ended. The call blocks for the
// current speed's interval before the move is applied.
func (g *Game) Tick(code string) bool {
	if g.over {
		return true
	}

	if g.food.Place(g.snake) {
		food, _ := g.food.Food()
		g.logger.Debug().Stringer("food", food).Msg("food placed")
	}

	turn, hasTurn := g.keys.Command(code)

	g.pacer.Pause(Interval(g.speed))

	current := g.snake.Direction()
	if hasTurn && turn != current && turn != current.Opposite() {
		g.snake.SetDirection(turn)
		g.logger.Debug().Stringer("from", current).Stringer("to", turn).Msg("turn")
	}

	hit, err := g.crash.CheckCollision(g.snake)
	if err != nil {
		panic(errors.Wrap(err, "collision check"))
	}
	if hit {
		g.over = true
		g.logger.Info().
			Uint16("score", g.score).
			Uint16("speed", g.speed).
			Stringer("head", g.snake.Head()).
			Msg("game over")
		return true
	}

	if err := g.snake.Slither(); err != nil {
		panic(errors.Wrap(err, "slither"))
	}

	if g.food.IsFoodCollision(g.snake.Head()) {
		g.snake.Grow()
		g.food.Clear()
		g.food.Place(g.snake)
		g.score++

		if g.speed < types.MaxSpeed && g.score%2 == 0 {
			g.speed++
		}
		g.logger.Debug().Uint16("score", g.score).Uint16("speed", g.speed).Msg("food eaten")
	}
	return false
}
