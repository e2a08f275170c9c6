package types

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Grid represents the board interior dimensions. The border is drawn outside of it.
type Grid struct {
	Width  uint16
	Height uint16
}

// Game constants
const (
	MinInterval = 200 // Milliseconds between ticks at MaxSpeed
	MaxInterval = 700 // Milliseconds between ticks at speed 0
	MaxSpeed    = 20

	DefaultWidth  = 30
	DefaultHeight = 10
	DefaultSpeed  = 2

	InitialLength = 3
)

var (
	ErrUnderflow  = errors.New("coordinate underflow")
	ErrEmptyBody  = errors.New("snake body must not be empty")
	ErrSpeedRange = errors.New("speed out of range")
	ErrBoardSize  = errors.New("board too small")
)

// Random is the uniform integer source used for food placement and the initial heading.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRandom returns a Random backed by golang.org/x/exp/rand.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}
