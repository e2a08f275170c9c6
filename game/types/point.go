package types

import (
	"fmt"

	"github.com/pkg/errors"
)

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if d < Up || d > Left {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

// Directions lists every heading in declaration order.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// Point is a cell on the board. The origin is the top-left corner.
type Point struct {
	X, Y uint16
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Transform returns p shifted times cells towards d. Moving above row 0 or left of
// column 0 fails with ErrUnderflow instead of wrapping.
func (p Point) Transform(d Direction, times uint16) (Point, error) {
	switch d {
	case Up:
		if times > p.Y {
			return p, errors.Wrapf(ErrUnderflow, "move %s by %d from %s", d, times, p)
		}
		return Point{X: p.X, Y: p.Y - times}, nil
	case Right:
		return Point{X: p.X + times, Y: p.Y}, nil
	case Down:
		return Point{X: p.X, Y: p.Y + times}, nil
	case Left:
		if times > p.X {
			return p, errors.Wrapf(ErrUnderflow, "move %s by %d from %s", d, times, p)
		}
		return Point{X: p.X - times, Y: p.Y}, nil
	}
	return p, errors.Errorf("unknown direction %s", d)
}

// MustTransform is Transform for paths where underflow means the board model is broken.
func (p Point) MustTransform(d Direction, times uint16) Point {
	next, err := p.Transform(d, times)
	if err != nil {
		panic(err)
	}
	return next
}
