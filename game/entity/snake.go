package entity

import (
	"slices"

	"snake-buffer/game/types"

	"github.com/pkg/errors"
)

// Snake is an ordered body, head first, moving in a single direction.
type Snake struct {
	body      []types.Point
	direction types.Direction
	digesting bool
}

// NewSnake lays out length cells from start, extending away from direction.
func NewSnake(start types.Point, length uint16, direction types.Direction) (*Snake, error) {
	if length == 0 {
		return nil, types.ErrEmptyBody
	}

	back := direction.Opposite()
	body := make([]types.Point, 0, length)
	for i := uint16(0); i < length; i++ {
		p, err := start.Transform(back, i)
		if err != nil {
			return nil, errors.Wrapf(err, "snake of length %d from %s heading %s", length, start, direction)
		}
		body = append(body, p)
	}

	return &Snake{
		body:      body,
		direction: direction,
	}, nil
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the body points, head first.
func (s *Snake) Body() []types.Point {
	return slices.Clone(s.body)
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection changes heading unconditionally. Reversal rules belong to the caller.
func (s *Snake) SetDirection(dir types.Direction) {
	s.direction = dir
}

func (s *Snake) Contains(p types.Point) bool {
	return slices.Contains(s.body, p)
}

func (s *Snake) Digesting() bool {
	return s.digesting
}

// Slither moves the head one cell forward. The tail is kept once after Grow.
func (s *Snake) Slither() error {
	next, err := s.Head().Transform(s.direction, 1)
	if err != nil {
		return err
	}

	s.body = slices.Insert(s.body, 0, next)
	if !s.digesting {
		s.body = s.body[:len(s.body)-1]
	} else {
		s.digesting = false
	}
	return nil
}

// Grow arms a single growth for the next Slither. Repeated calls do not stack.
func (s *Snake) Grow() {
	s.digesting = true
}
