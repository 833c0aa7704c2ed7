package entity

import (
	"retro-snake/game/types"
)

// Snake is an ordered body with the head at index 0.
type Snake struct {
	Body       []types.Point
	Direction  types.Point
	addSegment bool
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Advance moves the head one cell along Direction. The tail is dropped
// unless a segment is pending from Grow.
func (s *Snake) Advance() {
	newHead := s.Head().Add(s.Direction)

	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)

	if s.addSegment {
		s.addSegment = false
	} else {
		body = body[:len(body)-1]
	}
	s.Body = body
}

// Grow adds one segment on the next Advance.
func (s *Snake) Grow() {
	s.addSegment = true
}

// Growing reports whether a segment is pending.
func (s *Snake) Growing() bool {
	return s.addSegment
}

func (s *Snake) Reset() {
	s.Body = types.InitialBody()
	s.Direction = types.InitialDirection()
	s.addSegment = false
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection changes the heading unless dir is the exact reverse of the
// current one. Returns true if the heading changed.
func (s *Snake) SetDirection(dir types.Point) bool {
	if dir == s.Direction.Neg() || dir == s.Direction {
		return false
	}
	s.Direction = dir
	return true
}

// HitsTail reports whether the head sits on any other segment.
func (s *Snake) HitsTail() bool {
	return types.ContainsPoint(s.Body[1:], s.Head())
}
