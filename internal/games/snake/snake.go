package snake

import "slices"

// Snake is the player-controlled body. The body is ordered head first.
type Snake struct {
	start  Position
	length int // Length after Reset
	cell   int

	head      Position
	direction Direction
	pending   Direction // Last requested turn, kept even when rejected
	body      []Position
}

// NewSnake creates a snake with its head at start and length segments
// trailing to the left, heading right.
func NewSnake(start Position, length, cell int) *Snake {
	s := &Snake{
		start:  start,
		length: length,
		cell:   cell,
	}
	s.Reset()
	return s
}

// Reset puts the head back at the starting position, rebuilds the body
// trailing horizontally behind it and faces right.
func (s *Snake) Reset() {
	s.head = s.start
	s.body = make([]Position, 0, s.length)
	for i := range s.length {
		s.body = append(s.body, Position{X: s.start.X - i*s.cell, Y: s.start.Y})
	}
	s.direction = DirRight
	s.pending = DirRight
}

// SetDirection records a requested turn and applies it unless it would
// reverse the snake onto itself.
func (s *Snake) SetDirection(d Direction) {
	s.pending = d
	if s.pending != s.direction.Opposite() {
		s.direction = s.pending
	}
}

// UpdatePosition moves the head one cell in the current direction.
// The body is not touched and no bounds are checked.
func (s *Snake) UpdatePosition() {
	dx, dy := s.direction.Delta()
	s.head.X += dx * s.cell
	s.head.Y += dy * s.cell
}

// pushHead inserts the current head position at the front of the body.
func (s *Snake) pushHead() {
	s.body = slices.Insert(s.body, 0, s.head)
}

// dropTail removes the last body segment.
func (s *Snake) dropTail() {
	if len(s.body) > 0 {
		s.body = s.body[:len(s.body)-1]
	}
}

// HitsSelf reports whether the head overlaps any non-head segment.
func (s *Snake) HitsSelf() bool {
	if len(s.body) < 2 {
		return false
	}
	return slices.Contains(s.body[1:], s.head)
}

// Position returns the head position.
func (s *Snake) Position() Position {
	return s.head
}

// Start returns the position the head returns to on Reset.
func (s *Snake) Start() Position {
	return s.start
}

// Direction returns the committed movement direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Pending returns the most recently requested direction.
func (s *Snake) Pending() Direction {
	return s.pending
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []Position {
	return slices.Clone(s.body)
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}
