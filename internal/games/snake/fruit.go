package snake

import "math/rand"

// Fruit is the single item the snake eats. It may spawn on top of the snake.
type Fruit struct {
	board    Board
	rng      *rand.Rand
	position Position
	exists   bool
}

// NewFruit creates a fruit at a random cell of the board.
func NewFruit(board Board, rng *rand.Rand) *Fruit {
	f := &Fruit{
		board: board,
		rng:   rng,
	}
	f.Reset()
	return f
}

// Reset moves the fruit to a new random cell and marks it present.
func (f *Fruit) Reset() {
	f.relocate()
	f.exists = true
}

func (f *Fruit) relocate() {
	f.position = f.board.RandomCell(f.rng)
}

// Position returns where the fruit is drawn.
func (f *Fruit) Position() Position {
	return f.position
}

// Exists reports whether the fruit is on the board.
func (f *Fruit) Exists() bool {
	return f.exists
}
