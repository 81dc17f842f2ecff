package snake

import (
	"math/rand"

	"github.com/vovakirdan/smartsnakes/internal/config"
)

// Position is a point on the board in logical units.
// Both coordinates are multiples of the cell size.
type Position struct {
	X, Y int
}

// BoardObject is anything that lives on the board and can be put back into
// its initial state when a round restarts.
type BoardObject interface {
	Position() Position
	Reset()
}

// Board describes the playfield geometry.
type Board struct {
	Width  int // Logical width (720 by default)
	Height int // Logical height (480 by default)
	Cell   int // Cell size (10 by default)
}

// NewBoard creates a board from the game configuration.
func NewBoard(cfg config.Config) Board {
	return Board{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Cell:   cfg.Grid.CellSize,
	}
}

// Columns returns the number of cells across.
func (b Board) Columns() int {
	return b.Width / b.Cell
}

// Rows returns the number of cells down.
func (b Board) Rows() int {
	return b.Height / b.Cell
}

// Contains reports whether p lies on the board: 0 <= x <= width-cell and
// 0 <= y <= height-cell.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X <= b.Width-b.Cell && p.Y >= 0 && p.Y <= b.Height-b.Cell
}

// CellOf converts an on-board position to column/row indexes.
func (b Board) CellOf(p Position) (col, row int) {
	return p.X / b.Cell, p.Y / b.Cell
}

// RandomCell picks a uniformly random cell-aligned position, never in the
// first row or column.
func (b Board) RandomCell(rng *rand.Rand) Position {
	return Position{
		X: (1 + rng.Intn(b.Columns()-1)) * b.Cell,
		Y: (1 + rng.Intn(b.Rows()-1)) * b.Cell,
	}
}
