package snake

// Snapshot captures the observable game state for tests and debug logging.
type Snapshot struct {
	Tick        uint64
	Round       int
	Score       int
	SnakeLen    int
	HeadX       int
	HeadY       int
	Dir         Direction
	FruitX      int
	FruitY      int
	FruitExists bool
	Phase       Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Position()
	fruit := g.fruit.Position()
	return Snapshot{
		Tick:        g.tick,
		Round:       g.round,
		Score:       g.score,
		SnakeLen:    g.snake.Len(),
		HeadX:       head.X,
		HeadY:       head.Y,
		Dir:         g.snake.Direction(),
		FruitX:      fruit.X,
		FruitY:      fruit.Y,
		FruitExists: g.fruit.Exists(),
		Phase:       g.phase,
	}
}
