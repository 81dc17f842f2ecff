// Package snake implements the game rules: a snake that moves one cell per
// tick, grows by eating fruit, and loses the round on hitting a wall or itself.
// Rounds restart automatically after a short game-over message.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/smartsnakes/internal/config"
	"github.com/vovakirdan/smartsnakes/internal/core"
)

// TickRate is the fixed simulation rate in ticks per second.
const TickRate = 30

// Round-over causes.
const (
	CauseWall = "wall"
	CauseSelf = "self"
)

// Phase is the state of the round.
type Phase int

const (
	PhaseRunning  Phase = iota
	PhaseGameOver       // Game-over message on screen; restarts when the pause ends
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// Game owns the snake, the fruit and the score.
type Game struct {
	cfg   config.Config
	board Board
	rng   *rand.Rand

	snake   *Snake
	fruit   *Fruit
	objects []BoardObject
	score   int

	tick       uint64
	round      int // 1-based round counter
	phase      Phase
	cause      string
	tickRate   int
	pauseTicks int // Length of the game-over message in ticks
	overTicks  int // Ticks left before restart
}

// New creates a game for the given configuration.
// Reset must be called before the first Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:   cfg,
		board: NewBoard(cfg),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Board returns the playfield geometry.
func (g *Game) Board() Board {
	return g.board
}

// Reset initializes the game from scratch: fresh RNG, snake, fruit and score.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tickRate = rt.TickRate
	if g.tickRate <= 0 {
		g.tickRate = TickRate
	}
	g.pauseTicks = int(time.Duration(g.tickRate) * g.cfg.Rules.GameOverPause / time.Second)

	start := Position{X: g.cfg.Snake.StartX, Y: g.cfg.Snake.StartY}
	g.snake = NewSnake(start, g.cfg.Snake.InitialLength, g.board.Cell)
	g.fruit = NewFruit(g.board, g.rng)
	g.objects = []BoardObject{g.snake, g.fruit}

	g.tick = 0
	g.round = 1
	g.score = 0
	g.phase = PhaseRunning
	g.cause = ""
	g.overTicks = 0
}

// Step advances the game by one tick.
// While running it applies input, moves the snake and checks for game over.
// While the game-over message is shown it counts down; the tick that ends the
// pause restarts the round and moves the fresh snake in the same step, so the
// start position itself is never shown.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.phase == PhaseGameOver {
		g.overTicks--
		if g.overTicks > 0 {
			return core.StepResult{State: g.State()}
		}
		g.Restart()
		events = append(events, core.Event{Kind: core.EventRoundRestarted})
	}

	if g.Update(in) {
		events = append(events, core.Event{Kind: core.EventFruitEaten, Score: g.score})
	}

	if over, cause := g.CheckGameOver(); over {
		g.GameOver(cause)
		events = append(events, core.Event{Kind: core.EventRoundOver, Score: g.score, Cause: cause})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Update performs the movement part of a tick and reports whether the fruit
// was eaten. Every directional action of the frame is applied in order.
func (g *Game) Update(in core.InputFrame) bool {
	for _, a := range in.Actions() {
		if !a.IsDirectional() {
			continue
		}
		if d, ok := DirectionFromAction(a); ok {
			g.snake.SetDirection(d)
		}
	}

	g.snake.UpdatePosition()
	g.snake.pushHead()

	eaten := g.snake.Position() == g.fruit.Position()
	if eaten {
		g.score += g.cfg.Rules.FruitReward
		g.fruit.exists = false
	} else {
		g.snake.dropTail()
	}

	if !g.fruit.Exists() {
		g.fruit.relocate()
	}
	// The fruit is always present again at the end of a tick.
	g.fruit.exists = true

	return eaten
}

// CheckGameOver reports whether the head left the board or ran into the body,
// and which of the two happened.
func (g *Game) CheckGameOver() (bool, string) {
	if !g.board.Contains(g.snake.Position()) {
		return true, CauseWall
	}
	if g.snake.HitsSelf() {
		return true, CauseSelf
	}
	return false, ""
}

// GameOver freezes the round and shows the final score until the
// configured pause has elapsed.
func (g *Game) GameOver(cause string) {
	g.phase = PhaseGameOver
	g.cause = cause
	g.overTicks = g.pauseTicks
}

// Restart resets every board object and the score and resumes play.
// The random stream continues, so the new fruit differs from the first round.
func (g *Game) Restart() {
	for _, obj := range g.objects {
		obj.Reset()
	}
	g.score = 0
	g.phase = PhaseRunning
	g.cause = ""
	g.overTicks = 0
	g.round++
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Round returns the 1-based round number.
func (g *Game) Round() int {
	return g.round
}

// Snake returns the snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Fruit returns the fruit.
func (g *Game) Fruit() *Fruit {
	return g.fruit
}

// ScoreText is the text of the always-visible score overlay.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("Score : %d", g.score)
}

// GameOverText is the text shown while the game-over message is up.
func (g *Game) GameOverText() string {
	return fmt.Sprintf("Your Score is : %d", g.score)
}
