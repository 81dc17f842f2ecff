package snake

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/smartsnakes/internal/config"
	"github.com/vovakirdan/smartsnakes/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{Seed: seed, TickRate: TickRate})
	return g
}

func placeFruit(g *Game, p Position) {
	g.fruit.position = p
	g.fruit.exists = true
}

func placeSnake(g *Game, dir Direction, body ...Position) {
	g.snake.body = slices.Clone(body)
	g.snake.head = body[0]
	g.snake.direction = dir
	g.snake.pending = dir
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, 1)

	want := []Position{{100, 50}, {90, 50}, {80, 50}, {70, 50}}
	if got := g.snake.Body(); !slices.Equal(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if g.snake.Position() != (Position{100, 50}) {
		t.Errorf("head = %v, expected {100 50}", g.snake.Position())
	}
	if g.snake.Direction() != DirRight || g.snake.Pending() != DirRight {
		t.Errorf("direction = %v/%v, expected right/right", g.snake.Direction(), g.snake.Pending())
	}
	if g.Score() != 0 || g.Phase() != PhaseRunning || g.Round() != 1 {
		t.Errorf("score=%d phase=%v round=%d, expected 0 running 1", g.Score(), g.Phase(), g.Round())
	}
	if !g.fruit.Exists() {
		t.Error("fruit should exist after Reset")
	}
}

func TestStepMovesWithoutGrowing(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{400, 300})

	res := g.Step(core.NewInputFrame())

	want := []Position{{110, 50}, {100, 50}, {90, 50}, {80, 50}}
	if got := g.snake.Body(); !slices.Equal(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if g.snake.Position() != (Position{110, 50}) {
		t.Errorf("head = %v, expected {110 50}", g.snake.Position())
	}
	if len(res.Events) != 0 {
		t.Errorf("unexpected events %v", res.Events)
	}
	if res.State.Score != 0 || res.State.GameOver {
		t.Errorf("state = %+v, expected zero score and running", res.State)
	}
}

func TestStepEatsFruit(t *testing.T) {
	g := newTestGame(t, 7)
	placeFruit(g, Position{110, 50})

	res := g.Step(core.NewInputFrame())

	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
	if g.snake.Len() != 5 {
		t.Errorf("length = %d, expected 5", g.snake.Len())
	}
	if !g.fruit.Exists() {
		t.Error("fruit should exist again at the end of the tick")
	}
	if p := g.fruit.Position(); p.X%10 != 0 || p.Y%10 != 0 || !g.board.Contains(p) {
		t.Errorf("new fruit position %v should be on the grid", p)
	}
	if !res.Has(core.EventFruitEaten) {
		t.Errorf("expected fruit eaten event, got %v", res.Events)
	}
	if res.Events[0].Score != 10 {
		t.Errorf("event score = %d, expected 10", res.Events[0].Score)
	}
}

func TestFruitAlwaysExistsAfterTick(t *testing.T) {
	g := newTestGame(t, 3)
	g.fruit.exists = false

	g.Step(core.NewInputFrame())

	if !g.fruit.Exists() {
		t.Error("fruit must exist at the end of every tick")
	}
}

func TestDirectionInputApplied(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{400, 300})

	g.Step(frame(core.ActionDown))

	if g.snake.Direction() != DirDown {
		t.Fatalf("direction = %v, expected down", g.snake.Direction())
	}
	if g.snake.Position() != (Position{100, 60}) {
		t.Errorf("head = %v, expected {100 60}", g.snake.Position())
	}
}

func TestReversalIgnoredDuringStep(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{400, 300})

	g.Step(frame(core.ActionLeft))

	if g.snake.Direction() != DirRight {
		t.Errorf("direction = %v, expected right", g.snake.Direction())
	}
	if g.snake.Pending() != DirLeft {
		t.Errorf("pending = %v, expected left", g.snake.Pending())
	}
	if g.Phase() != PhaseRunning {
		t.Error("rejected reversal should not end the round")
	}
}

func TestAllKeysOfTickApplyInOrder(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{400, 300})

	// Up then Left commits both turns within one tick, so the head moves
	// back into the neck.
	res := g.Step(frame(core.ActionUp, core.ActionLeft))

	if g.snake.Direction() != DirLeft {
		t.Fatalf("direction = %v, expected left", g.snake.Direction())
	}
	if !res.Has(core.EventRoundOver) || res.Events[len(res.Events)-1].Cause != CauseSelf {
		t.Errorf("expected self collision, got %v", res.Events)
	}
}

func TestNonDirectionalActionsIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{400, 300})

	g.Step(frame(core.ActionQuit, core.ActionDown, core.ActionQuit))

	if g.snake.Direction() != DirDown || g.snake.Pending() != DirDown {
		t.Errorf("direction = %v/%v, expected down/down", g.snake.Direction(), g.snake.Pending())
	}
	if g.snake.Position() != (Position{100, 60}) {
		t.Errorf("head = %v, expected {100 60}", g.snake.Position())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		body []Position
		over bool
	}{
		{"left wall", DirLeft, []Position{{0, 50}, {10, 50}, {20, 50}, {30, 50}}, true},
		{"right wall", DirRight, []Position{{710, 50}, {700, 50}, {690, 50}, {680, 50}}, true},
		{"top wall", DirUp, []Position{{100, 0}, {100, 10}, {100, 20}, {100, 30}}, true},
		{"bottom wall", DirDown, []Position{{100, 470}, {100, 460}, {100, 450}, {100, 440}}, true},
		{"last column", DirRight, []Position{{700, 50}, {690, 50}, {680, 50}, {670, 50}}, false},
		{"last row", DirDown, []Position{{100, 460}, {100, 450}, {100, 440}, {100, 430}}, false},
		{"first column", DirLeft, []Position{{10, 50}, {20, 50}, {30, 50}, {40, 50}}, false},
		{"first row", DirUp, []Position{{100, 10}, {100, 20}, {100, 30}, {100, 40}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			placeFruit(g, Position{300, 300})
			placeSnake(g, tc.dir, tc.body...)

			res := g.Step(core.NewInputFrame())

			if res.State.GameOver != tc.over {
				t.Fatalf("GameOver = %v, expected %v (head %v)", res.State.GameOver, tc.over, g.snake.Position())
			}
			if tc.over {
				if g.cause != CauseWall {
					t.Errorf("cause = %q, expected %q", g.cause, CauseWall)
				}
				if !res.Has(core.EventRoundOver) {
					t.Error("expected round over event")
				}
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{300, 300})
	// A hook shape: moving down puts the head onto the fourth segment.
	placeSnake(g, DirDown,
		Position{100, 100}, Position{110, 100}, Position{110, 110}, Position{100, 110}, Position{90, 110})

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatalf("expected game over, head %v body %v", g.snake.Position(), g.snake.Body())
	}
	if g.cause != CauseSelf {
		t.Errorf("cause = %q, expected %q", g.cause, CauseSelf)
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{300, 300})
	// A 2x2 loop: the head enters the cell the tail leaves this tick.
	placeSnake(g, DirDown, Position{100, 100}, Position{110, 100}, Position{110, 110}, Position{100, 110})

	res := g.Step(core.NewInputFrame())

	if res.State.GameOver {
		t.Errorf("moving into the vacated tail cell should be safe, body %v", g.snake.Body())
	}
}

func TestCheckGameOverOnBody(t *testing.T) {
	g := newTestGame(t, 1)
	placeSnake(g, DirRight, Position{80, 50}, Position{90, 50}, Position{80, 50}, Position{70, 50})

	over, cause := g.CheckGameOver()
	if !over || cause != CauseSelf {
		t.Errorf("CheckGameOver() = %v, %q, expected true, %q", over, cause, CauseSelf)
	}
}

func TestGameOverThenRestart(t *testing.T) {
	g := newTestGame(t, 5)
	placeFruit(g, Position{300, 300})
	placeSnake(g, DirRight, Position{710, 50}, Position{700, 50}, Position{690, 50}, Position{680, 50}, Position{670, 50})
	g.score = 10

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if g.GameOverText() != "Your Score is : 10" {
		t.Errorf("GameOverText() = %q", g.GameOverText())
	}

	// Two seconds at 30 ticks per second.
	for i := 1; i < 60; i++ {
		res = g.Step(frame(core.ActionDown))
		if !res.State.GameOver {
			t.Fatalf("restarted after %d ticks, expected 60", i)
		}
		if res.State.Score != 10 {
			t.Fatalf("score changed during game-over pause: %d", res.State.Score)
		}
	}

	res = g.Step(core.NewInputFrame())
	if !res.Has(core.EventRoundRestarted) {
		t.Fatalf("expected restart on tick 60, got %v", res.Events)
	}
	if res.State.GameOver || g.Phase() != PhaseRunning {
		t.Error("game should be running after restart")
	}
	// The restart tick also moves the fresh snake one cell.
	want := []Position{{110, 50}, {100, 50}, {90, 50}, {80, 50}}
	if res.Has(core.EventFruitEaten) {
		want = append(want, Position{70, 50})
	}
	if got := g.snake.Body(); !slices.Equal(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if g.Score() != (len(want)-4)*10 {
		t.Errorf("score = %d, expected %d", g.Score(), (len(want)-4)*10)
	}
	if g.snake.Direction() != DirRight {
		t.Errorf("direction = %v, expected right", g.snake.Direction())
	}
	if g.Round() != 2 {
		t.Errorf("round = %d, expected 2", g.Round())
	}
	if !g.fruit.Exists() {
		t.Error("fruit should exist after restart")
	}
}

func TestRestartTickAppliesInput(t *testing.T) {
	g := newTestGame(t, 5)
	placeSnake(g, DirLeft, Position{0, 50}, Position{10, 50}, Position{20, 50}, Position{30, 50})
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}

	var res core.StepResult
	for !res.Has(core.EventRoundRestarted) {
		res = g.Step(frame(core.ActionDown))
	}

	if g.snake.Position() != (Position{100, 60}) {
		t.Errorf("head = %v, expected {100 60}: the restart tick should step with its input", g.snake.Position())
	}
	if g.snake.Direction() != DirDown {
		t.Errorf("direction = %v, expected down", g.snake.Direction())
	}
}

func TestRestartDirect(t *testing.T) {
	g := newTestGame(t, 9)
	placeSnake(g, DirUp, Position{300, 200}, Position{300, 210}, Position{300, 220}, Position{300, 230}, Position{300, 240})
	g.score = 10
	g.GameOver(CauseWall)

	g.Restart()

	if g.Score() != 0 || g.snake.Len() != 4 || g.snake.Direction() != DirRight {
		t.Errorf("after Restart: score=%d len=%d dir=%v", g.Score(), g.snake.Len(), g.snake.Direction())
	}
	if g.snake.Position() != (Position{100, 50}) {
		t.Errorf("head = %v, expected {100 50}", g.snake.Position())
	}
}

func TestZeroPauseRestartsNextTick(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.GameOverPause = 0
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: TickRate})
	placeFruit(g, Position{300, 300})
	placeSnake(g, DirLeft, Position{0, 50}, Position{10, 50}, Position{20, 50}, Position{30, 50})

	g.Step(core.NewInputFrame())
	res := g.Step(core.NewInputFrame())

	if !res.Has(core.EventRoundRestarted) {
		t.Errorf("expected immediate restart, got %v", res.Events)
	}
}

func TestLengthTracksScore(t *testing.T) {
	g := newTestGame(t, 2024)
	inputRNG := rand.New(rand.NewSource(99))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for i := range 3000 {
		in := core.NewInputFrame()
		if inputRNG.Intn(4) == 0 {
			in.Set(actions[inputRNG.Intn(len(actions))])
		}

		beforeLen, beforeScore := g.snake.Len(), g.Score()
		res := g.Step(in)

		switch {
		case res.Has(core.EventRoundRestarted):
			if g.snake.Len() > 5 || g.Score() > 10 {
				t.Fatalf("tick %d: restart left len=%d score=%d", i, g.snake.Len(), g.Score())
			}
		case res.Has(core.EventFruitEaten):
			if g.snake.Len() != beforeLen+1 || g.Score() != beforeScore+10 {
				t.Fatalf("tick %d: eating changed len %d->%d score %d->%d",
					i, beforeLen, g.snake.Len(), beforeScore, g.Score())
			}
		default:
			if g.snake.Len() != beforeLen {
				t.Fatalf("tick %d: length changed %d->%d without eating", i, beforeLen, g.snake.Len())
			}
		}

		if g.snake.Len() != g.Score()/10+4 {
			t.Fatalf("tick %d: len=%d score=%d breaks len = score/10 + 4", i, g.snake.Len(), g.Score())
		}
		if g.snake.Position() != g.snake.body[0] {
			t.Fatalf("tick %d: head %v differs from body[0] %v", i, g.snake.Position(), g.snake.body[0])
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := range 400 {
		in := core.NewInputFrame()
		switch i % 50 {
		case 10:
			in.Set(core.ActionDown)
		case 30:
			in.Set(core.ActionLeft)
		case 40:
			in.Set(core.ActionUp)
		case 45:
			in.Set(core.ActionRight)
		}

		g1.Step(in)
		g2.Step(in)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots differ\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, 1)
	placeFruit(g, Position{300, 200})

	s := g.Snapshot()
	if s.HeadX != 100 || s.HeadY != 50 || s.SnakeLen != 4 || s.Dir != DirRight {
		t.Errorf("unexpected snake snapshot %+v", s)
	}
	if s.FruitX != 300 || s.FruitY != 200 || !s.FruitExists {
		t.Errorf("unexpected fruit snapshot %+v", s)
	}
	if s.Phase != PhaseRunning || s.Round != 1 || s.Tick != 0 {
		t.Errorf("unexpected round snapshot %+v", s)
	}
}

func TestBoardObjects(t *testing.T) {
	g := newTestGame(t, 1)

	var objs []BoardObject = g.objects
	if len(objs) != 2 {
		t.Fatalf("expected snake and fruit, got %d objects", len(objs))
	}
	if objs[0].Position() != g.snake.Position() || objs[1].Position() != g.fruit.Position() {
		t.Error("board objects should be the game's snake and fruit")
	}
}
