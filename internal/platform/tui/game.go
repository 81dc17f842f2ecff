package tui

import "github.com/vovakirdan/smartsnakes/internal/core"

// Game is the pure game logic driven by the terminal loop.
// It never imports Bubble Tea; the platform handles input mapping, timing and drawing.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes the game state. Called once before the first tick.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and game-over flag.
	State() core.GameState

	// MinScreen returns the smallest screen the game can be played on.
	MinScreen() (w, h int)
}
