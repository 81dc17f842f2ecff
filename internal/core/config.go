package core

// RuntimeConfig contains per-run settings handed to a game by the frontend.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the frontend picks one from the clock
}

// GameState is a compact view of the game used by frontends.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game-over message is being shown
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventFruitEaten EventKind = iota + 1
	EventRoundOver
	EventRoundRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFruitEaten:
		return "fruit_eaten"
	case EventRoundOver:
		return "round_over"
	case EventRoundRestarted:
		return "round_restarted"
	default:
		return "unknown"
	}
}

// Event is a gameplay notification emitted by Step.
type Event struct {
	Kind  EventKind
	Score int    // Score at the moment of the event
	Cause string // Round-over cause ("wall" or "self"), empty otherwise
}

// StepResult is returned by Step after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
