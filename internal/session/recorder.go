// Package session tracks rounds played during one process lifetime.
// Nothing is persisted: the best score lives only as long as the Recorder.
package session

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/smartsnakes/internal/core"
)

// Round summarizes a finished round.
type Round struct {
	ID    uuid.UUID
	Index int
	Score int
	Cause string
}

// Recorder consumes step results and logs the round lifecycle.
// It is not safe for concurrent use.
type Recorder struct {
	logger   *log.Logger
	roundID  uuid.UUID
	index    int
	best     int
	finished []Round
}

// NewRecorder creates a recorder that logs through logger.
// A nil logger discards everything.
func NewRecorder(logger *log.Logger, gameID string) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		logger: logger.With("game", gameID),
	}
}

// Start opens the first round.
func (r *Recorder) Start() {
	r.index = 0
	r.openRound()
}

// Observe records the events of a single tick.
func (r *Recorder) Observe(res core.StepResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventFruitEaten:
			r.logger.Debug("fruit eaten", "round_id", r.roundID, "score", ev.Score)
		case core.EventRoundOver:
			r.closeRound(ev)
		case core.EventRoundRestarted:
			r.openRound()
		}
	}
}

// Close logs the session summary.
func (r *Recorder) Close() {
	r.logger.Info("session ended", "rounds", len(r.finished), "best", r.best)
}

// RoundID returns the ID of the current round.
func (r *Recorder) RoundID() uuid.UUID {
	return r.roundID
}

// Best returns the best score of the session.
func (r *Recorder) Best() int {
	return r.best
}

// Rounds returns the finished rounds in order.
func (r *Recorder) Rounds() []Round {
	out := make([]Round, len(r.finished))
	copy(out, r.finished)
	return out
}

func (r *Recorder) openRound() {
	r.roundID = uuid.New()
	r.index++
	r.logger.Info("round started", "round_id", r.roundID, "round", r.index)
}

func (r *Recorder) closeRound(ev core.Event) {
	if ev.Score > r.best {
		r.best = ev.Score
	}
	r.finished = append(r.finished, Round{
		ID:    r.roundID,
		Index: r.index,
		Score: ev.Score,
		Cause: ev.Cause,
	})
	r.logger.Info("round over",
		"round_id", r.roundID,
		"round", r.index,
		"score", ev.Score,
		"cause", ev.Cause,
		"best", r.best,
	)
}
