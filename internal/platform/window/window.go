// Package window runs the game in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/smartsnakes/internal/config"
	"github.com/vovakirdan/smartsnakes/internal/core"
	"github.com/vovakirdan/smartsnakes/internal/games/snake"
	"github.com/vovakirdan/smartsnakes/internal/session"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// gameOverScale enlarges the game-over text.
const gameOverScale = 3

var (
	colorBackground = color.Black
	colorSnake      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorFruit      = color.White
)

// Window adapts a snake game to ebiten.Game.
type Window struct {
	cfg      config.Config
	game     *snake.Game
	recorder *session.Recorder
	logger   *log.Logger

	input   core.InputFrame
	keys    []ebiten.Key
	textBuf *ebiten.Image
}

// New creates a window for a game that has already been Reset.
// A nil logger discards output.
func New(cfg config.Config, game *snake.Game, recorder *session.Recorder, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		cfg:      cfg,
		game:     game,
		recorder: recorder,
		logger:   logger,
		input:    core.NewInputFrame(),
	}
}

// Update polls keys pressed since the last tick and advances the game one step.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	return w.tick(w.keys)
}

// tick applies the keys of one tick in order. A quit key stops the loop
// before the game steps.
func (w *Window) tick(keys []ebiten.Key) error {
	for _, k := range keys {
		action := ActionForKey(k)
		if action == core.ActionQuit {
			return ebiten.Termination
		}
		w.input.Set(action)
	}

	result := w.game.Step(w.input)
	if w.recorder != nil {
		w.recorder.Observe(result)
	}
	if result.Has(core.EventRoundOver) {
		w.logger.Debug("round state", "snapshot", w.game.Snapshot())
	}
	w.input.Clear()
	return nil
}

// Draw paints the board, the score and the game-over message.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cell := float32(w.game.Board().Cell)
	for _, seg := range w.game.Snake().Body() {
		vector.DrawFilledRect(screen, float32(seg.X), float32(seg.Y), cell, cell, colorSnake, false)
	}
	if fruit := w.game.Fruit(); fruit.Exists() {
		p := fruit.Position()
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), cell, cell, colorFruit, false)
	}

	ebitenutil.DebugPrintAt(screen, w.game.ScoreText(), 0, 0)

	if w.game.Phase() == snake.PhaseGameOver {
		w.drawGameOver(screen)
	}
}

// drawGameOver draws the message in red, scaled up, with its top edge
// centered at a quarter of the window height.
func (w *Window) drawGameOver(screen *ebiten.Image) {
	text := w.game.GameOverText()
	tw, th := len(text)*glyphW, glyphH

	if w.textBuf == nil || w.textBuf.Bounds().Dx() < tw {
		w.textBuf = ebiten.NewImage(tw, th)
	}
	w.textBuf.Clear()
	ebitenutil.DebugPrintAt(w.textBuf, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gameOverScale, gameOverScale)
	op.GeoM.Translate(
		float64(w.cfg.Window.Width-tw*gameOverScale)/2,
		float64(w.cfg.Window.Height)/4,
	)
	op.ColorScale.Scale(1, 0, 0, 1)
	screen.DrawImage(w.textBuf, op)
}

// Layout fixes the logical screen to the configured window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Window.Width, w.cfg.Window.Height
}

// ActionForKey maps a keyboard key to a game action.
func ActionForKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return core.ActionUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return core.ActionDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.ActionLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.ActionRight
	case ebiten.KeyQ, ebiten.KeyEscape:
		return core.ActionQuit
	}
	return core.ActionNone
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(w *Window) error {
	ebiten.SetWindowSize(w.cfg.Window.Width, w.cfg.Window.Height)
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetTPS(snake.TickRate)

	w.logger.Info("window opened", "width", w.cfg.Window.Width, "height", w.cfg.Window.Height)
	err := ebiten.RunGame(w)
	if w.recorder != nil {
		w.recorder.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
