package snake

import (
	"fmt"

	"github.com/vovakirdan/smartsnakes/internal/core"
)

// Cell glyphs used by the character renderer.
const (
	glyphBackground = '·'
	glyphSegment    = '█'
	glyphFruit      = '■'
)

// MinScreen returns the smallest character screen that fits the board,
// one character per cell.
func (g *Game) MinScreen() (w, h int) {
	return g.board.Columns(), g.board.Rows()
}

// Render draws the board into a character screen, one character per cell.
// The board is centered horizontally and anchored to the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreen()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	cols, rows := g.board.Columns(), g.board.Rows()
	ox := (dst.Width() - cols) / 2
	area := core.NewRect(ox, 0, cols, rows)
	dst.DrawRect(area, glyphBackground, core.ColorGray)

	for i, seg := range g.snake.body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		g.plot(dst, area, seg, glyphSegment, color)
	}

	if g.fruit.Exists() {
		g.plot(dst, area, g.fruit.Position(), glyphFruit, core.ColorWhite)
	}

	dst.DrawText(area.X, area.Y, g.ScoreText(), core.ColorWhite)

	if g.phase == PhaseGameOver {
		text := g.GameOverText()
		x := area.X + core.Clamp((area.W-len(text))/2, 0, area.W)
		dst.DrawText(x, area.Y+area.H/4, text, core.ColorRed)
	}
}

// plot draws a board position, skipping anything outside the board area.
func (g *Game) plot(dst *core.Screen, area core.Rect, p Position, r rune, c core.Color) {
	if !g.board.Contains(p) {
		return
	}
	col, row := g.board.CellOf(p)
	dst.SetColored(area.X+col, area.Y+row, r, c)
}

func (g *Game) renderTooSmall(dst *core.Screen, minW, minH int) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Terminal too small", core.ColorRed)
	dst.DrawTextCentered(cy+1, fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()), core.ColorDefault)
}
