package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	BlockChar    = '█'
	DeadZoneChar = '#'
	BorderVert   = '│'
	BorderHoriz  = '─'
	BorderTL     = '┌'
	BorderTR     = '┐'
)

// Block colors by row (cycling through)
var blockColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// hudRows is the number of screen rows above the field.
const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the block counter and the reflection mode.
func (g *Game) renderHUD(dst *core.Screen) {
	blocksText := fmt.Sprintf("Blocks: %d/%d", g.field.RemainingBlocks(), g.blocksTotal)
	dst.DrawText(1, 0, blocksText)

	dst.DrawTextCentered(0, g.Title())

	modeText := "Walls: axis"
	if g.engine.Reflection == ReflectClassic {
		modeText = "Walls: classic"
	}
	dst.DrawText(dst.Width()-len(modeText)-1, 0, modeText)
}

// renderField draws walls, blocks and the dead-zone.
func (g *Game) renderField(dst *core.Screen) {
	w, h := g.field.Width(), g.field.Height()
	for x := 0; x <= w; x++ {
		for y := 0; y <= h; y++ {
			cell, err := g.field.CellAt(x, y)
			if err != nil {
				continue
			}

			sy := y + hudRows
			switch cell {
			case CellWall:
				dst.SetColor(x, sy, wallGlyph(x, y, w), core.ColorGray)
			case CellBlock:
				dst.SetColor(x, sy, BlockChar, blockColors[y%len(blockColors)])
			case CellDeadZone:
				dst.SetColor(x, sy, DeadZoneChar, core.ColorRed)
			}
		}
	}
}

// wallGlyph picks a box-drawing rune for the wall cell at (x, y).
func wallGlyph(x, y, w int) rune {
	switch {
	case y == 0 && x == 0:
		return BorderTL
	case y == 0 && x == w:
		return BorderTR
	case y == 0:
		return BorderHoriz
	default:
		return BorderVert
	}
}

// renderPaddle draws the paddle footprint.
func (g *Game) renderPaddle(dst *core.Screen) {
	for x := g.paddle.Left(); x <= g.paddle.Right(); x++ {
		dst.SetColor(x, g.paddle.Y+hudRows, PaddleChar, core.ColorWhite)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	dst.SetColor(g.ball.X, g.ball.Y+hudRows, BallChar, core.ColorBrightYellow)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.fault != nil:
		reason := g.fault.Error()
		if errors.Is(g.fault, ErrReflectionLimit) {
			reason = "ball trapped between walls"
		}
		g.drawCenteredBox(dst, "SIMULATION FAULT", reason)

	case g.status == StatusLost:
		g.drawCenteredBox(dst, "GAME OVER", "Press R to restart")

	case g.status == StatusWon:
		g.drawCenteredBox(dst, "WELL DONE, YOU FINISHED!", "Press R to restart")

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
