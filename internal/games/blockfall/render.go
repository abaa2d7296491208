package blockfall

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	EmptyChar  = '·'
	ClearChar1 = '▓'
	ClearChar2 = '▒'
	ClearChar3 = '░'
)

const (
	cellWidth = 2  // terminal columns per board cell
	panelW    = 14 // side panel width
	panelGap  = 2
	hudHeight = 2
)

// boardSize returns the framed board size in terminal cells.
func (g *Game) boardSize() (w, h int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.Height + 2
}

// minScreenSize returns the smallest screen the layout fits in.
func (g *Game) minScreenSize() (w, h int) {
	bw, bh := g.boardSize()
	return bw + panelGap + panelW, bh + hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	minW, _ := g.minScreenSize()
	boardW, boardH := g.boardSize()
	boardX := (g.screenW - minW) / 2
	boardY := hudHeight

	dst.DrawTextColor(boardX, 0, g.Title(), core.ColorBrightCyan)

	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderPanel(dst, boardX+boardW+panelGap, boardY)

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
}

// setBlock paints one board cell, two columns wide.
func setBlock(dst *core.Screen, originX, originY int, pos engine.Coord, r rune, c core.Color) {
	x := originX + pos.X*cellWidth
	y := originY + pos.Y
	dst.SetCell(x, y, r, c)
	dst.SetCell(x+1, y, r, c)
}

// renderBoard draws locked cells, their animations and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	w, h := g.engine.Width(), g.engine.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetCell(originX+x*cellWidth, originY+y, EmptyChar, core.ColorGray)
		}
	}

	for _, c := range g.engine.Cells() {
		switch c.State {
		case engine.CellSettled:
			setBlock(dst, originX, originY, c.Pos, BlockChar, c.Color)
		case engine.CellClearing:
			setBlock(dst, originX, originY, c.Pos, clearChar(c.Progress), c.Color)
		case engine.CellDropping:
			pos := c.Pos
			if c.Progress >= 0.5 && pos.Y+1 < h {
				pos.Y++
			}
			setBlock(dst, originX, originY, pos, BlockChar, c.Color)
		}
	}

	if shape, ok := g.engine.PieceShape(); ok {
		for _, p := range g.engine.PieceCells() {
			setBlock(dst, originX, originY, p, BlockChar, shape.Color)
		}
	}
}

// clearChar fades a clearing cell as its timer runs.
func clearChar(progress float64) rune {
	switch {
	case progress < 1.0/3:
		return ClearChar1
	case progress < 2.0/3:
		return ClearChar2
	default:
		return ClearChar3
	}
}

// renderPanel draws score, lines, level and the next piece.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	state := g.State()

	dst.DrawTextColor(x, y, "Score", core.ColorGray)
	dst.DrawText(x, y+1, strconv.Itoa(state.Score))

	dst.DrawTextColor(x, y+3, "Lines", core.ColorGray)
	dst.DrawText(x, y+4, strconv.Itoa(state.Lines))

	dst.DrawTextColor(x, y+6, "Level", core.ColorGray)
	dst.DrawText(x, y+7, fmt.Sprintf("%d/%d", state.Level, stages))

	if !g.cfg.Spawn.Preview {
		return
	}
	dst.DrawTextColor(x, y+9, "Next", core.ColorGray)
	next := g.engine.NextShape()
	offsets := next.Offsets()
	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
	}
	for _, o := range offsets {
		setBlock(dst, x, y+10, engine.C(o.X-minX, o.Y-minY), BlockChar, next.Color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.engine.State() == engine.StateGameOver:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, boxY+1+i, line)
	}
}
