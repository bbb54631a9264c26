package tetris

import (
	"fmt"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	GridChar  = '·'
	UpperHalf = '▀'
	LowerHalf = '▄'
)

// Layout metrics
const (
	hudWidth      = 14
	hudGap        = 2
	fullCellW     = 2
	compactStride = 2 // Board rows per terminal row in compact mode
)

// pieceColors maps cell values to screen colors.
var pieceColors = [ShapeCount + 1]core.Color{
	core.ColorDefault,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightWhite,
}

// CellColor returns the display color for a board cell value.
func CellColor(v Cell) core.Color {
	if int(v) >= len(pieceColors) {
		return core.ColorDefault
	}
	return pieceColors[v]
}

// layout positions the well and HUD on the screen.
// Full mode draws each board cell as two columns on one row; compact mode
// packs two board rows into one terminal row with half blocks.
type layout struct {
	compact bool
	well    core.Rect // Including the border
	hudX    int
	hudY    int
}

// Minimum sizes for each mode.
var (
	fullMinW    = Cols*fullCellW + 2 + hudGap + hudWidth
	fullMinH    = Rows + 2
	compactMinW = Cols + 2 + hudGap + hudWidth
	compactMinH = Rows/compactStride + 2
)

// computeLayout picks the largest layout that fits. The second result is
// true when even the compact layout does not fit.
func computeLayout(w, h int) (layout, bool) {
	var l layout
	switch {
	case w >= fullMinW && h >= fullMinH:
		l.well = core.NewRect(0, 0, Cols*fullCellW+2, Rows+2)
	case w >= compactMinW && h >= compactMinH:
		l.compact = true
		l.well = core.NewRect(0, 0, Cols+2, Rows/compactStride+2)
	default:
		return l, true
	}

	total := l.well.W + hudGap + hudWidth
	l.well.X = (w - total) / 2
	l.well.Y = (h - l.well.H) / 2
	l.hudX = l.well.Right() + hudGap
	l.hudY = l.well.Y + 1
	return l, false
}

// pixel is one board cell as it appears on screen.
type pixel struct {
	color core.Color
	ghost bool
	set   bool
}

// pixels composes the board, ghost and active piece into one grid.
func (g *Game) pixels() [Rows][Cols]pixel {
	var out [Rows][Cols]pixel

	for y, row := range g.st.Board() {
		for x, v := range row {
			if v != Empty {
				out[y][x] = pixel{color: CellColor(v), set: true}
			}
		}
	}

	active := g.st.Active()
	if g.cfg.Display.Ghost && !g.st.GameOver() {
		g.st.Ghost().each(func(x, y int, v Cell) {
			if y >= 0 && y < Rows && x >= 0 && x < Cols && !out[y][x].set {
				out[y][x] = pixel{color: CellColor(v), ghost: true, set: true}
			}
		})
	}
	if !g.st.GameOver() {
		active.each(func(x, y int, v Cell) {
			if y >= 0 && y < Rows && x >= 0 && x < Cols {
				out[y][x] = pixel{color: CellColor(v), set: true}
			}
		})
	}
	return out
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", compactMinW, compactMinH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	dst.DrawBoxColor(g.layout.well, core.ColorGray)

	px := g.pixels()
	if g.layout.compact {
		g.renderCompact(dst, &px)
	} else {
		g.renderFull(dst, &px)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderFull draws two columns per cell.
func (g *Game) renderFull(dst *core.Screen, px *[Rows][Cols]pixel) {
	ox, oy := g.layout.well.X+1, g.layout.well.Y+1

	for y := range Rows {
		for x := range Cols {
			p := px[y][x]
			sx := ox + x*fullCellW

			var c core.Cell
			switch {
			case p.set && p.ghost:
				c = core.Cell{Rune: GhostChar, Color: p.color}
			case p.set:
				c = core.Cell{Rune: BlockChar, Color: p.color}
			case g.cfg.Display.Grid:
				dst.SetCell(sx, oy+y, core.Cell{Rune: GridChar, Color: core.ColorDarkGray})
				continue
			default:
				continue
			}
			dst.SetCell(sx, oy+y, c)
			dst.SetCell(sx+1, oy+y, c)
		}
	}
}

// renderCompact draws two board rows per terminal row. The upper cell is
// the foreground of an upper half block and the lower cell its background.
func (g *Game) renderCompact(dst *core.Screen, px *[Rows][Cols]pixel) {
	ox, oy := g.layout.well.X+1, g.layout.well.Y+1

	for y := 0; y < Rows; y += compactStride {
		for x := range Cols {
			top := compactColor(px[y][x])
			bottom := compactColor(px[y+1][x])
			sy := oy + y/compactStride

			switch {
			case top != core.ColorDefault:
				dst.SetCell(ox+x, sy, core.Cell{Rune: UpperHalf, Color: top, Bg: bottom})
			case bottom != core.ColorDefault:
				dst.SetCell(ox+x, sy, core.Cell{Rune: LowerHalf, Color: bottom})
			}
		}
	}
}

// compactColor flattens a pixel to one color; half blocks cannot shade,
// so the ghost is drawn gray.
func compactColor(p pixel) core.Color {
	switch {
	case !p.set:
		return core.ColorDefault
	case p.ghost:
		return core.ColorDarkGray
	default:
		return p.color
	}
}

// renderHUD draws score, lines and key help beside the well.
func (g *Game) renderHUD(dst *core.Screen) {
	x, y := g.layout.hudX, g.layout.hudY

	dst.DrawTextColor(x, y, "TETRIS", core.ColorBrightCyan)
	dst.DrawText(x, y+2, "Score")
	dst.DrawTextColor(x, y+3, fmt.Sprintf("%d", g.st.Score()), core.ColorBrightYellow)
	dst.DrawText(x, y+4, "Lines")
	dst.DrawTextColor(x, y+5, fmt.Sprintf("%d", g.st.Lines()), core.ColorBrightYellow)

	if g.clearTicks > 0 {
		dst.DrawTextColor(x, y+6, clearLabel(g.lastClear), core.ColorBrightMagenta)
	}

	help := []string{
		"←→ move",
		"↑ z rotate",
		"↓ drop",
		"x/spc hard",
		"p pause",
	}
	for i, line := range help {
		dst.DrawTextColor(x, y+7+i, line, core.ColorGray)
	}
}

// clearLabel names a multi-row clear.
func clearLabel(rows int) string {
	switch rows {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorBrightYellow)
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.st.Score())
		dst.DrawMessageBox("GAME OVER", subtitle, core.ColorBrightRed)
	}
}
