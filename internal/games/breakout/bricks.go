// Package breakout implements a Breakout-style brick breaker: one ball,
// one paddle, and a fixed wall of bricks that must all be cleared.
package breakout

import "github.com/vovakirdan/block-arcade/internal/core"

// Wall is the grid of bricks and where it sits on screen.
type Wall struct {
	Rows, Cols int
	Points     int      // Score per brick
	Alive      [][]bool // [row][col]

	// Layout in cells
	Left        int // Column of the first brick
	Top         int // Row of the first brick
	BrickWidth  int
	BrickHeight int
	Gap         int // Columns between bricks
}

// NewWall creates a full wall of rows x cols bricks laid out across the
// interior columns [left, right].
func NewWall(rows, cols, points int, f Field, top int) *Wall {
	w := &Wall{
		Rows:        rows,
		Cols:        cols,
		Points:      points,
		Top:         top,
		BrickHeight: 1,
		Gap:         1,
	}

	inner := f.Right - f.Left + 1
	w.BrickWidth = max(1, (inner-(cols+1)*w.Gap)/cols)
	span := cols*w.BrickWidth + (cols-1)*w.Gap
	w.Left = f.Left + (inner-span)/2

	w.Alive = make([][]bool, rows)
	for r := range w.Alive {
		w.Alive[r] = make([]bool, cols)
		for c := range w.Alive[r] {
			w.Alive[r][c] = true
		}
	}
	return w
}

// Remaining returns the number of bricks still standing.
func (w *Wall) Remaining() int {
	n := 0
	for _, row := range w.Alive {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Total returns the number of bricks in a full wall.
func (w *Wall) Total() int {
	return w.Rows * w.Cols
}

// Rect returns the screen area of the brick at (row, col).
func (w *Wall) Rect(row, col int) core.Rect {
	return core.NewRect(
		w.Left+col*(w.BrickWidth+w.Gap),
		w.Top+row*w.BrickHeight,
		w.BrickWidth,
		w.BrickHeight,
	)
}

// At returns the brick covering cell (x, y), or ok=false when the cell is
// in a gap, outside the wall, or the brick is already gone.
func (w *Wall) At(x, y int) (row, col int, ok bool) {
	if y < w.Top || x < w.Left {
		return -1, -1, false
	}
	row = (y - w.Top) / w.BrickHeight
	col = (x - w.Left) / (w.BrickWidth + w.Gap)
	if row >= w.Rows || col >= w.Cols || !w.Rect(row, col).Contains(x, y) {
		return -1, -1, false
	}
	return row, col, w.Alive[row][col]
}

// Hit removes the brick under the ball, if any, and reports the points won.
func (w *Wall) Hit(ball *Ball) (points int, hit bool) {
	row, col, ok := w.At(ball.CellX(), ball.CellY())
	if !ok {
		return 0, false
	}
	w.Alive[row][col] = false
	return w.Points, true
}
