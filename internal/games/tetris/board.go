package tetris

import "fmt"

// Board dimensions. One size only.
const (
	Rows = 24
	Cols = 16
)

// Placement is a piece matrix positioned on the board.
// Matrix cell (lx, ly) lands on board cell (X+lx, Y+ly).
type Placement struct {
	X, Y   int
	Matrix Matrix
}

// Clone returns a placement with its own copy of the matrix.
func (p Placement) Clone() Placement {
	return Placement{X: p.X, Y: p.Y, Matrix: p.Matrix.Clone()}
}

// Equal reports whether two placements have the same position and matrix.
func (p Placement) Equal(other Placement) bool {
	return p.X == other.X && p.Y == other.Y && p.Matrix.Equal(other.Matrix)
}

// each calls fn with the absolute coordinates of every filled cell.
func (p Placement) each(fn func(x, y int, v Cell)) {
	for ly, row := range p.Matrix {
		for lx, v := range row {
			if v != Empty {
				fn(p.X+lx, p.Y+ly, v)
			}
		}
	}
}

// Board is the playfield, indexed [row][col] with row 0 at the top.
type Board [][]Cell

// NewBoard returns an empty Rows x Cols board.
func NewBoard() Board {
	b := make(Board, Rows)
	for y := range b {
		b[y] = make([]Cell, Cols)
	}
	return b
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// At returns the cell at (x, y). Panics when out of range.
func (b Board) At(x, y int) Cell {
	b.mustContain(x, y)
	return b[y][x]
}

// Inside reports whether (x, y) lies on the board.
func (b Board) Inside(x, y int) bool {
	return y >= 0 && y < len(b) && x >= 0 && x < len(b[y])
}

func (b Board) mustContain(x, y int) {
	if !b.Inside(x, y) {
		panic(fmt.Sprintf("tetris: board access out of range (%d, %d)", x, y))
	}
}

// Merge writes the placement's filled cells into the board.
// The placement must already be known not to collide.
func (b Board) Merge(p Placement) {
	p.each(func(x, y int, v Cell) {
		b.mustContain(x, y)
		b[y][x] = v
	})
}

// Collide reports whether any filled cell of p is off the board or
// overlaps an occupied cell. Both rows and columns are bounds-checked.
func Collide(b Board, p Placement) bool {
	hit := false
	p.each(func(x, y int, _ Cell) {
		if hit {
			return
		}
		if !b.Inside(x, y) || b[y][x] != Empty {
			hit = true
		}
	})
	return hit
}

// rowFull reports whether row y has no empty cells.
func (b Board) rowFull(y int) bool {
	for _, v := range b[y] {
		if v == Empty {
			return false
		}
	}
	return true
}

// Sweep removes every full row, shifting the rows above down and
// inserting empty rows at the top. Rows are scanned bottom-up and the
// same index is re-checked after each removal, so stacked full rows are
// all found in one pass. Returns the rows cleared and the points earned.
func (b Board) Sweep() (cleared, points int) {
	multiplier := 1
	for y := len(b) - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}

		removed := b[y]
		copy(b[1:y+1], b[:y])
		clear(removed)
		b[0] = removed

		cleared++
		points += BaseLinePoints * multiplier
		multiplier *= 2
	}
	return cleared, points
}

// Project returns p moved straight down to the lowest row where it
// does not collide. Used for the ghost piece; p itself is untouched.
func Project(b Board, p Placement) Placement {
	ghost := Placement{X: p.X, Y: p.Y, Matrix: p.Matrix}
	for !Collide(b, ghost) {
		ghost.Y++
	}
	ghost.Y--
	return ghost
}

// Filled returns the number of occupied cells on the board.
func (b Board) Filled() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// Height returns the number of rows from the highest occupied cell to the
// floor, or 0 for an empty board.
func (b Board) Height() int {
	for y, row := range b {
		for _, v := range row {
			if v != Empty {
				return len(b) - y
			}
		}
	}
	return 0
}
