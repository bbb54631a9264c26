package tetris

import (
	"math/rand"
	"strings"
)

// Cell is a single board or piece square.
// 0 is empty; 1..7 is occupied and identifies the shape (and its color).
type Cell uint8

// Empty is the zero cell value.
const Empty Cell = 0

// Shape identifies one of the seven tetrominoes.
type Shape Cell

const (
	ShapeI Shape = iota + 1
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

// ShapeCount is the number of distinct shapes in the catalog.
const ShapeCount = 7

// String returns the conventional letter for the shape.
func (s Shape) String() string {
	if s < ShapeI || s > ShapeZ {
		return "?"
	}
	return string("IOTJLSZ"[s-1])
}

// Matrix is a rectangular grid of cells, indexed [row][col].
// Pieces are not always square: I is 1x4 at spawn, T is 2x3.
type Matrix [][]Cell

// catalog holds the canonical spawn orientation of each shape.
var catalog = [ShapeCount + 1]Matrix{
	ShapeI: {{1, 1, 1, 1}},
	ShapeO: {{2, 2}, {2, 2}},
	ShapeT: {{0, 3, 0}, {3, 3, 3}},
	ShapeJ: {{4, 0, 0}, {4, 4, 4}},
	ShapeL: {{0, 0, 5}, {5, 5, 5}},
	ShapeS: {{6, 6, 0}, {0, 6, 6}},
	ShapeZ: {{0, 7, 7}, {7, 7, 0}},
}

// NewMatrix returns a fresh copy of the shape's canonical matrix.
// Panics on an id outside 1..7.
func NewMatrix(s Shape) Matrix {
	if s < ShapeI || s > ShapeZ {
		panic("tetris: unknown shape id")
	}
	return catalog[s].Clone()
}

// RandomShape picks one of the seven shapes uniformly.
func RandomShape(rng *rand.Rand) Shape {
	return Shape(rng.Intn(ShapeCount) + 1)
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Equal reports whether two matrices have the same shape and contents.
func (m Matrix) Equal(other Matrix) bool {
	if m.Height() != other.Height() || m.Width() != other.Width() {
		return false
	}
	for y := range m {
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Filled returns the number of nonzero cells.
func (m Matrix) Filled() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the matrix as rows of digits, '.' for empty.
func (m Matrix) String() string {
	var sb strings.Builder
	for y, row := range m {
		if y > 0 {
			sb.WriteByte('/')
		}
		for _, v := range row {
			if v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
	}
	return sb.String()
}
