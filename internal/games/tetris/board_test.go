package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b Board, y int, v Cell) {
	for x := range b[y] {
		b[y][x] = v
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for s := ShapeI; s <= ShapeZ; s++ {
		t.Run(s.String(), func(t *testing.T) {
			m := NewMatrix(s)
			cw, ccw := m, m
			for range 4 {
				cw = Rotate(cw, Clockwise)
				ccw = Rotate(ccw, CounterClockwise)
			}
			assert.True(t, m.Equal(cw), "cw x4: got %s, want %s", cw, m)
			assert.True(t, m.Equal(ccw), "ccw x4: got %s, want %s", ccw, m)
		})
	}
}

func TestRotateNonSquare(t *testing.T) {
	tests := []struct {
		name string
		in   Matrix
		dir  int
		want Matrix
	}{
		{"T cw", NewMatrix(ShapeT), Clockwise, Matrix{{3, 0}, {3, 3}, {3, 0}}},
		{"T ccw", NewMatrix(ShapeT), CounterClockwise, Matrix{{0, 3}, {3, 3}, {0, 3}}},
		{"I cw", NewMatrix(ShapeI), Clockwise, Matrix{{1}, {1}, {1}, {1}}},
		{"J cw", NewMatrix(ShapeJ), Clockwise, Matrix{{4, 4}, {4, 0}, {4, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()
			got := Rotate(tt.in, tt.dir)

			assert.Equal(t, tt.in.Width(), got.Height())
			assert.Equal(t, tt.in.Height(), got.Width())
			assert.True(t, tt.want.Equal(got), "Rotate() = %s, expected %s", got, tt.want)
			assert.True(t, before.Equal(tt.in), "input was modified")
		})
	}
}

func TestNewMatrixIsIndependent(t *testing.T) {
	m := NewMatrix(ShapeO)
	m[0][0] = 7

	fresh := NewMatrix(ShapeO)
	assert.Equal(t, Cell(2), fresh[0][0])
	assert.Equal(t, 4, fresh.Filled())
}

func TestNewMatrixUnknownShape(t *testing.T) {
	assert.Panics(t, func() { NewMatrix(0) })
	assert.Panics(t, func() { NewMatrix(8) })
}

func TestCatalogHasNoEmptyBorder(t *testing.T) {
	for s := ShapeI; s <= ShapeZ; s++ {
		m := NewMatrix(s)
		require.Equal(t, 4, m.Filled(), "shape %s", s)

		for y, row := range m {
			filled := false
			for _, v := range row {
				if v != Empty {
					assert.Equal(t, Cell(s), v, "shape %s has a foreign cell", s)
					filled = true
				}
			}
			assert.True(t, filled, "shape %s row %d is empty", s, y)
		}
		for x := range m.Width() {
			filled := false
			for y := range m {
				filled = filled || m[y][x] != Empty
			}
			assert.True(t, filled, "shape %s column %d is empty", s, x)
		}
	}
}

func TestCollide(t *testing.T) {
	o := NewMatrix(ShapeO)

	occupied := NewBoard()
	occupied[5][5] = 3

	tests := []struct {
		name  string
		board Board
		p     Placement
		want  bool
	}{
		{"empty space", NewBoard(), Placement{X: 0, Y: 0, Matrix: o}, false},
		{"resting on floor", NewBoard(), Placement{X: 7, Y: 22, Matrix: o}, false},
		{"below last row", NewBoard(), Placement{X: 7, Y: 23, Matrix: o}, true},
		{"left of wall", NewBoard(), Placement{X: -1, Y: 0, Matrix: o}, true},
		{"right of wall", NewBoard(), Placement{X: 15, Y: 0, Matrix: o}, true},
		{"above top", NewBoard(), Placement{X: 0, Y: -1, Matrix: o}, true},
		{"overlap", occupied, Placement{X: 4, Y: 4, Matrix: o}, true},
		{"beside block", occupied, Placement{X: 6, Y: 4, Matrix: o}, false},
		// Empty matrix cells never collide.
		{"hollow corner", occupied, Placement{X: 5, Y: 4, Matrix: Matrix{{0, 3, 0}, {3, 3, 3}}}, true},
		{"hollow miss", occupied, Placement{X: 5, Y: 5, Matrix: Matrix{{0, 3, 0}, {3, 3, 3}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board.Clone()
			assert.Equal(t, tt.want, Collide(tt.board, tt.p))
			assert.Equal(t, before, tt.board)
		})
	}
}

func TestSweepThreeRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, 23, 1)
	fillRow(b, 22, 4)
	fillRow(b, 21, 6)
	b[20][0] = 3

	cleared, points := b.Sweep()

	assert.Equal(t, 3, cleared)
	assert.Equal(t, 700, points)
	assert.Len(t, b, Rows)
	assert.Equal(t, 1, b.Filled())
	assert.Equal(t, Cell(3), b[23][0])
	for y := range 3 {
		for _, v := range b[y] {
			assert.Equal(t, Empty, v)
		}
	}
}

func TestSweepSeparatedRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, 23, 1)
	b[22][4] = 5
	fillRow(b, 21, 2)

	cleared, points := b.Sweep()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, 300, points)
	assert.Equal(t, 1, b.Filled())
	assert.Equal(t, Cell(5), b[23][4])
}

func TestSweepNoFullRows(t *testing.T) {
	b := NewBoard()
	b[23][0] = 1
	before := b.Clone()

	cleared, points := b.Sweep()

	assert.Zero(t, cleared)
	assert.Zero(t, points)
	assert.Equal(t, before, b)
}

func TestSweepRowsAreIndependent(t *testing.T) {
	b := NewBoard()
	fillRow(b, 23, 1)
	b.Sweep()

	b[0][0] = 2
	for y := 1; y < Rows; y++ {
		assert.Equal(t, Empty, b[y][0], "row %d aliases row 0", y)
	}
}

func TestLinePoints(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 700},
		{4, 1500},
	}

	for _, tt := range tests {
		if got := LinePoints(tt.n); got != tt.want {
			t.Errorf("LinePoints(%d) = %d, expected %d", tt.n, got, tt.want)
		}
	}
}

func TestMergePanicsOutOfRange(t *testing.T) {
	b := NewBoard()
	assert.Panics(t, func() {
		b.Merge(Placement{X: 15, Y: 0, Matrix: NewMatrix(ShapeO)})
	})
}

func TestProject(t *testing.T) {
	b := NewBoard()
	p := Placement{X: 7, Y: 0, Matrix: NewMatrix(ShapeO)}

	assert.Equal(t, 22, Project(b, p).Y)

	b[10][8] = 1
	ghost := Project(b, p)
	assert.Equal(t, 8, ghost.Y)
	assert.Equal(t, 7, ghost.X)
	assert.Equal(t, 0, p.Y)
}

func TestBoardHeight(t *testing.T) {
	b := NewBoard()
	assert.Zero(t, b.Height())

	b[20][3] = 1
	assert.Equal(t, 4, b.Height())
}
