package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, shape Shape) *State {
	t.Helper()
	s := NewState(rand.New(rand.NewSource(1)))
	s.spawn(shape)
	require.False(t, s.GameOver())
	return s
}

func TestNewGameSpawnsCentered(t *testing.T) {
	for shape := ShapeI; shape <= ShapeZ; shape++ {
		t.Run(shape.String(), func(t *testing.T) {
			s := newTestState(t, shape)
			p := s.Active()

			assert.Equal(t, 0, p.Y)
			assert.Equal(t, Cols/2-p.Matrix.Width()/2, p.X)
			assert.Equal(t, shape, s.Shape())
		})
	}
}

func TestNewGameResets(t *testing.T) {
	s := newTestState(t, ShapeO)
	s.HardDrop()
	s.score = 500
	s.gameOver = true

	s.NewGame()

	assert.Zero(t, s.Score())
	assert.Zero(t, s.Lines())
	assert.False(t, s.GameOver())
	assert.Zero(t, s.Board().Filled())
	assert.Equal(t, 1, s.Pieces())
}

func TestMoveRoundTrip(t *testing.T) {
	s := newTestState(t, ShapeT)
	start := s.Active()

	for _, dir := range []int{-1, 1} {
		require.True(t, s.Move(dir))
		require.True(t, s.Move(-dir))
		assert.True(t, start.Equal(s.Active()), "move %d round trip", dir)
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	s := newTestState(t, ShapeO)

	for range 7 {
		require.True(t, s.Move(-1))
	}
	assert.Equal(t, 0, s.Active().X)
	assert.False(t, s.Move(-1))
	assert.Equal(t, 0, s.Active().X)

	for range 14 {
		require.True(t, s.Move(1))
	}
	assert.Equal(t, 14, s.Active().X)
	assert.False(t, s.Move(1))
	assert.Equal(t, 14, s.Active().X)
}

func TestMoveBlockedByCell(t *testing.T) {
	s := newTestState(t, ShapeO)
	s.board[1][9] = 4

	assert.False(t, s.Move(1))
	assert.Equal(t, 7, s.Active().X)
}

func TestRotateInOpenSpace(t *testing.T) {
	s := newTestState(t, ShapeT)
	s.active.Y = 5

	require.True(t, s.RotateCW())
	assert.True(t, Matrix{{3, 0}, {3, 3}, {3, 0}}.Equal(s.Active().Matrix))
	assert.Equal(t, 7, s.Active().X)

	require.True(t, s.RotateCCW())
	assert.True(t, NewMatrix(ShapeT).Equal(s.Active().Matrix))
}

func TestRotateKicksOffWall(t *testing.T) {
	s := newTestState(t, ShapeT)
	s.active = Placement{X: 14, Y: 5, Matrix: Matrix{{3, 0}, {3, 3}, {3, 0}}}

	require.True(t, s.RotateCW())

	p := s.Active()
	assert.Equal(t, 13, p.X)
	assert.Equal(t, 5, p.Y)
	assert.True(t, Matrix{{3, 3, 3}, {0, 3, 0}}.Equal(p.Matrix))
	assert.False(t, Collide(s.Board(), p))
}

func TestRotateFailureLeavesStateUnchanged(t *testing.T) {
	s := newTestState(t, ShapeI)
	s.board[3][6] = 5
	before := s.Active()

	assert.False(t, s.RotateCW())
	assert.True(t, before.Equal(s.Active()))

	// Boxed in on both sides: no kick within the width fits.
	s = newTestState(t, ShapeT)
	s.active = Placement{X: 6, Y: 10, Matrix: Matrix{{3, 0}, {3, 3}, {3, 0}}}
	for y := 10; y <= 12; y++ {
		s.board[y][5] = 1
		s.board[y][8] = 1
	}
	s.board[10][7] = 1
	s.board[12][7] = 1
	before = s.Active()

	assert.False(t, s.RotateCW())
	assert.True(t, before.Equal(s.Active()))
	assert.False(t, s.RotateCCW())
	assert.True(t, before.Equal(s.Active()))
}

func TestHardDropLocksOPiece(t *testing.T) {
	s := newTestState(t, ShapeO)
	require.Equal(t, 7, s.Active().X)
	require.Equal(t, 2, s.Active().Matrix.Width())

	res := s.HardDrop()

	assert.True(t, res.Locked)
	assert.Zero(t, res.Cleared)
	assert.False(t, res.GameOver)
	assert.Equal(t, 4, s.Board().Filled())
	for _, y := range []int{22, 23} {
		for _, x := range []int{7, 8} {
			assert.Equal(t, Cell(2), s.Board().At(x, y), "cell (%d, %d)", x, y)
		}
	}
	assert.Equal(t, 0, s.Active().Y)
}

func TestSoftDropStep(t *testing.T) {
	s := newTestState(t, ShapeO)

	for y := 1; y <= 22; y++ {
		res := s.SoftDropStep()
		require.False(t, res.Locked, "locked early at row %d", y)
		require.Equal(t, y, s.Active().Y)
	}

	res := s.SoftDropStep()
	assert.True(t, res.Locked)
	assert.Equal(t, 4, s.Board().Filled())
	assert.Equal(t, Cell(2), s.Board().At(7, 23))
}

func TestLockClearsRowsAndScores(t *testing.T) {
	s := newTestState(t, ShapeO)
	for x := range 14 {
		s.board[22][x] = 1
		s.board[23][x] = 1
	}
	s.active.X = 14

	res := s.HardDrop()

	assert.True(t, res.Locked)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 300, res.Points)
	assert.Equal(t, 300, s.Score())
	assert.Equal(t, 2, s.Lines())
	assert.Zero(t, s.Board().Filled())
}

func TestRespawnOntoFilledAreaEndsGame(t *testing.T) {
	s := newTestState(t, ShapeO)
	for y := range 2 {
		for x := 4; x < 12; x++ {
			s.board[y][x] = 6
		}
	}
	s.active = Placement{X: 0, Y: 10, Matrix: NewMatrix(ShapeO)}

	res := s.HardDrop()

	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.True(t, s.GameOver())
	// 16 blockers plus the locked O; the new piece is never merged.
	assert.Equal(t, 20, s.Board().Filled())
}

func TestOperationsAfterGameOverAreNoOps(t *testing.T) {
	s := newTestState(t, ShapeO)
	s.gameOver = true
	board := s.Board().Clone()
	active := s.Active()

	assert.False(t, s.Move(1))
	assert.False(t, s.RotateCW())
	assert.Equal(t, LockResult{}, s.SoftDropStep())
	assert.Equal(t, LockResult{}, s.HardDrop())

	assert.Equal(t, board, s.Board())
	assert.True(t, active.Equal(s.Active()))
}

func TestGhostFollowsActive(t *testing.T) {
	s := newTestState(t, ShapeO)
	assert.Equal(t, 22, s.Ghost().Y)

	s.board[15][7] = 3
	assert.Equal(t, 13, s.Ghost().Y)
	assert.Equal(t, 0, s.Active().Y)
}

func TestActiveIsNeverColliding(t *testing.T) {
	s := NewState(rand.New(rand.NewSource(42)))
	ops := []func(){
		func() { s.Move(-1) },
		func() { s.Move(1) },
		func() { s.RotateCW() },
		func() { s.RotateCCW() },
		func() { s.SoftDropStep() },
		func() { s.HardDrop() },
	}

	rng := rand.New(rand.NewSource(7))
	prevScore := 0
	for i := 0; i < 5000 && !s.GameOver(); i++ {
		ops[rng.Intn(len(ops))]()
		if !s.GameOver() {
			require.False(t, Collide(s.Board(), s.Active()), "step %d", i)
		}
		require.GreaterOrEqual(t, s.Score(), prevScore)
		prevScore = s.Score()
	}
}
