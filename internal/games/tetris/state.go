package tetris

import (
	"math/rand"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// LockResult describes the outcome of a drop that locked the active piece.
// The zero value means the piece is still falling.
type LockResult struct {
	Locked   bool // Piece merged into the board
	Cleared  int  // Rows removed by the sweep
	Points   int  // Score gained from the sweep
	GameOver bool // The next piece could not spawn
}

// State owns one Tetris game: the board, the active piece, the score and
// the game-over flag. All mutation goes through its methods; it is not
// safe for concurrent use.
type State struct {
	board    Board
	active   Placement
	shape    Shape
	score    int
	lines    int
	pieces   int
	gameOver bool
	rng      *rand.Rand
}

// NewState creates a game using rng for piece selection and starts it.
func NewState(rng *rand.Rand) *State {
	s := &State{rng: rng}
	s.NewGame()
	return s
}

// NewGame discards the current game and starts a fresh one with an
// empty board, zero score, and a newly spawned piece.
func (s *State) NewGame() {
	s.board = NewBoard()
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.gameOver = false
	s.respawn()
}

// respawn replaces the active piece with a random one at the top center.
func (s *State) respawn() {
	s.spawn(RandomShape(s.rng))
}

// spawn places a fresh shape at row 0, horizontally centered. If the
// spawn position is already blocked the game ends; nothing is merged.
func (s *State) spawn(shape Shape) {
	m := NewMatrix(shape)
	s.shape = shape
	s.active = Placement{
		X:      Cols/2 - m.Width()/2,
		Y:      0,
		Matrix: m,
	}
	s.pieces++

	if Collide(s.board, s.active) {
		s.gameOver = true
	}
}

// Move shifts the active piece one column (dir is -1 or +1).
// Returns false when the move was blocked and reverted.
func (s *State) Move(dir int) bool {
	if s.gameOver {
		return false
	}

	s.active.X += dir
	if Collide(s.board, s.active) {
		s.active.X -= dir
		return false
	}
	return true
}

// Rotate turns the active piece (dir > 0 clockwise). When the rotated
// piece collides, horizontal kicks of 1, -2, 3, -4, ... are applied
// cumulatively until it fits. The search gives up once the next kick
// would exceed the rotated width, restoring the original matrix and column.
func (s *State) Rotate(dir int) bool {
	if s.gameOver {
		return false
	}

	origX := s.active.X
	orig := s.active.Matrix
	s.active.Matrix = Rotate(orig, dir)

	offset := 1
	for Collide(s.board, s.active) {
		s.active.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}

		if core.Abs(offset) > s.active.Matrix.Width() {
			s.active.Matrix = orig
			s.active.X = origX
			return false
		}
	}
	return true
}

// RotateCW rotates the active piece clockwise.
func (s *State) RotateCW() bool {
	return s.Rotate(Clockwise)
}

// RotateCCW rotates the active piece counter-clockwise.
func (s *State) RotateCCW() bool {
	return s.Rotate(CounterClockwise)
}

// SoftDropStep moves the active piece down one row. If it cannot move,
// the piece locks where it is and the next piece spawns.
func (s *State) SoftDropStep() LockResult {
	if s.gameOver {
		return LockResult{}
	}

	s.active.Y++
	if !Collide(s.board, s.active) {
		return LockResult{}
	}
	s.active.Y--
	return s.lock()
}

// HardDrop drops the active piece as far as it goes and locks it.
func (s *State) HardDrop() LockResult {
	if s.gameOver {
		return LockResult{}
	}

	for !Collide(s.board, s.active) {
		s.active.Y++
	}
	s.active.Y--
	return s.lock()
}

// lock merges the active piece, clears full rows, and spawns the next piece.
func (s *State) lock() LockResult {
	s.board.Merge(s.active)

	cleared, points := s.board.Sweep()
	s.score += points
	s.lines += cleared

	s.respawn()

	return LockResult{
		Locked:   true,
		Cleared:  cleared,
		Points:   points,
		GameOver: s.gameOver,
	}
}

// Board returns the live playfield. Callers must not modify it.
func (s *State) Board() Board {
	return s.board
}

// Active returns a copy of the active piece placement.
func (s *State) Active() Placement {
	return s.active.Clone()
}

// Shape returns the shape of the active piece.
func (s *State) Shape() Shape {
	return s.shape
}

// Ghost returns where the active piece would land on a hard drop.
func (s *State) Ghost() Placement {
	return Project(s.board, s.active)
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Lines returns the total rows cleared this game.
func (s *State) Lines() int {
	return s.lines
}

// Pieces returns how many pieces have spawned this game.
func (s *State) Pieces() int {
	return s.pieces
}

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool {
	return s.gameOver
}
