package tetris

import (
	"encoding/binary"
	"hash/fnv"
	"time"
)

// Snapshot contains the complete observable game state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lines       int
	Pieces      int
	State       string
	DropCounter time.Duration

	// Active piece
	Shape   int
	PieceX  int
	PieceY  int
	PieceW  int
	PieceH  int
	Piece   []uint8 // Row-major matrix cells
	Board   []uint8 // Row-major, Rows*Cols cells
	GhostY  int
	Cleared int // Rows cleared by the last lock
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	board := make([]uint8, 0, Rows*Cols)
	for _, row := range g.st.Board() {
		for _, v := range row {
			board = append(board, uint8(v))
		}
	}

	active := g.st.Active()
	piece := make([]uint8, 0, active.Matrix.Height()*active.Matrix.Width())
	for _, row := range active.Matrix {
		for _, v := range row {
			piece = append(piece, uint8(v))
		}
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:       g.st.Score(),
		Lines:       g.st.Lines(),
		Pieces:      g.st.Pieces(),
		State:       g.state,
		DropCounter: g.dropCounter,

		Shape:   int(g.st.Shape()),
		PieceX:  active.X,
		PieceY:  active.Y,
		PieceW:  active.Matrix.Width(),
		PieceH:  active.Matrix.Height(),
		Piece:   piece,
		Board:   board,
		GhostY:  g.st.Ghost().Y,
		Cleared: g.lastClear,
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}

	binary.LittleEndian.PutUint64(buf[:], snap.Tick)
	h.Write(buf[:])
	for _, v := range []int{
		snap.Score, snap.Lines, snap.Pieces, int(snap.DropCounter),
		snap.Shape, snap.PieceX, snap.PieceY, snap.PieceW, snap.PieceH,
		snap.GhostY, snap.Cleared,
	} {
		writeInt(v)
	}
	h.Write([]byte(snap.State))
	h.Write(snap.Piece)
	h.Write(snap.Board)

	return h.Sum64()
}
