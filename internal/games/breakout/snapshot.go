package breakout

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	PaddleX    int
	Score      int
	Lives      int
	State      string
	ServeDelay int

	BallX, BallY   int
	BallVX, BallVY int

	// Flattened [row][col] brick states, 1 = standing
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.wall.Total())
	for _, row := range g.wall.Alive {
		for _, alive := range row {
			if alive {
				brickData = append(brickData, 1)
			} else {
				brickData = append(brickData, 0)
			}
		}
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:    int(g.paddle.X),
		Score:      g.score,
		Lives:      g.lives,
		State:      g.state,
		ServeDelay: g.serveDelay,
		BallX:      int(g.ball.X),
		BallY:      int(g.ball.Y),
		BallVX:     int(g.ball.VX),
		BallVY:     int(g.ball.VY),
		BrickData:  brickData,
	}
}

// ApplySnapshot restores game state from a snapshot taken on a game with
// the same screen size and configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.paddle.X = Fixed(snap.PaddleX)
	g.score = snap.Score
	g.lives = snap.Lives
	g.state = snap.State
	g.serveDelay = snap.ServeDelay
	g.ball.X = Fixed(snap.BallX)
	g.ball.Y = Fixed(snap.BallY)
	g.ball.VX = Fixed(snap.BallVX)
	g.ball.VY = Fixed(snap.BallVY)

	if len(snap.BrickData) == g.wall.Total() {
		for row := range g.wall.Rows {
			for col := range g.wall.Cols {
				g.wall.Alive[row][col] = snap.BrickData[row*g.wall.Cols+col] == 1
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.PaddleX, snap.Score, snap.Lives, snap.ServeDelay,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, c := range []byte(snap.State) {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
