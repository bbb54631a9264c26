package breakout

// Fixed-point scale factor: 1 cell = 1000 units.
// Integer positions keep the simulation deterministic across hosts.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate, rounding toward
// negative infinity so positions just left of zero land in cell -1.
func (f Fixed) ToCell() int {
	if f < 0 {
		return (int(f) - Scale + 1) / Scale
	}
	return int(f) / Scale
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Ball is the single ball, positioned by its center.
type Ball struct {
	X, Y   Fixed
	VX, VY Fixed // Velocity per tick
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Paddle is the player's paddle on a fixed row near the bottom.
type Paddle struct {
	X     Fixed // Left edge
	Y     int   // Cell row
	Width int   // Width in cells
}

// CellX returns paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X + ToFixed(p.Width).Div(2)
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() Fixed {
	return p.X + ToFixed(p.Width)
}

// Field is the interior of the playfield in cells. Left, right and top
// are walls; the bottom is open.
type Field struct {
	Left, Right int // Inclusive columns the ball may occupy
	Top         int // First row the ball may occupy
	Bottom      int // Rows at or past this are out of play
}

// BounceWalls reflects the ball off the side walls and ceiling, clamping it
// back inside. Returns whether a bounce happened and whether the ball has
// dropped out of the bottom of the field.
func BounceWalls(ball *Ball, f Field) (bounced, fellOff bool) {
	switch {
	case ball.X < ToFixed(f.Left):
		ball.X = ToFixed(f.Left)
		ball.VX = ball.VX.Abs()
		bounced = true
	case ball.X >= ToFixed(f.Right+1):
		ball.X = ToFixed(f.Right+1) - 1
		ball.VX = -ball.VX.Abs()
		bounced = true
	}

	if ball.Y < ToFixed(f.Top) {
		ball.Y = ToFixed(f.Top)
		ball.VY = ball.VY.Abs()
		bounced = true
	}

	return bounced, ball.Y >= ToFixed(f.Bottom)
}

// BouncePaddle reflects a descending ball that reaches the paddle row
// within the paddle's span. The horizontal speed is set from where the
// ball struck: center sends it straight up, edges send it off at an angle.
// speed is the vertical speed after the bounce.
func BouncePaddle(ball *Ball, paddle *Paddle, speed Fixed) bool {
	if ball.VY <= 0 {
		return false
	}

	row := ball.CellY()
	if row != paddle.Y && row != paddle.Y-1 {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.Right() {
		return false
	}

	// -Scale at the left edge, +Scale at the right edge
	half := ToFixed(paddle.Width).Div(2)
	var hit Fixed
	if half > 0 {
		hit = (ball.X - paddle.CenterX()).Mul(Scale).Div(int(half))
	}

	ball.VY = -speed
	ball.VX = hit.Mul(int(speed)).Div(Scale)
	ball.Y = ToFixed(paddle.Y) - 1

	return true
}
