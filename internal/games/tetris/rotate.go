package tetris

// Rotation directions.
const (
	Clockwise        = 1
	CounterClockwise = -1
)

// Rotate returns m turned a quarter turn. dir > 0 is clockwise.
// The result has swapped dimensions; the input is never modified.
func Rotate(m Matrix, dir int) Matrix {
	h := m.Height()
	w := m.Width()

	out := make(Matrix, w)
	for i := range out {
		out[i] = make([]Cell, h)
	}

	for y := range h {
		for x := range w {
			if dir > 0 {
				out[x][h-1-y] = m[y][x]
			} else {
				out[w-1-x][y] = m[y][x]
			}
		}
	}
	return out
}
