package tetris

// BaseLinePoints is awarded for the first row cleared in a sweep.
// Each further row in the same sweep is worth double the previous one.
const BaseLinePoints = 100

// LinePoints returns the total awarded for n rows cleared in one sweep:
// 100, 300, 700, 1500 for one to four rows.
func LinePoints(n int) int {
	if n <= 0 {
		return 0
	}
	return BaseLinePoints * ((1 << n) - 1)
}
