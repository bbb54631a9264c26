// Package core provides fundamental types and utilities for the arcade platform.
// It has no UI dependencies (especially no Bubble Tea) so game logic stays
// pure and testable under any host.
package core

import "cmp"

// Rect is a cell-aligned area: X, Y is the top-left cell, W and H the size.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1 according to the sign of x.
func Sign(x int) int {
	return cmp.Compare(x, 0)
}
