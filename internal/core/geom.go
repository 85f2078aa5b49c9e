// Package core provides fundamental types shared by the engine and its hosts.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// so the simulation stays pure and testable.
package core

// Rect represents an axis-aligned rectangle on a screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
// When max < min the result is min, so an empty range clamps to its floor.
func Clamp(val, min, max int) int {
	if val > max {
		val = max
	}
	if val < min {
		return min
	}
	return val
}
