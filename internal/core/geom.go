// Package core provides fundamental types and utilities shared by the game
// and the platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in viewport pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// WithinX reports whether r's horizontal span lies fully inside other's.
// Edges are inclusive on both sides.
func (r Rect) WithinX(other Rect) bool {
	return r.X >= other.X && r.Right() <= other.Right()
}

// Above reports whether r's bottom edge is still above other's top edge.
func (r Rect) Above(other Rect) bool {
	return r.Bottom() < other.Y
}

// Cells converts the rectangle to the integer cell span it covers.
// The returned bounds are half-open: [x0, x1) x [y0, y1).
func (r Rect) Cells() (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X))
	y0 = int(math.Floor(r.Y))
	x1 = int(math.Ceil(r.Right()))
	y1 = int(math.Ceil(r.Bottom()))
	return x0, y0, x1, y1
}

// Clamp restricts a value to be within [lo, hi].
// If hi < lo, lo wins.
func Clamp(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
