// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectCentered creates a rectangle of size w×h centered on (cx, cy).
func RectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
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
// Rectangles that merely share an edge do not intersect, and a rectangle
// with no area never intersects anything.
func (r Rect) Intersects(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Shrink returns the rectangle reduced by pad on every side, keeping its center.
// The result never has negative dimensions.
func (r Rect) Shrink(pad float64) Rect {
	cx, cy := r.Center()
	return RectCentered(cx, cy, math.Max(r.W-2*pad, 0), math.Max(r.H-2*pad, 0))
}

// RotatedBounds returns the size of the axis-aligned box enclosing a w×h
// rectangle rotated by deg degrees.
func RotatedBounds(w, h, deg float64) (float64, float64) {
	rad := Radians(deg)
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	return w*c + h*s, w*s + h*c
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod of a tiny negative value can round up to exactly 360
	if a >= 360 {
		a = 0
	}
	return a
}
