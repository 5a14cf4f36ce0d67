// Package core provides fundamental types and utilities for the cafe platform.
// It contains no external dependencies (especially no Bubble Tea) so that the
// kitchen and session logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells. The game uses it to hit-test
// pointer clicks against buttons and stations.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Point is a position in continuous world units (pizza space is centered on 0,0).
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance from p to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Len returns the distance of p from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the direction of p from the origin in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Polar returns the point at distance r from the origin in direction angle.
func Polar(r, angle float64) Point {
	return Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
