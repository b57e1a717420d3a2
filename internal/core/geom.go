// Package core provides fundamental types and utilities for the arena engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or velocity in arena coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of the vector.
// Cheaper than Len when only comparisons are needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rect represents an axis-aligned rectangle in arena coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ClosestPoint returns the point on (or inside) the rectangle nearest to p.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.X, r.Right()),
		Y: ClampF(p.Y, r.Y, r.Bottom()),
	}
}

// CircleOverlapsRect reports whether a circle at center with the given
// radius overlaps the rectangle. Uses the squared distance from the circle
// center to the nearest point on the rectangle.
func CircleOverlapsRect(center Vec2, radius float64, r Rect) bool {
	return r.ClosestPoint(center).Sub(center).LenSq() < radius*radius
}

// CirclesOverlap reports whether two circles overlap. Size values are
// diameter-equivalents: overlap means the center distance is less than
// half the sum of the two sizes.
func CirclesOverlap(a Vec2, sizeA float64, b Vec2, sizeB float64) bool {
	half := (sizeA + sizeB) / 2
	return a.Sub(b).LenSq() < half*half
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
