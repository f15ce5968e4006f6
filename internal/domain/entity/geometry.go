package entity

// Point is a pointer position in host coordinates.
type Point struct {
	X, Y float64
}

// Rect is a pane's screen area. Bounds are half-open: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ShorterSide returns min(W, H).
func (r Rect) ShorterSide() float64 {
	if r.W < r.H {
		return r.W
	}
	return r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
