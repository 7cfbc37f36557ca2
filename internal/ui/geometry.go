package ui

import "math"

// Unbounded is the available width given to children that may grow freely
const Unbounded = math.MaxInt32

// Point is a screen position in terminal cells
type Point struct {
	X, Y int
}

// Size is a width and height in terminal cells
type Size struct {
	W, H int
}

// Rect is a rectangle in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Right returns the first column right of the rectangle
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first line below the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersect returns the overlap of two rectangles (zero size if disjoint)
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
