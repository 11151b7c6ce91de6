package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle used for room placement.
// The carved interior of a room is X1+1..=X2, Y1+1..=Y2.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle at (x, y) with the given width and height.
// The caller guarantees w > 0 and h > 0.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects returns true if the closed ranges of both rectangles overlap on both axes.
// Rectangles that merely share an edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the integer midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// CenterPoint returns Center as a Point.
func (r Rect) CenterPoint() Point {
	x, y := r.Center()
	return Point{X: x, Y: y}
}

// Contains returns true if the point lies in the carved interior of the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}
