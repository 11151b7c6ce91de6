// Package fov computes field of view with symmetric shadowcasting.
//
// The scan walks each of the four cardinal quadrants row by row, tracking the
// visible arc as a pair of slopes. Slopes are kept as exact fractions so the
// result is independent of floating point rounding. A floor tile is visible
// only if its centre lies inside the arc, which makes visibility symmetric:
// if A can see B then B can see A. Opaque tiles are visible when any part of
// them is inside the arc, so walls bounding a room are seen.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/asciihero/internal/world"
)

// Opacity answers line-of-sight queries. Coordinates outside the map must report opaque.
type Opacity interface {
	IsOpaqueAt(x, y int) bool
}

// Compute returns every tile visible from origin within Euclidean distance radius.
// The origin is always included. Points outside the map may be returned;
// callers filter them against their own bounds.
func Compute(origin world.Point, radius int, m Opacity) mapset.Set[world.Point] {
	visible := mapset.New[world.Point]()
	visible.Put(origin)
	if radius <= 0 {
		return visible
	}

	for _, q := range quadrants {
		s := scanner{
			origin:  origin,
			quad:    q,
			radius:  radius,
			opacity: m,
			visible: visible,
		}
		s.scan(row{depth: 1, start: fraction{-1, 1}, end: fraction{1, 1}})
	}
	return visible
}

// quadrant maps (depth, col) in scan space to a grid delta.
type quadrant struct {
	dx, dy   int // step per row
	cdx, cdy int // step per column
}

var quadrants = [4]quadrant{
	{dx: 0, dy: -1, cdx: 1, cdy: 0}, // north
	{dx: 0, dy: 1, cdx: 1, cdy: 0},  // south
	{dx: 1, dy: 0, cdx: 0, cdy: 1},  // east
	{dx: -1, dy: 0, cdx: 0, cdy: 1}, // west
}

// fraction is num/den with den > 0.
type fraction struct {
	num, den int
}

type row struct {
	depth      int
	start, end fraction
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// minCol rounds depth*start to the nearest column, ties up.
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol rounds depth*end to the nearest column, ties down.
func (r row) maxCol() int {
	return ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
}

// isSymmetric reports whether the centre of the tile at col lies inside the row's arc.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// slope returns the slope of the left edge of a tile.
func slope(depth, col int) fraction {
	return fraction{num: 2*col - 1, den: 2 * depth}
}

type scanner struct {
	origin  world.Point
	quad    quadrant
	radius  int
	opacity Opacity
	visible mapset.Set[world.Point]
}

func (s *scanner) point(depth, col int) world.Point {
	return world.Point{
		X: s.origin.X + depth*s.quad.dx + col*s.quad.cdx,
		Y: s.origin.Y + depth*s.quad.dy + col*s.quad.cdy,
	}
}

func (s *scanner) inRange(depth, col int) bool {
	return depth*depth+col*col <= s.radius*s.radius
}

func (s *scanner) scan(r row) {
	if r.depth > s.radius {
		return
	}

	prevKnown, prevWall := false, false
	for col := r.minCol(); col <= r.maxCol(); col++ {
		p := s.point(r.depth, col)
		wall := s.opacity.IsOpaqueAt(p.X, p.Y)

		if (wall || r.isSymmetric(col)) && s.inRange(r.depth, col) {
			s.visible.Put(p)
		}
		if prevKnown && prevWall && !wall {
			r.start = slope(r.depth, col)
		}
		if prevKnown && !prevWall && wall {
			inner := r.next()
			inner.end = slope(r.depth, col)
			s.scan(inner)
		}
		prevKnown, prevWall = true, wall
	}
	if prevKnown && !prevWall {
		s.scan(r.next())
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
