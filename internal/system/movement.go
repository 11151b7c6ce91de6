// Package system holds the per-turn systems that operate on the ECS world and the tile grid.
package system

import (
	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/world"
)

// TryMove moves an entity by (dx, dy) unless the destination is a wall.
//
// A rejected move leaves the position and the viewshed untouched. An accepted
// move marks the viewshed dirty. Entities do not block each other.
func TryMove(w *ecs.World, grid *world.TileGrid, e ecs.Entity, dx, dy int) bool {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return false
	}

	targetX, targetY := pos.X+dx, pos.Y+dy
	if !grid.IsPassable(targetX, targetY) {
		return false
	}

	pos.X = clamp(targetX, 0, grid.Width-1)
	pos.Y = clamp(targetY, 0, grid.Height-1)

	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.Dirty = true
	}
	return true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
