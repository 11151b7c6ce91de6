package system

import (
	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/world"
)

var policies = []RecomputePolicy{RecomputeDirty, RecomputeAlways}

// floorGrid creates an all-floor grid with walls at the given points.
func floorGrid(width, height int, walls ...world.Point) *world.TileGrid {
	g := world.NewTileGrid(width, height)
	for i := range g.Tiles {
		g.Tiles[i] = world.TileFloor
	}
	for _, p := range walls {
		g.SetTile(p.X, p.Y, world.TileWall)
	}
	return g
}

// spawnViewer creates an entity with a position and a viewshed, optionally tagged as the player.
func spawnViewer(w *ecs.World, x, y, sightRange int, player bool) ecs.Entity {
	e := w.Spawn()
	w.Positions.Insert(e, ecs.Position{X: x, Y: y})
	w.Viewsheds.Insert(e, ecs.NewViewshed(sightRange))
	if player {
		w.Players.Insert(e, ecs.Player{})
	}
	return e
}
