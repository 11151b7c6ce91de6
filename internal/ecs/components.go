package ecs

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/asciihero/internal/world"
)

// Position is an entity's location in grid coordinates.
type Position struct {
	X, Y int
}

// Point returns the position as a world.Point.
func (p Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Viewshed is the set of tiles an entity can currently see.
// Dirty means VisibleTiles no longer matches the entity's position and must be recomputed.
type Viewshed struct {
	VisibleTiles mapset.Set[world.Point]
	Range        int
	Dirty        bool
}

// NewViewshed creates an empty, dirty viewshed with the given sight range.
func NewViewshed(sightRange int) Viewshed {
	return Viewshed{
		VisibleTiles: mapset.New[world.Point](),
		Range:        sightRange,
		Dirty:        true,
	}
}

// CanSee reports whether p is in the visible set.
func (v *Viewshed) CanSee(p world.Point) bool {
	return v.VisibleTiles.Has(p)
}

// Player tags the entity whose sight reveals the map.
type Player struct{}

// Monster tags hostile entities.
type Monster struct{}

// BlocksTile tags entities that occupy their tile.
// Movement does not consult it yet.
type BlocksTile struct{}

// Name is a display name.
type Name struct {
	Name string
}

// Renderable is how an entity is drawn.
type Renderable struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}
