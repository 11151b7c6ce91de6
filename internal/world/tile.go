// Package world provides dungeon generation and the tile grid it produces.
package world

// TileKind represents what occupies a single map cell.
type TileKind rune

const (
	// TileWall is an opaque, impassable tile.
	TileWall TileKind = '#'
	// TileFloor is a transparent, passable tile.
	TileFloor TileKind = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t TileKind) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks line of sight.
func (t TileKind) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t TileKind) Rune() rune {
	return rune(t)
}

// String returns a readable tile name.
func (t TileKind) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
