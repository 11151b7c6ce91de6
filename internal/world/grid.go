package world

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a grid's backing arrays do not match width*height.
var ErrDimensionMismatch = errors.New("grid dimension mismatch")

// TileGrid is a dense width*height grid of tiles plus the revealed and visible
// bit-arrays maintained by the visibility system.
//
// Tiles is written only during generation. Revealed is monotonic: once a
// tile is revealed it stays revealed for the lifetime of the level.
// VisibleNow is rebuilt from scratch on every visibility pass.
type TileGrid struct {
	Width      int
	Height     int
	Tiles      []TileKind
	Revealed   []bool
	VisibleNow []bool
}

// NewTileGrid creates a grid filled with walls.
func NewTileGrid(width, height int) *TileGrid {
	n := width * height
	tiles := make([]TileKind, n)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &TileGrid{
		Width:      width,
		Height:     height,
		Tiles:      tiles,
		Revealed:   make([]bool, n),
		VisibleNow: make([]bool, n),
	}
}

// Validate checks that the backing arrays agree with the grid dimensions.
func (g *TileGrid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, g.Width, g.Height)
	}
	n := g.Width * g.Height
	if len(g.Tiles) != n || len(g.Revealed) != n || len(g.VisibleNow) != n {
		return fmt.Errorf("%w: %dx%d grid has %d tiles, %d revealed, %d visible",
			ErrDimensionMismatch, g.Width, g.Height, len(g.Tiles), len(g.Revealed), len(g.VisibleNow))
	}
	return nil
}

// Len returns the number of cells in the grid.
func (g *TileGrid) Len() int {
	return len(g.Tiles)
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x, y) to its position in the backing arrays.
// Callers must check InBounds first; an out-of-range coordinate panics.
func (g *TileGrid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: coordinate (%d,%d) outside %dx%d grid", x, y, g.Width, g.Height))
	}
	return y*g.Width + x
}

// Coords is the inverse of Index.
func (g *TileGrid) Coords(idx int) (int, int) {
	return idx % g.Width, idx / g.Width
}

// Tile returns the tile at (x, y). Anything outside the grid reads as wall.
func (g *TileGrid) Tile(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.Tiles[y*g.Width+x]
}

// SetTile overwrites the tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) SetTile(x, y int, t TileKind) {
	if g.InBounds(x, y) {
		g.Tiles[y*g.Width+x] = t
	}
}

// IsOpaque reports whether the tile at idx blocks line of sight.
func (g *TileGrid) IsOpaque(idx int) bool {
	return g.Tiles[idx].IsOpaque()
}

// IsOpaqueAt reports whether (x, y) blocks line of sight. The outside of the grid is opaque.
func (g *TileGrid) IsOpaqueAt(x, y int) bool {
	return g.Tile(x, y).IsOpaque()
}

// IsPassable returns true if (x, y) is inside the grid and can be walked on.
func (g *TileGrid) IsPassable(x, y int) bool {
	return g.Tile(x, y).IsPassable()
}

// ClearVisible resets the visible-now set.
func (g *TileGrid) ClearVisible() {
	clear(g.VisibleNow)
}

// MarkVisible flags the tile at idx as currently visible.
func (g *TileGrid) MarkVisible(idx int) {
	g.VisibleNow[idx] = true
}

// Reveal marks the tile at idx as seen by the player.
func (g *TileGrid) Reveal(idx int) {
	g.Revealed[idx] = true
}

// IsVisible reports whether the tile at idx is visible this turn.
func (g *TileGrid) IsVisible(idx int) bool {
	return g.VisibleNow[idx]
}

// IsRevealed reports whether the tile at idx has ever been seen by the player.
func (g *TileGrid) IsRevealed(idx int) bool {
	return g.Revealed[idx]
}

// RevealedCount returns the number of revealed tiles.
func (g *TileGrid) RevealedCount() int {
	return countTrue(g.Revealed)
}

// VisibleCount returns the number of tiles visible this turn.
func (g *TileGrid) VisibleCount() int {
	return countTrue(g.VisibleNow)
}

func countTrue(bits []bool) int {
	n := 0
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}
