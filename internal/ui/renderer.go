package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/world"
)

var (
	wallVisible  = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	floorVisible = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	remembered   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map as the player knows it, the entities currently in
// view and a status line under the map.
//
// Unrevealed tiles stay blank. Revealed tiles outside the current view are
// drawn dimmed. Entities are drawn only on tiles visible this turn.
func (r *Renderer) Render(grid *world.TileGrid, w *ecs.World, status string) {
	r.screen.BeginFrame()
	defer r.screen.EndFrame()

	// The map plus one status row.
	if !r.screen.Fits(grid.Width, grid.Height+1) {
		r.screen.DrawText(0, 0, fmt.Sprintf("Terminal too small: need %dx%d", grid.Width, grid.Height+1), statusStyle)
		return
	}

	for idx, tile := range grid.Tiles {
		if !grid.IsRevealed(idx) {
			continue
		}
		x, y := grid.Coords(idx)
		r.screen.Put(x, y, tile.Rune(), tileStyle(tile, grid.IsVisible(idx)))
	}

	for _, e := range ecs.Join(w.Positions, w.Renderables) {
		pos, _ := w.Positions.Get(e)
		if !grid.InBounds(pos.X, pos.Y) || !grid.IsVisible(grid.Index(pos.X, pos.Y)) {
			continue
		}
		glyph, _ := w.Renderables.Get(e)
		style := tcell.StyleDefault.Foreground(glyph.FG).Background(glyph.BG)
		r.screen.Put(pos.X, pos.Y, glyph.Glyph, style)
	}

	r.RenderMessage(status, grid.Height)
}

// tileStyle returns the style for a revealed tile.
func tileStyle(tile world.TileKind, visible bool) tcell.Style {
	if !visible {
		return remembered
	}
	switch tile {
	case world.TileWall:
		return wallVisible
	case world.TileFloor:
		return floorVisible
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, statusStyle)
}
