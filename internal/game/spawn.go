package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/gamedata"
	"github.com/samdwyer/asciihero/internal/world"
)

// spawnPlayer places the player at the level's start point.
func spawnPlayer(w *ecs.World, level *world.Level, sightRange int) ecs.Entity {
	start := level.StartPoint()
	e := w.Spawn()
	w.Positions.Insert(e, ecs.Position{X: start.X, Y: start.Y})
	w.Renderables.Insert(e, ecs.Renderable{
		Glyph: '@',
		FG:    tcell.ColorYellow,
		BG:    tcell.ColorBlack,
	})
	w.Players.Insert(e, ecs.Player{})
	w.Names.Insert(e, ecs.Name{Name: "Player"})
	w.Viewsheds.Insert(e, ecs.NewViewshed(sightRange))
	return e
}

// spawnMonsters puts one monster at the centre of every room but the first.
func spawnMonsters(w *ecs.World, level *world.Level, registry *gamedata.MonsterRegistry, rng world.RNG, sightRange int) []ecs.Entity {
	var spawned []ecs.Entity
	for i, room := range level.SpawnRooms() {
		def := registry.SpawnRandom(rng)
		if def == nil {
			return spawned
		}
		x, y := room.Center()

		e := w.Spawn()
		w.Positions.Insert(e, ecs.Position{X: x, Y: y})
		w.Renderables.Insert(e, ecs.Renderable{
			Glyph: def.GlyphRune(),
			FG:    def.TCellColor(),
			BG:    tcell.ColorBlack,
		})
		w.Viewsheds.Insert(e, ecs.NewViewshed(sightRange))
		w.Monsters.Insert(e, ecs.Monster{})
		w.Blockers.Insert(e, ecs.BlocksTile{})
		w.Names.Insert(e, ecs.Name{Name: fmt.Sprintf("%s #%d", def.Name, i)})
		spawned = append(spawned, e)
	}
	return spawned
}
