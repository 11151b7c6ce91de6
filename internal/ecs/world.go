// Package ecs is a small entity registry with one typed storage per component kind.
package ecs

// Entity is a stable entity id. Ids are never reused within a World.
type Entity uint32

// World owns every entity and its components.
type World struct {
	next    Entity
	alive   map[Entity]bool
	pending []func(*World)

	Positions   *Storage[Position]
	Viewsheds   *Storage[Viewshed]
	Players     *Storage[Player]
	Monsters    *Storage[Monster]
	Blockers    *Storage[BlocksTile]
	Names       *Storage[Name]
	Renderables *Storage[Renderable]
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		next:        1,
		alive:       make(map[Entity]bool),
		Positions:   NewStorage[Position](),
		Viewsheds:   NewStorage[Viewshed](),
		Players:     NewStorage[Player](),
		Monsters:    NewStorage[Monster](),
		Blockers:    NewStorage[BlocksTile](),
		Names:       NewStorage[Name](),
		Renderables: NewStorage[Renderable](),
	}
}

// Spawn mints a new entity id.
func (w *World) Spawn() Entity {
	e := w.next
	w.next++
	w.alive[e] = true
	return e
}

// Alive reports whether the entity exists.
func (w *World) Alive(e Entity) bool {
	return w.alive[e]
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.alive)
}

// Despawn removes the entity and all of its components immediately.
func (w *World) Despawn(e Entity) {
	if !w.alive[e] {
		return
	}
	delete(w.alive, e)
	w.Positions.Remove(e)
	w.Viewsheds.Remove(e)
	w.Players.Remove(e)
	w.Monsters.Remove(e)
	w.Blockers.Remove(e)
	w.Names.Remove(e)
	w.Renderables.Remove(e)
}

// Defer queues a structural change to run at the next Maintain.
func (w *World) Defer(fn func(*World)) {
	w.pending = append(w.pending, fn)
}

// QueueDespawn removes e at the next Maintain.
func (w *World) QueueDespawn(e Entity) {
	w.Defer(func(w *World) { w.Despawn(e) })
}

// Pending returns the number of queued changes.
func (w *World) Pending() int {
	return len(w.pending)
}

// Maintain applies queued changes in the order they were queued.
// Changes queued while applying run in the same call.
func (w *World) Maintain() {
	for len(w.pending) > 0 {
		fn := w.pending[0]
		w.pending = w.pending[1:]
		fn(w)
	}
	w.pending = nil
}

// Player returns the player-tagged entity, if there is one.
func (w *World) Player() (Entity, bool) {
	ids := w.Players.Entities()
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
