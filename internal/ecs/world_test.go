package ecs

import (
	"slices"
	"testing"

	"github.com/samdwyer/asciihero/internal/world"
)

func TestSpawnIDsAreStable(t *testing.T) {
	w := NewWorld()
	a := w.Spawn()
	b := w.Spawn()
	w.Despawn(a)
	c := w.Spawn()

	if a == b || b == c || a == c {
		t.Errorf("ids should be unique, got %d %d %d", a, b, c)
	}
	if w.Alive(a) {
		t.Error("despawned entity should not be alive")
	}
	if w.Count() != 2 {
		t.Errorf("Count() = %d, want 2", w.Count())
	}
}

func TestStorageGetMutatesInPlace(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.Positions.Insert(e, Position{X: 1, Y: 2})

	pos, ok := w.Positions.Get(e)
	if !ok {
		t.Fatal("position missing")
	}
	pos.X = 9

	again, _ := w.Positions.Get(e)
	if again.X != 9 {
		t.Errorf("X = %d, want 9", again.X)
	}
	if _, ok := w.Viewsheds.Get(e); ok {
		t.Error("entity has no viewshed")
	}
}

func TestJoin(t *testing.T) {
	w := NewWorld()
	withBoth := w.Spawn()
	posOnly := w.Spawn()
	viewOnly := w.Spawn()
	withBoth2 := w.Spawn()

	w.Positions.Insert(withBoth, Position{})
	w.Positions.Insert(posOnly, Position{})
	w.Positions.Insert(withBoth2, Position{})
	w.Viewsheds.Insert(withBoth, NewViewshed(8))
	w.Viewsheds.Insert(viewOnly, NewViewshed(8))
	w.Viewsheds.Insert(withBoth2, NewViewshed(8))

	got := Join(w.Positions, w.Viewsheds)
	want := []Entity{withBoth, withBoth2}
	if !slices.Equal(got, want) {
		t.Errorf("Join() = %v, want %v", got, want)
	}

	if got := Join(); got != nil {
		t.Errorf("Join() with no sets = %v, want nil", got)
	}
	if got := Join(w.Positions, w.Players); len(got) != 0 {
		t.Errorf("Join() with empty storage = %v, want empty", got)
	}
}

func TestDespawnRemovesComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.Positions.Insert(e, Position{})
	w.Viewsheds.Insert(e, NewViewshed(4))
	w.Players.Insert(e, Player{})
	w.Names.Insert(e, Name{Name: "Player"})

	w.Despawn(e)

	if w.Positions.Has(e) || w.Viewsheds.Has(e) || w.Players.Has(e) || w.Names.Has(e) {
		t.Error("Despawn should remove every component")
	}
	if _, ok := w.Player(); ok {
		t.Error("Player() should report no player")
	}
}

func TestMaintainAppliesDeferredChanges(t *testing.T) {
	w := NewWorld()
	doomed := w.Spawn()
	w.Positions.Insert(doomed, Position{})

	w.QueueDespawn(doomed)
	var spawned Entity
	w.Defer(func(w *World) {
		spawned = w.Spawn()
		w.Defer(func(w *World) { w.Names.Insert(spawned, Name{Name: "late"}) })
	})

	if !w.Alive(doomed) {
		t.Fatal("despawn must wait for Maintain")
	}
	if w.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", w.Pending())
	}

	w.Maintain()

	if w.Alive(doomed) {
		t.Error("queued despawn not applied")
	}
	if !w.Alive(spawned) || !w.Names.Has(spawned) {
		t.Error("queued spawn and its follow-up not applied")
	}
	if w.Pending() != 0 {
		t.Errorf("Pending() = %d after Maintain, want 0", w.Pending())
	}
}

func TestNewViewshedStartsDirty(t *testing.T) {
	v := NewViewshed(8)
	if !v.Dirty || v.Range != 8 || v.VisibleTiles.Size() != 0 {
		t.Errorf("NewViewshed() = %+v", v)
	}
	v.VisibleTiles.Put(world.Point{X: 1, Y: 1})
	if !v.CanSee(world.Point{X: 1, Y: 1}) {
		t.Error("CanSee should report tiles in the set")
	}
}
