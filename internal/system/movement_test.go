package system

import (
	"testing"

	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/world"
)

func TestTryMoveRejectsWall(t *testing.T) {
	grid := floorGrid(10, 10, world.Point{X: 5, Y: 5})

	for _, dirty := range []bool{false, true} {
		w := ecs.NewWorld()
		e := spawnViewer(w, 4, 5, 10, true)
		vs, _ := w.Viewsheds.Get(e)
		vs.Dirty = dirty

		if TryMove(w, grid, e, 1, 0) {
			t.Error("TryMove into a wall should fail")
		}

		pos, _ := w.Positions.Get(e)
		if pos.X != 4 || pos.Y != 5 {
			t.Errorf("position = (%d,%d), want (4,5)", pos.X, pos.Y)
		}
		if vs.Dirty != dirty {
			t.Errorf("Dirty = %v, want unchanged %v", vs.Dirty, dirty)
		}
	}
}

func TestTryMoveAcceptsFloor(t *testing.T) {
	grid := floorGrid(10, 10, world.Point{X: 5, Y: 5})
	w := ecs.NewWorld()
	e := spawnViewer(w, 4, 5, 10, true)
	vs, _ := w.Viewsheds.Get(e)
	vs.Dirty = false

	if !TryMove(w, grid, e, 0, -1) {
		t.Fatal("TryMove onto floor should succeed")
	}

	pos, _ := w.Positions.Get(e)
	if pos.X != 4 || pos.Y != 4 {
		t.Errorf("position = (%d,%d), want (4,4)", pos.X, pos.Y)
	}
	if !vs.Dirty {
		t.Error("accepted move should mark the viewshed dirty")
	}
}

func TestTryMoveRejectsLeavingGrid(t *testing.T) {
	grid := floorGrid(5, 5)
	w := ecs.NewWorld()
	e := spawnViewer(w, 0, 4, 3, false)

	tests := []struct{ dx, dy int }{{-1, 0}, {0, 1}, {-1, 1}}
	for _, tt := range tests {
		if TryMove(w, grid, e, tt.dx, tt.dy) {
			t.Errorf("TryMove(%d,%d) off the grid should fail", tt.dx, tt.dy)
		}
	}
	pos, _ := w.Positions.Get(e)
	if pos.X != 0 || pos.Y != 4 {
		t.Errorf("position = (%d,%d), want (0,4)", pos.X, pos.Y)
	}
}

func TestTryMoveWithoutViewshed(t *testing.T) {
	grid := floorGrid(5, 5)
	w := ecs.NewWorld()
	e := w.Spawn()
	w.Positions.Insert(e, ecs.Position{X: 2, Y: 2})

	if !TryMove(w, grid, e, 1, 1) {
		t.Fatal("TryMove should succeed without a viewshed")
	}
	pos, _ := w.Positions.Get(e)
	if pos.X != 3 || pos.Y != 3 {
		t.Errorf("position = (%d,%d), want (3,3)", pos.X, pos.Y)
	}

	if TryMove(w, grid, w.Spawn(), 1, 0) {
		t.Error("TryMove should fail for an entity without a position")
	}
}

func TestTryMoveIgnoresOtherEntities(t *testing.T) {
	grid := floorGrid(5, 5)
	w := ecs.NewWorld()
	mover := spawnViewer(w, 1, 1, 3, true)
	blocker := spawnViewer(w, 2, 1, 3, false)
	w.Blockers.Insert(blocker, ecs.BlocksTile{})

	if !TryMove(w, grid, mover, 1, 0) {
		t.Error("entities do not block movement")
	}
}
