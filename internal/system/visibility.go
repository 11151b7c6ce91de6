package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/fov"
	"github.com/samdwyer/asciihero/internal/telemetry"
	"github.com/samdwyer/asciihero/internal/world"
)

// ErrNoMap is returned when the visibility system runs without a tile grid.
var ErrNoMap = errors.New("visibility: no map resource")

// RecomputePolicy decides which viewsheds are recomputed on a pass.
type RecomputePolicy int

const (
	// RecomputeDirty recomputes only viewsheds flagged dirty.
	RecomputeDirty RecomputePolicy = iota
	// RecomputeAlways recomputes every viewshed on every pass.
	RecomputeAlways
)

// String returns the config name of the policy.
func (p RecomputePolicy) String() string {
	switch p {
	case RecomputeDirty:
		return "dirty"
	case RecomputeAlways:
		return "always"
	default:
		return "unknown"
	}
}

// ParseRecomputePolicy parses a config name.
func ParseRecomputePolicy(s string) (RecomputePolicy, error) {
	switch s {
	case "dirty", "":
		return RecomputeDirty, nil
	case "always":
		return RecomputeAlways, nil
	default:
		return RecomputeDirty, fmt.Errorf("unknown visibility policy %q", s)
	}
}

// VisibilitySystem keeps every viewshed and the grid's visible and revealed sets current.
//
// Both policies leave identical state behind: RecomputeDirty relies on every
// position change setting Dirty, which TryMove guarantees. VisibleNow is
// always rebuilt from the player's viewshed, cached or fresh, so it reflects
// this pass and never a previous one.
type VisibilitySystem struct {
	Policy RecomputePolicy
	Log    logrus.FieldLogger
}

// Run performs one visibility pass.
// Only the player's viewshed feeds VisibleNow and Revealed; other viewsheds
// are computed for their owners but never mark grid tiles.
func (s *VisibilitySystem) Run(ctx context.Context, w *ecs.World, grid *world.TileGrid) error {
	if grid == nil {
		return ErrNoMap
	}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("visibility: %w", err)
	}

	tracer := telemetry.Tracer("system")
	_, span := tracer.Start(ctx, "visibility.run")
	defer span.End()

	grid.ClearVisible()

	entities := ecs.Join(w.Positions, w.Viewsheds)
	recomputed := 0
	for _, e := range entities {
		pos, _ := w.Positions.Get(e)
		vs, _ := w.Viewsheds.Get(e)

		if s.Policy == RecomputeAlways || vs.Dirty {
			vs.VisibleTiles = visibleFrom(pos.Point(), vs.Range, grid)
			vs.Dirty = false
			recomputed++
		}

		if w.Players.Has(e) {
			vs.VisibleTiles.Each(func(p world.Point) {
				idx := grid.Index(p.X, p.Y)
				grid.MarkVisible(idx)
				grid.Reveal(idx)
			})
		}
	}

	span.SetAttributes(
		attribute.String("visibility.policy", s.Policy.String()),
		attribute.Int("visibility.entities", len(entities)),
		attribute.Int("visibility.recomputed", recomputed),
		attribute.Int("visibility.visible_tiles", grid.VisibleCount()),
	)
	if s.Log != nil {
		s.Log.WithFields(logrus.Fields{
			"entities":   len(entities),
			"recomputed": recomputed,
			"revealed":   grid.RevealedCount(),
		}).Debug("visibility pass complete")
	}
	return nil
}

// visibleFrom runs the field of view and drops points outside the grid.
func visibleFrom(origin world.Point, sightRange int, grid *world.TileGrid) mapset.Set[world.Point] {
	visible := mapset.New[world.Point]()
	fov.Compute(origin, sightRange, grid).Each(func(p world.Point) {
		if grid.InBounds(p.X, p.Y) {
			visible.Put(p)
		}
	})
	return visible
}
