package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciihero/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement parameters
	DefaultMaxRooms = 30
	DefaultMinSize  = 6
	DefaultMaxSize  = 10

	// MinRoomSize is the smallest room whose centre lies on carved floor.
	MinRoomSize = 2
)

// ErrInvalidParams is returned when generation parameters cannot produce a level.
var ErrInvalidParams = errors.New("invalid generation parameters")

// GenParams controls room placement.
type GenParams struct {
	Width, Height    int
	MaxRooms         int // Placement attempts; rejected candidates are not retried
	MinSize, MaxSize int // Inclusive bounds on room width and height
}

// DefaultGenParams returns the classic 80x50 layout parameters.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxRooms: DefaultMaxRooms,
		MinSize:  DefaultMinSize,
		MaxSize:  DefaultMaxSize,
	}
}

// Validate checks that every room centre is floor and that a MaxSize room
// plus its border margin fits in the grid.
func (p GenParams) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.MaxRooms < 0:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidParams, p.MaxRooms)
	case p.MinSize < MinRoomSize || p.MinSize > p.MaxSize:
		return fmt.Errorf("%w: room size %d..%d", ErrInvalidParams, p.MinSize, p.MaxSize)
	case p.Width-p.MaxSize-1 < 1 || p.Height-p.MaxSize-1 < 1:
		return fmt.Errorf("%w: %dx%d grid cannot hold a %d tile room", ErrInvalidParams, p.Width, p.Height, p.MaxSize)
	}
	return nil
}

// Level is a generated map together with its rooms in acceptance order.
type Level struct {
	ID    uuid.UUID
	Grid  *TileGrid
	Rooms []Rect
}

// StartPoint returns the centre of the first room, or the grid centre if no room was placed.
func (l *Level) StartPoint() Point {
	if len(l.Rooms) == 0 {
		return Point{X: l.Grid.Width / 2, Y: l.Grid.Height / 2}
	}
	return l.Rooms[0].CenterPoint()
}

// SpawnRooms returns every room except the first.
func (l *Level) SpawnRooms() []Rect {
	if len(l.Rooms) < 2 {
		return nil
	}
	return l.Rooms[1:]
}

// Generate builds a rooms-and-corridors level.
//
// Each of MaxRooms candidates is placed at random and skipped if it touches
// an accepted room. Every accepted room after the first is joined to the
// previous one by an L-shaped corridor, so the rooms form a connected chain.
// Fewer than MaxRooms rooms, including zero, is a valid result.
func Generate(ctx context.Context, params GenParams, rng RNG) (*Level, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	level := &Level{
		ID:    uuid.New(),
		Grid:  NewTileGrid(params.Width, params.Height),
		Rooms: make([]Rect, 0, params.MaxRooms),
	}

	for i := 0; i < params.MaxRooms; i++ {
		w := rng.Range(params.MinSize, params.MaxSize+1)
		h := rng.Range(params.MinSize, params.MaxSize+1)
		x := rng.Roll(1, params.Width-w-1) - 1
		y := rng.Roll(1, params.Height-h-1) - 1
		candidate := NewRect(x, y, w, h)

		if level.overlaps(candidate) {
			continue
		}

		level.carveRoom(candidate)
		if len(level.Rooms) > 0 {
			prev := level.Rooms[len(level.Rooms)-1]
			level.carveCorridor(prev, candidate, rng.Range(0, 2) == 1)
		}
		level.Rooms = append(level.Rooms, candidate)
	}

	span.SetAttributes(
		attribute.String("level.id", level.ID.String()),
		attribute.Int("dungeon.width", params.Width),
		attribute.Int("dungeon.height", params.Height),
		attribute.Int("dungeon.attempts", params.MaxRooms),
		attribute.Int("dungeon.room_count", len(level.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return level, nil
}

// overlaps returns true if the candidate intersects any accepted room.
func (l *Level) overlaps(candidate Rect) bool {
	for _, room := range l.Rooms {
		if candidate.Intersects(room) {
			return true
		}
	}
	return false
}

// carveRoom sets the room interior to floor.
func (l *Level) carveRoom(room Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			l.Grid.SetTile(x, y, TileFloor)
		}
	}
}

// carveCorridor joins the centres of two rooms with one horizontal and one vertical tunnel.
func (l *Level) carveCorridor(prev, next Rect, horizontalFirst bool) {
	prevX, prevY := prev.Center()
	newX, newY := next.Center()

	if horizontalFirst {
		l.carveHorizontalTunnel(prevX, newX, prevY)
		l.carveVerticalTunnel(prevY, newY, newX)
	} else {
		l.carveVerticalTunnel(prevY, newY, prevX)
		l.carveHorizontalTunnel(prevX, newX, newY)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (l *Level) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		l.Grid.SetTile(x, y, TileFloor)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (l *Level) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		l.Grid.SetTile(x, y, TileFloor)
	}
}
