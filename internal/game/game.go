package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciihero/internal/ecs"
	"github.com/samdwyer/asciihero/internal/gamedata"
	"github.com/samdwyer/asciihero/internal/system"
	"github.com/samdwyer/asciihero/internal/telemetry"
	"github.com/samdwyer/asciihero/internal/world"
)

// ErrNoRooms is returned when every generation attempt produced an empty level.
var ErrNoRooms = errors.New("generation produced no rooms")

// Renderer draws one frame from the grid and the world.
type Renderer interface {
	Render(grid *world.TileGrid, w *ecs.World, status string)
}

// EventSource supplies terminal events to the game loop.
type EventSource interface {
	PollEvent() tcell.Event
	Sync()
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	log      logrus.FieldLogger
	renderer Renderer
	monsters *gamedata.MonsterRegistry

	seed   int64
	level  *world.Level
	world  *ecs.World
	player ecs.Entity

	visibility *system.VisibilitySystem
	awareness  *system.MonsterAwareness

	state   RunState
	turn    int
	status  string
	running bool
}

// New creates a game from a validated config.
func New(cfg Config, log logrus.FieldLogger, renderer Renderer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:        cfg,
		log:        log,
		renderer:   renderer,
		monsters:   monsters,
		seed:       seed,
		visibility: &system.VisibilitySystem{Policy: policy, Log: log},
		awareness:  &system.MonsterAwareness{Log: log},
		state:      StateAwaitingInput,
		running:    true,
	}, nil
}

// Start generates the level, spawns entities and draws the first frame.
// Visibility is computed before the first render so no frame is ever stale.
func (g *Game) Start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	level, rng, err := g.generate(ctx)
	if err != nil {
		return err
	}
	g.level = level
	g.log = g.log.WithField("level_id", level.ID.String())

	g.world = ecs.NewWorld()
	g.player = spawnPlayer(g.world, level, g.cfg.PlayerSightRange)
	monsters := spawnMonsters(g.world, level, g.monsters, rng, g.cfg.MonsterSightRange)

	start := level.StartPoint()
	span.SetAttributes(
		attribute.String("level.id", level.ID.String()),
		attribute.Int64("game.seed", rng.Seed()),
		attribute.Int("dungeon.rooms", len(level.Rooms)),
		attribute.Int("game.monsters", len(monsters)),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)
	g.log.WithFields(logrus.Fields{
		"seed":     rng.Seed(),
		"rooms":    len(level.Rooms),
		"monsters": len(monsters),
	}).Info("level ready")

	if err := g.visibility.Run(ctx, g.world, level.Grid); err != nil {
		return err
	}
	g.world.Maintain()
	g.status = "Welcome to Ascii Hero."
	g.render()
	return nil
}

// generate tries successive seeds until a level has at least one room.
func (g *Game) generate(ctx context.Context) (*world.Level, *world.Dice, error) {
	for attempt := 0; attempt < g.cfg.GenerationAttempts; attempt++ {
		rng := world.NewRNG(g.seed + int64(attempt))
		level, err := world.Generate(ctx, g.cfg.GenParams(), rng)
		if err != nil {
			return nil, nil, err
		}
		if len(level.Rooms) > 0 {
			return level, rng, nil
		}
		g.log.WithField("seed", rng.Seed()).Warn("level has no rooms, trying next seed")
	}
	return nil, nil, fmt.Errorf("%w after %d attempts from seed %d", ErrNoRooms, g.cfg.GenerationAttempts, g.seed)
}

// Step runs one turn for the intent, in this order: movement, visibility,
// monster awareness, deferred entity changes, render.
// A visibility error aborts the turn before anything is drawn and leaves the
// game awaiting input with the turn counter unchanged.
func (g *Game) Step(ctx context.Context, intent Intent) error {
	if g.level == nil {
		return errors.New("game not started")
	}
	if intent.Action != ActionMove {
		return nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	g.state = StatePlayerTurn
	moved := system.TryMove(g.world, g.level.Grid, g.player, intent.DX, intent.DY)

	if err := g.visibility.Run(ctx, g.world, g.level.Grid); err != nil {
		g.state = StateAwaitingInput
		return fmt.Errorf("turn %d: %w", g.turn, err)
	}
	watchers := g.awareness.Run(g.world)
	g.world.Maintain()

	g.turn++
	g.state = StateAwaitingInput
	g.status = statusLine(moved, len(watchers))

	span.SetAttributes(
		attribute.Int("game.turn", g.turn),
		attribute.Bool("move.accepted", moved),
		attribute.Int("monsters.watching", len(watchers)),
		attribute.Int("map.revealed", g.level.Grid.RevealedCount()),
	)

	g.render()
	return nil
}

func statusLine(moved bool, watchers int) string {
	switch {
	case watchers == 1:
		return "Something is watching you."
	case watchers > 1:
		return fmt.Sprintf("%d monsters are watching you.", watchers)
	case !moved:
		return "You bump into a wall."
	default:
		return ""
	}
}

// Run executes the main game loop until the player quits or the event source closes.
func (g *Game) Run(ctx context.Context, events EventSource) error {
	if g.level == nil {
		if err := g.Start(ctx); err != nil {
			return err
		}
	}

	for g.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch ev := events.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			intent := IntentForKey(ev)
			if intent.Action == ActionQuit {
				g.running = false
				continue
			}
			if err := g.Step(ctx, intent); err != nil {
				return err
			}
		case *tcell.EventResize:
			events.Sync()
			g.render()
		}
	}
	return nil
}

func (g *Game) render() {
	if g.renderer != nil {
		g.renderer.Render(g.level.Grid, g.world, g.status)
	}
}

// Level returns the current level.
func (g *Game) Level() *world.Level { return g.level }

// World returns the entity registry.
func (g *Game) World() *ecs.World { return g.world }

// Player returns the player entity.
func (g *Game) Player() ecs.Entity { return g.player }

// Turn returns the number of completed turns.
func (g *Game) Turn() int { return g.turn }

// State returns the current run state.
func (g *Game) State() RunState { return g.state }

// Status returns the current status line.
func (g *Game) Status() string { return g.status }
