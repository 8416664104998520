// Package levelgen generates ring levels: a fixed spawn room surrounded by
// three concentric bands of rooms joined by hallways.
//
// Generation is a step-driven pipeline. Each call to Generator.Update runs one
// step so a host can pace generation across frames; Generator.Run drives the
// pipeline to completion.
package levelgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/level"
	"github.com/cory-johannsen/levelgen/internal/game/rng"
)

var (
	// ErrActive is returned by Init when a session is already running.
	ErrActive = errors.New("generator is already active")
	// ErrInactive is returned by Run when no session has been initialised.
	ErrInactive = errors.New("generator is not active")
)

// seeder is implemented by random sources that can report their seed.
type seeder interface {
	Seed() uint64
}

// Generator runs one level generation session at a time.
type Generator struct {
	logger *zap.Logger

	cfg       Config
	catalogue *level.Catalogue
	canvas    Canvas
	src       rng.Source

	active    bool
	state     State
	sessionID uuid.UUID
	steps     int
	passes    int
	nextID    int

	rooms    []*level.Room
	rings    [numRings][]*level.Room
	spawn    *level.Room
	graph    *level.Graph
	hallways []Hallway
}

// NewGenerator creates an inactive generator.
//
// Postcondition: a nil logger is replaced with a no-op logger.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger, graph: level.NewGraph()}
}

// Init starts a new session. The config is copied so later changes by the
// caller do not affect the run.
//
// Precondition: the generator must be inactive.
// Postcondition: nil arguments are replaced by NewConfig, DefaultCatalogue,
// NopCanvas and an entropy-seeded source; the pending step is GenerateRooms.
func (g *Generator) Init(cfg *Config, catalogue *level.Catalogue, canvas Canvas, src rng.Source) error {
	if g.active {
		return ErrActive
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	if catalogue == nil {
		catalogue = level.DefaultCatalogue()
	}
	if canvas == nil {
		canvas = NopCanvas{}
	}
	if src == nil {
		src = rng.NewEntropy()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("initialising generator: %w", err)
	}
	if err := catalogue.Validate(); err != nil {
		return fmt.Errorf("initialising generator: %w", err)
	}

	g.reset()
	g.cfg = *cfg
	g.catalogue = catalogue
	g.canvas = canvas
	g.src = src
	g.active = true
	g.state = State{Step: GenerateRooms}
	g.sessionID = uuid.New()

	fields := []zap.Field{
		zap.String("session", g.sessionID.String()),
		zap.Int("rooms", cfg.NumRooms()),
		zap.Int("terminals", cfg.NumTerminalRooms()),
		zap.Float64("map_radius", cfg.MapRadius()),
	}
	if s, ok := src.(seeder); ok {
		fields = append(fields, zap.Uint64("seed", s.Seed()))
	}
	g.logger.Info("generation session started", fields...)
	return nil
}

// Dispose ends the session and drops every room, edge and hallway.
// It is only safe between steps. Disposing an inactive generator is a no-op.
func (g *Generator) Dispose() {
	if !g.active {
		return
	}
	g.logger.Info("generation session disposed",
		zap.String("session", g.sessionID.String()),
		zap.Int("steps", g.steps),
	)
	g.reset()
	g.active = false
	g.canvas = nil
	g.src = nil
	g.catalogue = nil
	g.state = State{Step: Idle}
	g.sessionID = uuid.Nil
}

func (g *Generator) reset() {
	g.graph.Reset(g.rooms)
	g.rooms = nil
	g.rings = [numRings][]*level.Room{}
	g.spawn = nil
	g.hallways = nil
	g.steps = 0
	g.passes = 0
	g.nextID = 0
}

// Update runs the pending step and reports whether steps remain.
//
// Postcondition: returns false without doing anything when the generator is
// inactive or already done.
func (g *Generator) Update() bool {
	if !g.active || g.state.Step == Done || g.state.Step == Idle {
		return false
	}
	current := g.state
	g.steps++

	switch current.Step {
	case GenerateRooms:
		g.generateRooms()
		g.state = after(GenerateRooms)
	case Separating:
		g.separationStep(current.Next)
	case PlaceTerminals:
		g.placeTerminals()
		g.state = after(PlaceTerminals)
	case SegregateLayers:
		g.segregateLayers()
		g.state = after(SegregateLayers)
	case MarkAndFillHallways:
		g.markAndFillHallways()
		g.state = after(MarkAndFillHallways)
	case EstablishGates:
		g.establishGates()
		g.state = after(EstablishGates)
	}

	if current.Step != Separating || g.state.Step != Separating {
		g.logger.Debug("generation step complete",
			zap.String("session", g.sessionID.String()),
			zap.Stringer("step", current),
			zap.Stringer("next", g.state),
			zap.Int("rooms", len(g.rooms)),
			zap.Int("edges", g.graph.Len()),
		)
	}
	return g.state.Step != Done
}

// separationStep runs one separation pass and moves on to next once rooms no
// longer overlap or the pass cap is reached.
func (g *Generator) separationStep(next Step) {
	g.passes++
	converged := g.separate()
	g.canvas.Layout()
	switch {
	case converged:
		g.logger.Info("rooms separated",
			zap.String("session", g.sessionID.String()),
			zap.Int("passes", g.passes),
			zap.Stringer("next", next),
		)
	case g.passes >= g.cfg.MaxSeparationPasses():
		g.logger.Warn("separation pass cap reached with rooms still overlapping",
			zap.String("session", g.sessionID.String()),
			zap.Int("passes", g.passes),
			zap.Stringer("next", next),
		)
	default:
		return
	}
	g.passes = 0
	g.state = State{Step: next}
}

// Run drives the pipeline to completion and returns the number of steps run.
// Cancellation is checked between steps.
//
// Precondition: Init must have been called.
// Postcondition: returns ctx.Err() if ctx is cancelled before completion.
func (g *Generator) Run(ctx context.Context) (int, error) {
	if !g.active {
		return 0, ErrInactive
	}
	n := 0
	for g.state.Step != Done {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		g.Update()
		n++
	}
	return n, nil
}

// Active reports whether a session is running.
func (g *Generator) Active() bool { return g.active }

// State returns the pending step.
func (g *Generator) State() State { return g.state }

// Rooms returns every room of the level.
func (g *Generator) Rooms() []*level.Room { return g.rooms }

// Ring returns the rooms assigned to ring.
func (g *Generator) Ring(r Ring) []*level.Room {
	if r < RingInside || r > RingOutside {
		return nil
	}
	return g.rings[r]
}

// SpawnRoom returns the fixed room at the centre of the level.
func (g *Generator) SpawnRoom() *level.Room { return g.spawn }

// Graph returns the edge arena of the level.
func (g *Generator) Graph() *level.Graph { return g.graph }

// Hallways returns the carved hallways.
func (g *Generator) Hallways() []Hallway { return g.hallways }

// SessionID returns the identifier of the current session.
func (g *Generator) SessionID() uuid.UUID { return g.sessionID }

// Config returns a copy of the session config.
func (g *Generator) Config() *Config {
	c := g.cfg
	return &c
}

func (g *Generator) newRoom(t level.RoomType, tmpl level.Template) *level.Room {
	r := level.NewRoom(g.nextID, t, tmpl, tmplOrigin(tmpl))
	g.nextID++
	return r
}
