package levelgen

import (
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
	"github.com/cory-johannsen/levelgen/internal/game/rng"
)

// tmplOrigin returns the position that centres a template on the origin.
func tmplOrigin(tmpl level.Template) geom.Vec2 {
	return tmpl.Size.Scale(-0.5)
}

// polarOrigin returns the grid-aligned position that centres a footprint of
// the given size on the point at radius r and angle a.
func polarOrigin(size geom.Vec2, r, a float64) geom.Vec2 {
	centre := geom.V(r*math.Cos(a), r*math.Sin(a))
	return centre.Sub(size.Scale(0.5)).Floor()
}

// generateRooms places the fixed spawn room at the origin and scatters the
// regular rooms between the spawn room and the middle ring.
func (g *Generator) generateRooms() {
	spawn := g.newRoom(level.Spawn, g.catalogue.Spawn)
	spawn.Fixed = true
	g.spawn = spawn
	g.rooms = append(g.rooms, spawn)
	g.rings[RingInside] = append(g.rings[RingInside], spawn)
	g.canvas.Add(roomElement(spawn))

	g.placeRegularRooms(g.cfg.NumRooms()-1, spawn.Radius(), g.cfg.MiddleCircleRadius())
}

// placeRegularRooms places n rooms with a uniformly chosen template, radius
// and angle. Overlaps are left for separation.
func (g *Generator) placeRegularRooms(n int, minRadius, maxRadius float64) {
	for i := 0; i < n; i++ {
		tmpl := g.catalogue.Regular[g.src.Intn(len(g.catalogue.Regular))]
		rr := tmpl.Radius()
		r := rng.Uniform(g.src, minRadius+rr, maxRadius-rr)
		a := rng.Angle(g.src)

		room := g.newRoom(level.Standard, tmpl)
		room.SetPos(polarOrigin(room.Size, r, a))
		g.rooms = append(g.rooms, room)
		g.canvas.Add(roomElement(room))
	}
}

// placeTerminals places the terminal batches of all three rings and then
// draws the required player count of each terminal, innermost ring first.
func (g *Generator) placeTerminals() {
	minRadius := g.spawn.Radius()
	bounds := [numRings][2]float64{
		RingInside:  {minRadius, g.cfg.InnerCircleRadius()},
		RingMiddle:  {g.cfg.InnerCircleRadius(), g.cfg.MiddleCircleRadius()},
		RingOutside: {g.cfg.MiddleCircleRadius(), g.cfg.MapRadius()},
	}

	var batches [numRings][]*level.Room
	for ring := RingInside; ring <= RingOutside; ring++ {
		batches[ring] = g.placeTerminalRooms(g.cfg.TerminalRooms(ring), bounds[ring][0], bounds[ring][1])
	}

	for ring := RingInside; ring <= RingOutside; ring++ {
		pr := g.cfg.TerminalPlayers(ring)
		for _, t := range batches[ring] {
			t.RequiredPlayers = rng.IntRange(g.src, pr.Min, pr.Max)
		}
		g.rings[ring] = append(g.rings[ring], batches[ring]...)
	}
}

// placeTerminalRooms places n terminals at one shared radius. Each terminal's
// angle is drawn from a window that starts at a random angle and advances by
// 2π/n per terminal, so the batch spreads around the ring.
//
// Postcondition: returns exactly n terminals, all present in g.rooms.
func (g *Generator) placeTerminalRooms(n int, minRadius, maxRadius float64) []*level.Room {
	tmpl := g.catalogue.Terminal
	tr := tmpl.Radius()
	r := rng.Uniform(g.src, minRadius+tr, maxRadius-tr)
	lo := rng.Angle(g.src)

	out := make([]*level.Room, 0, n)
	for i := 0; i < n; i++ {
		a := rng.Uniform(g.src, lo, lo+g.cfg.TerminalArc())
		lo += 2 * math.Pi / float64(n)

		room := g.newRoom(level.Terminal, tmpl)
		room.SetPos(polarOrigin(room.Size, r, a))
		g.commitTerminal(room)
		out = append(out, room)
	}
	return out
}

// commitTerminal adds a terminal to the room list. If the room it overlaps the
// most is a standard room, the terminal takes that room's slot; otherwise the
// terminal is appended and separation resolves the overlap.
func (g *Generator) commitTerminal(t *level.Room) {
	idx, best := -1, 0.0
	for i, r := range g.rooms {
		if ov := r.Overlap(t); ov > best {
			idx, best = i, ov
		}
	}

	g.canvas.Add(roomElement(t))
	if idx >= 0 && g.rooms[idx].Type == level.Standard {
		replaced := g.rooms[idx]
		g.rooms[idx] = t
		g.canvas.Remove(roomElement(replaced))
		g.logger.Debug("terminal replaced room",
			zap.String("session", g.sessionID.String()),
			zap.Int("terminal", t.ID),
			zap.Int("replaced", replaced.ID),
			zap.Float64("overlap", best),
		)
		return
	}
	g.rooms = append(g.rooms, t)
}
