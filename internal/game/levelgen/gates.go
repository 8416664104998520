package levelgen

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// establishGates records, for every room, where each of its active edges
// leads: the door taken, the room reached and the cell a player arrives on
// just inside that room's door.
func (g *Generator) establishGates() {
	n := 0
	for _, r := range g.rooms {
		r.Gates = nil
		for _, e := range g.graph.ActiveEdges(r) {
			door, ok := g.graph.DoorFor(r, e.ID)
			if !ok {
				continue
			}
			other := e.Other(r)
			otherDoor, ok := g.graph.DoorFor(other, e.ID)
			if !ok {
				continue
			}
			r.Gates = append(r.Gates, level.Gate{
				Door:    door,
				Edge:    e.ID,
				To:      other.ID,
				Arrival: other.StepInside(otherDoor),
			})
			n++
		}
	}
	g.logger.Debug("gates established",
		zap.String("session", g.sessionID.String()),
		zap.Int("gates", n),
	)
}
