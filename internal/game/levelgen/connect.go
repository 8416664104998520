package levelgen

import (
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/level"
	"github.com/cory-johannsen/levelgen/internal/game/rng"
)

type roomPair struct {
	a, b *level.Room
}

func (p roomPair) conflicts(a, b *level.Room) bool {
	return p.a == a || p.a == b || p.b == a || p.b == b
}

// inArc reports whether angle lies in the half-open arc [lo, lo+width),
// measured counter-clockwise with wrap-around.
func inArc(angle, lo, width float64) bool {
	d := math.Mod(angle-lo, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d < width
}

// connectLayers joins ring a to ring b with up to k hallways. The circle is cut
// into k equal arcs starting at a random angle. For each arc the shortest pair
// of standard rooms is chosen whose room in a lies in the arc, that shares no
// room with an earlier choice, and whose rooms are both under the edge cap.
//
// Postcondition: returns the edges created, all active and attached.
func (g *Generator) connectLayers(a, b []*level.Room, k int) []*level.Edge {
	offset := rng.Angle(g.src)
	if k <= 0 {
		return nil
	}
	width := 2 * math.Pi / float64(k)
	limit := g.cfg.MaxNumEdges()

	var chosen []roomPair
	for i := 0; i < k; i++ {
		lo := offset + float64(i)*width
		var winner roomPair
		best := math.Inf(1)
		for _, ra := range a {
			if ra.Type != level.Standard || !inArc(ra.Mid().PositiveAngle(), lo, width) {
				continue
			}
			if g.graph.ActiveDegree(ra) >= limit {
				continue
			}
			for _, rb := range b {
				if rb.Type != level.Standard || g.graph.ActiveDegree(rb) >= limit {
					continue
				}
				if g.graph.HasNeighbor(ra, rb) || conflictsAny(chosen, ra, rb) {
					continue
				}
				if w := ra.Mid().Distance(rb.Mid()); w < best {
					winner, best = roomPair{ra, rb}, w
				}
			}
		}
		if winner.a != nil {
			chosen = append(chosen, winner)
		}
	}

	out := make([]*level.Edge, 0, len(chosen))
	for _, p := range chosen {
		id, err := g.graph.NewEdge(p.a, p.b)
		if err != nil {
			g.logger.Warn("skipping layer connection", zap.Error(err))
			continue
		}
		g.graph.Attach(id)
		e := g.graph.Edge(id)
		e.Activate(level.Connection)
		g.canvas.Add(edgeElement(e))
		out = append(out, e)
	}
	g.logger.Debug("layers connected",
		zap.String("session", g.sessionID.String()),
		zap.Int("requested", k),
		zap.Int("connections", len(out)),
	)
	return out
}

func conflictsAny(chosen []roomPair, a, b *level.Room) bool {
	for _, p := range chosen {
		if p.conflicts(a, b) {
			return true
		}
	}
	return false
}
