package levelgen

import (
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// reinsertEdges walks every edge of every room in ring and reactivates
// inactive edges that are shorter than the hallway length cap, whose endpoints
// are both under the edge cap, and whose random draw is at most the
// reinsertion probability.
//
// One draw is taken per visit, eligible or not, so the random stream does not
// depend on which edges qualify. Edges are visited once from each endpoint.
func (g *Generator) reinsertEdges(ring []*level.Room) int {
	limit := g.cfg.MaxNumEdges()
	n := 0
	for _, r := range ring {
		for _, id := range r.Edges {
			e := g.graph.Edge(id)
			addBack := e.Weight() < g.cfg.MaxHallwayLength() &&
				g.graph.ActiveDegree(e.Source) < limit &&
				g.graph.ActiveDegree(e.Neighbor) < limit
			draw := g.src.Float64()
			if !e.Active && addBack && draw <= g.cfg.AddEdgesBackProb() {
				e.Activate(level.Reinserted)
				n++
			}
		}
	}
	return n
}
