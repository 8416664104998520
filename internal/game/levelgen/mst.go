package levelgen

import (
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// spanningTree reduces the candidate graph of ring to a minimum spanning tree
// with Prim's algorithm, grown from the first room of the ring.
//
// The tree prefers edges that keep both endpoints under the per-room edge cap.
// When only over-cap edges reach the unvisited rooms the cheapest of them is
// taken anyway so the ring stays connected.
//
// Postcondition: every edge of the ring is inactive except the tree edges.
// At most len(ring)-1 edges are chosen; a ring whose candidate graph is
// disconnected keeps a partial tree.
func (g *Generator) spanningTree(ring Ring) int {
	rooms := g.rings[ring]
	if len(rooms) == 0 {
		return 0
	}
	for _, r := range rooms {
		r.Visited = false
		for _, id := range r.Edges {
			g.graph.Edge(id).Deactivate()
		}
	}
	rooms[0].Visited = true

	limit := g.cfg.MaxNumEdges()
	degree := make(map[*level.Room]int, len(rooms))
	var tree []*level.Edge

	for i := 0; i < len(rooms)-1; i++ {
		var capped, cheapest *level.Edge
		cappedW, cheapestW := math.Inf(1), math.Inf(1)
		for _, r := range rooms {
			if !r.Visited {
				continue
			}
			for _, id := range r.Edges {
				e := g.graph.Edge(id)
				other := e.Other(r)
				if other.Visited {
					continue
				}
				w := e.Weight()
				if w < cheapestW {
					cheapest, cheapestW = e, w
				}
				if w < cappedW && degree[r] < limit && degree[other] < limit {
					capped, cappedW = e, w
				}
			}
		}

		chosen := capped
		if chosen == nil {
			if cheapest == nil {
				break
			}
			chosen = cheapest
			g.logger.Warn("spanning tree exceeds edge cap",
				zap.String("session", g.sessionID.String()),
				zap.Stringer("ring", ring),
				zap.Int("source", chosen.Source.ID),
				zap.Int("neighbor", chosen.Neighbor.ID),
				zap.Int("cap", limit),
			)
		}
		chosen.Source.Visited = true
		chosen.Neighbor.Visited = true
		degree[chosen.Source]++
		degree[chosen.Neighbor]++
		tree = append(tree, chosen)
	}

	for _, e := range tree {
		e.Activate(level.Tree)
	}
	if len(tree) < len(rooms)-1 {
		g.logger.Warn("ring left partially connected",
			zap.String("session", g.sessionID.String()),
			zap.Stringer("ring", ring),
			zap.Int("rooms", len(rooms)),
			zap.Int("tree_edges", len(tree)),
		)
	}
	return len(tree)
}
