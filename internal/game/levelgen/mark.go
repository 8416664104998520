package levelgen

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// markAndFillHallways builds the connectivity of the level: a candidate graph
// per ring, its spanning tree, reinserted cycles, the links between rings,
// and finally the hallway geometry for every active edge.
func (g *Generator) markAndFillHallways() {
	exclusion := [numRings]float64{
		RingInside:  0,
		RingMiddle:  g.cfg.InnerCircleRadius(),
		RingOutside: g.cfg.MiddleCircleRadius(),
	}
	for ring := RingInside; ring <= RingOutside; ring++ {
		n := g.triangulate(g.rings[ring], exclusion[ring])
		g.logger.Debug("ring triangulated",
			zap.String("session", g.sessionID.String()),
			zap.Stringer("ring", ring),
			zap.Int("rooms", len(g.rings[ring])),
			zap.Int("candidates", n),
		)
	}
	g.canvas.Layout()

	for ring := RingInside; ring <= RingOutside; ring++ {
		g.spanningTree(ring)
	}
	for ring := RingInside; ring <= RingOutside; ring++ {
		g.reinsertEdges(g.rings[ring])
	}
	g.hideCandidates()

	inner, outer := g.cfg.LayerConnections()
	g.connectLayers(g.rings[RingInside], g.rings[RingMiddle], inner)
	g.connectLayers(g.rings[RingMiddle], g.rings[RingOutside], outer)

	g.fillHallways()
}

// triangulate adds a candidate edge for every Delaunay edge between the room
// centres of ring. Edges crossing the disk of radius exclusion around the
// origin are dropped; an exclusion of zero keeps every edge.
//
// Postcondition: returns the number of candidate edges attached.
func (g *Generator) triangulate(ring []*level.Room, exclusion float64) int {
	if len(ring) == 0 {
		return 0
	}
	points := make([]geom.Vec2, len(ring))
	for i, r := range ring {
		points[i] = r.Mid()
	}

	n := 0
	for _, pair := range geom.Triangulate(points).Edges() {
		a, b := ring[pair[0]], ring[pair[1]]
		if exclusion != 0 && geom.SegmentIntersectsCircle(a.Mid(), b.Mid(), geom.Zero, exclusion) {
			continue
		}
		if g.graph.HasNeighbor(a, b) {
			continue
		}
		id, err := g.graph.NewEdge(a, b)
		if err != nil {
			g.logger.Warn("skipping candidate edge", zap.Error(err))
			continue
		}
		g.graph.Attach(id)
		g.canvas.Add(edgeElement(g.graph.Edge(id)))
		n++
	}
	return n
}

// hideCandidates removes every edge that did not become part of the level
// from the canvas.
func (g *Generator) hideCandidates() {
	for _, e := range g.graph.Edges() {
		if !e.Active {
			g.canvas.Remove(edgeElement(e))
		}
	}
}
