package levelgen

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// Hallway is the walkable geometry of one active edge. Path runs between the
// centres of the two door cells; Segments are the legs of the path inflated
// by the hallway radius.
type Hallway struct {
	Edge     level.EdgeID
	From     *level.Room
	To       *level.Room
	Path     []geom.Vec2
	Segments []geom.Rect
	Bounds   geom.Rect
}

var cellCentre = geom.V(0.5, 0.5)

// fillHallways carves a hallway for every active edge, visiting each edge once.
func (g *Generator) fillHallways() {
	for _, e := range g.graph.Edges() {
		e.Calculated = false
	}
	for _, r := range g.rooms {
		for _, id := range r.Edges {
			e := g.graph.Edge(id)
			if e.Calculated || !e.Active {
				continue
			}
			e.Calculated = true
			h, ok := g.carve(e)
			if !ok {
				g.logger.Warn("no door for hallway",
					zap.String("session", g.sessionID.String()),
					zap.Int("edge", int(e.ID)),
				)
				continue
			}
			g.hallways = append(g.hallways, h)
			g.canvas.Add(Element{Kind: ElementHallway, Edge: e.ID, Rect: h.Bounds, Path: h.Path})
		}
	}
	g.canvas.Layout()
}

// carve builds the hallway of e from the doors assigned to it in both rooms.
func (g *Generator) carve(e *level.Edge) (Hallway, bool) {
	from, ok := g.graph.DoorFor(e.Source, e.ID)
	if !ok {
		return Hallway{}, false
	}
	to, ok := g.graph.DoorFor(e.Neighbor, e.ID)
	if !ok {
		return Hallway{}, false
	}

	start := e.Source.Pos.Add(from).Add(cellCentre)
	end := e.Neighbor.Pos.Add(to).Add(cellCentre)
	horizontalFirst := from.X == 0 || from.X == e.Source.Size.X-1
	path := hallwayPath(start, end, horizontalFirst)

	h := Hallway{Edge: e.ID, From: e.Source, To: e.Neighbor, Path: path}
	for i := 0; i+1 < len(path); i++ {
		seg := geom.RectFromCorners(path[i], path[i+1]).Inflate(g.cfg.HallwayRadius())
		if i == 0 {
			h.Bounds = seg
		} else {
			h.Bounds = h.Bounds.Union(seg)
		}
		h.Segments = append(h.Segments, seg)
	}
	return h, true
}

// hallwayPath joins start and end with a straight segment when they share a
// row or column, and otherwise with an L whose first leg is horizontal when
// horizontalFirst is set.
func hallwayPath(start, end geom.Vec2, horizontalFirst bool) []geom.Vec2 {
	if start.X == end.X || start.Y == end.Y {
		return []geom.Vec2{start, end}
	}
	corner := geom.V(start.X, end.Y)
	if horizontalFirst {
		corner = geom.V(end.X, start.Y)
	}
	return []geom.Vec2{start, corner, end}
}
