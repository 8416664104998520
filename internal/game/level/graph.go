package level

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

// ErrSelfEdge is returned when an edge would join a room to itself.
var ErrSelfEdge = errors.New("edge endpoints must be distinct rooms")

// Graph owns every edge of a level. Rooms refer to edges by EdgeID so both
// endpoints observe the same Active flag.
type Graph struct {
	edges []*Edge
}

// NewGraph returns an empty edge arena.
func NewGraph() *Graph {
	return &Graph{}
}

// NewEdge allocates an inactive candidate edge between a and b. The edge is not
// attached to either room until Attach is called.
//
// Precondition: a and b must be non-nil.
// Postcondition: Returns ErrSelfEdge if a == b.
func (g *Graph) NewEdge(a, b *Room) (EdgeID, error) {
	if a == b {
		return NoEdge, fmt.Errorf("room %d: %w", a.ID, ErrSelfEdge)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge{ID: id, Source: a, Neighbor: b})
	return id, nil
}

// Edge returns the edge for id, or nil if id is not in the arena.
func (g *Graph) Edge(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(g.edges) {
		return nil
	}
	return g.edges[id]
}

// Edges returns every edge in allocation order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Len returns the number of allocated edges.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Reset drops every edge and clears the adjacency lists of rooms.
func (g *Graph) Reset(rooms []*Room) {
	g.edges = nil
	for _, r := range rooms {
		r.Edges = nil
		r.Gates = nil
		r.doors = nil
	}
}

// Attach inserts id into the adjacency list of both endpoints.
//
// Each list stays ordered by the side of the room the edge leaves through
// (right, top, left, bottom) and then counter-clockwise within a side.
// Attaching an edge twice is a no-op.
func (g *Graph) Attach(id EdgeID) {
	e := g.Edge(id)
	if e == nil {
		return
	}
	g.insert(e.Source, id)
	g.insert(e.Neighbor, id)
}

func (g *Graph) insert(r *Room, id EdgeID) {
	if r.HasEdge(id) {
		return
	}
	side, angle := g.order(r, id)
	i := sort.Search(len(r.Edges), func(i int) bool {
		s, a := g.order(r, r.Edges[i])
		if side != s {
			return side < s
		}
		return angle < a
	})
	r.Edges = append(r.Edges, NoEdge)
	copy(r.Edges[i+1:], r.Edges[i:])
	r.Edges[i] = id
}

// order returns the sort key of edge id within the adjacency list of r.
// The right side straddles angle zero so it is keyed in (-π, π].
func (g *Graph) order(r *Room, id EdgeID) (geom.Side, float64) {
	e := g.edges[id]
	mid := r.Mid()
	dir := e.Other(r).Mid().Sub(mid)
	side, _, ok := r.Rect().SideHit(mid, e.Other(r).Mid())
	if !ok {
		return geom.SideNone, dir.PositiveAngle()
	}
	if side == geom.SideRight {
		return side, dir.Angle()
	}
	return side, dir.PositiveAngle()
}

// FindEdge returns the edge joining a and b, or NoEdge.
func (g *Graph) FindEdge(a, b *Room) EdgeID {
	for _, id := range a.Edges {
		if g.edges[id].Connects(a, b) {
			return id
		}
	}
	return NoEdge
}

// HasNeighbor reports whether r has any edge, active or not, to n.
func (g *Graph) HasNeighbor(r, n *Room) bool {
	return g.FindEdge(r, n) != NoEdge
}

// ActiveDegree returns the number of active edges incident to r.
func (g *Graph) ActiveDegree(r *Room) int {
	n := 0
	for _, id := range r.Edges {
		if g.edges[id].Active {
			n++
		}
	}
	return n
}

// ActiveEdges returns the active edges incident to r in adjacency order.
func (g *Graph) ActiveEdges(r *Room) []*Edge {
	var out []*Edge
	for _, id := range r.Edges {
		if g.edges[id].Active {
			out = append(out, g.edges[id])
		}
	}
	return out
}
