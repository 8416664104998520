package level

import (
	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

// EdgeID is a stable handle to an edge in a Graph.
type EdgeID int

// NoEdge is the zero handle returned when no edge matches.
const NoEdge EdgeID = -1

// Edge is an undirected connection between two rooms.
//
// Weight is not stored: rooms keep moving until separation converges, so the
// weight is always the distance between the rooms' current midpoints.
type Edge struct {
	ID         EdgeID
	Source     *Room
	Neighbor   *Room
	Active     bool
	Calculated bool
	Kind       EdgeKind
}

// Weight returns the distance between the midpoints of the two rooms.
func (e *Edge) Weight() float64 {
	return e.Source.Mid().Distance(e.Neighbor.Mid())
}

// Same reports whether e and o connect the same pair of rooms in either order.
func (e *Edge) Same(o *Edge) bool {
	return (e.Source == o.Source && e.Neighbor == o.Neighbor) ||
		(e.Source == o.Neighbor && e.Neighbor == o.Source)
}

// Connects reports whether e joins a and b in either order.
func (e *Edge) Connects(a, b *Room) bool {
	return (e.Source == a && e.Neighbor == b) || (e.Source == b && e.Neighbor == a)
}

// SharesRoom reports whether e and o have at least one endpoint in common.
func (e *Edge) SharesRoom(o *Edge) bool {
	return e.Source == o.Source || e.Source == o.Neighbor ||
		e.Neighbor == o.Source || e.Neighbor == o.Neighbor
}

// Touches reports whether r is an endpoint of e.
func (e *Edge) Touches(r *Room) bool {
	return e.Source == r || e.Neighbor == r
}

// Other returns the endpoint of e that is not r.
//
// Precondition: r must be an endpoint of e.
func (e *Edge) Other(r *Room) *Room {
	if e.Source == r {
		return e.Neighbor
	}
	return e.Source
}

// IntersectsCircle reports whether the segment between the two midpoints
// touches the circle at origin with radius r.
func (e *Edge) IntersectsCircle(origin geom.Vec2, r float64) bool {
	return geom.SegmentIntersectsCircle(e.Source.Mid(), e.Neighbor.Mid(), origin, r)
}

// Activate marks the edge active and records the phase that activated it.
func (e *Edge) Activate(kind EdgeKind) {
	e.Active = true
	e.Kind = kind
}

// Deactivate returns the edge to the candidate pool.
func (e *Edge) Deactivate() {
	e.Active = false
	e.Kind = Candidate
}
