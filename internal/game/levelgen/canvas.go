package levelgen

import (
	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// ElementKind classifies a visual element handed to a Canvas.
type ElementKind int

// Element kinds.
const (
	ElementRoom ElementKind = iota
	ElementEdge
	ElementHallway
)

// String returns the lower-case element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElementRoom:
		return "room"
	case ElementEdge:
		return "edge"
	case ElementHallway:
		return "hallway"
	default:
		return "unknown"
	}
}

// Element is one piece of generated geometry. Room is set for room elements,
// Edge for edge and hallway elements.
type Element struct {
	Kind ElementKind
	Room *level.Room
	Edge level.EdgeID
	Rect geom.Rect
	Path []geom.Vec2
}

// Canvas receives generated geometry so a host can draw generation in progress.
// The generator never reads anything back from it.
type Canvas interface {
	// Add attaches an element.
	Add(e Element)
	// Remove detaches an element previously added with the same Kind, Room and Edge.
	Remove(e Element)
	// Layout asks the host to refresh positions after rooms moved.
	Layout()
}

// NopCanvas discards everything.
type NopCanvas struct{}

// Add implements Canvas.
func (NopCanvas) Add(Element) {}

// Remove implements Canvas.
func (NopCanvas) Remove(Element) {}

// Layout implements Canvas.
func (NopCanvas) Layout() {}

func roomElement(r *level.Room) Element {
	return Element{Kind: ElementRoom, Room: r, Edge: level.NoEdge, Rect: r.Rect()}
}

func edgeElement(e *level.Edge) Element {
	return Element{
		Kind: ElementEdge,
		Edge: e.ID,
		Path: []geom.Vec2{e.Source.Mid(), e.Neighbor.Mid()},
	}
}
