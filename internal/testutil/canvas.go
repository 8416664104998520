package testutil

import (
	"github.com/cory-johannsen/levelgen/internal/game/level"
	"github.com/cory-johannsen/levelgen/internal/game/levelgen"
)

type elementKey struct {
	kind levelgen.ElementKind
	room *level.Room
	edge level.EdgeID
}

func keyOf(e levelgen.Element) elementKey {
	return elementKey{kind: e.Kind, room: e.Room, edge: e.Edge}
}

// RecordingCanvas records every canvas call in order.
type RecordingCanvas struct {
	Added   []levelgen.Element
	Removed []levelgen.Element
	Layouts int

	live map[elementKey]levelgen.Element
}

// NewRecordingCanvas returns an empty RecordingCanvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{live: make(map[elementKey]levelgen.Element)}
}

// Add implements levelgen.Canvas.
func (c *RecordingCanvas) Add(e levelgen.Element) {
	c.Added = append(c.Added, e)
	c.live[keyOf(e)] = e
}

// Remove implements levelgen.Canvas.
func (c *RecordingCanvas) Remove(e levelgen.Element) {
	c.Removed = append(c.Removed, e)
	delete(c.live, keyOf(e))
}

// Layout implements levelgen.Canvas.
func (c *RecordingCanvas) Layout() {
	c.Layouts++
}

// Live returns the elements of kind that were added and not removed.
func (c *RecordingCanvas) Live(kind levelgen.ElementKind) []levelgen.Element {
	var out []levelgen.Element
	for k, e := range c.live {
		if k.kind == kind {
			out = append(out, e)
		}
	}
	return out
}
