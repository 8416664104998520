// Package level provides the level model produced by generation: rooms,
// the edges between them, the templates rooms are cut from, and the doors
// that hallways attach to.
package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RoomType defines when a room is spawned by the generator and how the game
// treats it afterwards.
type RoomType int

// Room types.
const (
	// Terminal rooms require a number of players to activate.
	Terminal RoomType = iota
	// Spawn is the single fixed room at the centre of the level.
	Spawn
	// Standard is any ordinary room.
	Standard
)

// String returns the lower-case room type name.
func (t RoomType) String() string {
	switch t {
	case Terminal:
		return "terminal"
	case Spawn:
		return "spawn"
	case Standard:
		return "standard"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the type by name.
func (t RoomType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes a type name written by MarshalYAML.
func (t *RoomType) UnmarshalYAML(value *yaml.Node) error {
	for c := Terminal; c <= Standard; c++ {
		if value.Value == c.String() {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown room type %q", value.Line, value.Value)
}

// EdgeKind records which generation phase made an edge active.
type EdgeKind int

// Edge kinds.
const (
	// Candidate edges come from triangulation and are not yet part of the level.
	Candidate EdgeKind = iota
	// Tree edges form a ring's spanning tree.
	Tree
	// Reinserted edges were restored after the spanning tree to add cycles.
	Reinserted
	// Connection edges join two rings.
	Connection
)

// String returns the lower-case edge kind name.
func (k EdgeKind) String() string {
	switch k {
	case Candidate:
		return "candidate"
	case Tree:
		return "tree"
	case Reinserted:
		return "reinserted"
	case Connection:
		return "connection"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the kind by name.
func (k EdgeKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes a kind name written by MarshalYAML.
func (k *EdgeKind) UnmarshalYAML(value *yaml.Node) error {
	for c := Candidate; c <= Connection; c++ {
		if value.Value == c.String() {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown edge kind %q", value.Line, value.Value)
}
