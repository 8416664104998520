package levelgen

import (
	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// Layout is a serialisable snapshot of a generated level.
type Layout struct {
	Session  string          `yaml:"session"`
	Seed     *uint64         `yaml:"seed,omitempty"`
	Step     string          `yaml:"step"`
	Rooms    []LayoutRoom    `yaml:"rooms"`
	Edges    []LayoutEdge    `yaml:"edges"`
	Hallways []LayoutHallway `yaml:"hallways"`
}

// LayoutRoom is one room of a Layout.
type LayoutRoom struct {
	ID              int            `yaml:"id"`
	Type            level.RoomType `yaml:"type"`
	Template        string         `yaml:"template"`
	Ring            *Ring          `yaml:"ring,omitempty"`
	X               float64        `yaml:"x"`
	Y               float64        `yaml:"y"`
	W               float64        `yaml:"w"`
	H               float64        `yaml:"h"`
	Doors           []geom.Vec2    `yaml:"doors"`
	RequiredPlayers int            `yaml:"required_players,omitempty"`
	Gates           []level.Gate   `yaml:"gates,omitempty"`
}

// LayoutEdge is one active edge of a Layout.
type LayoutEdge struct {
	ID     level.EdgeID   `yaml:"id"`
	From   int            `yaml:"from"`
	To     int            `yaml:"to"`
	Kind   level.EdgeKind `yaml:"kind"`
	Weight float64        `yaml:"weight"`
}

// LayoutHallway is the path of one hallway of a Layout.
type LayoutHallway struct {
	Edge level.EdgeID `yaml:"edge"`
	Path []geom.Vec2  `yaml:"path"`
}

// Snapshot captures the current level. It can be taken at any step; rooms
// not yet assigned to a ring have no ring.
func (g *Generator) Snapshot() Layout {
	l := Layout{
		Session: g.sessionID.String(),
		Step:    g.state.String(),
	}
	if s, ok := g.src.(seeder); ok {
		seed := s.Seed()
		l.Seed = &seed
	}

	rings := make(map[*level.Room]Ring)
	for ring := RingInside; ring <= RingOutside; ring++ {
		for _, r := range g.rings[ring] {
			rings[r] = ring
		}
	}

	for _, r := range g.rooms {
		lr := LayoutRoom{
			ID:              r.ID,
			Type:            r.Type,
			Template:        r.Template,
			X:               r.Pos.X,
			Y:               r.Pos.Y,
			W:               r.Size.X,
			H:               r.Size.Y,
			Doors:           r.Doors,
			RequiredPlayers: r.RequiredPlayers,
			Gates:           r.Gates,
		}
		if ring, ok := rings[r]; ok {
			lr.Ring = &ring
		}
		l.Rooms = append(l.Rooms, lr)
	}

	for _, e := range g.graph.Edges() {
		if !e.Active {
			continue
		}
		l.Edges = append(l.Edges, LayoutEdge{
			ID:     e.ID,
			From:   e.Source.ID,
			To:     e.Neighbor.ID,
			Kind:   e.Kind,
			Weight: e.Weight(),
		})
	}

	for _, h := range g.hallways {
		l.Hallways = append(l.Hallways, LayoutHallway{Edge: h.Edge, Path: h.Path})
	}
	return l
}
