package level

import (
	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

// Room is a rectangular area of the level cut from a Template.
//
// Pos is the bottom-left corner in level coordinates. Edges holds the ids of
// every edge incident to the room, kept ordered by Graph.Attach.
type Room struct {
	ID              int
	Type            RoomType
	Template        string
	Pos             geom.Vec2
	Size            geom.Vec2
	Doors           []geom.Vec2
	Fixed           bool
	Visited         bool
	RequiredPlayers int
	Edges           []EdgeID
	Gates           []Gate

	doors map[EdgeID]geom.Vec2
}

// NewRoom creates a room of the given type from a template, positioned at pos.
//
// Postcondition: the room owns a copy of the template's doors, keeping only
// doors that lie on a side of the footprint.
func NewRoom(id int, t RoomType, tmpl Template, pos geom.Vec2) *Room {
	d := make([]geom.Vec2, 0, len(tmpl.Doors))
	for _, door := range tmpl.Doors {
		if ValidDoor(tmpl.Size, door) {
			d = append(d, door)
		}
	}
	return &Room{
		ID:       id,
		Type:     t,
		Template: tmpl.Name,
		Pos:      pos,
		Size:     tmpl.Size,
		Doors:    d,
	}
}

// Rect returns the room footprint.
func (r *Room) Rect() geom.Rect {
	return geom.Rect{Origin: r.Pos, Size: r.Size}
}

// Mid returns the centre of the room.
func (r *Room) Mid() geom.Vec2 {
	return r.Pos.Add(r.Size.Scale(0.5))
}

// Radius returns half the diagonal of the room.
func (r *Room) Radius() float64 {
	return r.Size.Length() / 2
}

// Move translates the room by delta rounded to whole cells. Fixed rooms ignore moves.
func (r *Room) Move(delta geom.Vec2) {
	if r.Fixed {
		return
	}
	r.Pos = r.Pos.Add(delta.Round())
}

// SetPos places the room at pos, fixed or not.
func (r *Room) SetPos(pos geom.Vec2) {
	r.Pos = pos
}

// Intersects reports whether the footprints of r and o overlap with positive area.
func (r *Room) Intersects(o *Room) bool {
	return r.Rect().Intersects(o.Rect())
}

// Overlap returns the overlapping area of r and o.
func (r *Room) Overlap(o *Room) float64 {
	if !r.Intersects(o) {
		return 0
	}
	return r.Rect().Intersection(o.Rect()).Area()
}

// HasEdge reports whether the edge id is incident to r.
func (r *Room) HasEdge(id EdgeID) bool {
	for _, e := range r.Edges {
		if e == id {
			return true
		}
	}
	return false
}

// Gate is a door that leads somewhere: taking the door at Door moves the
// player to Arrival inside room To.
type Gate struct {
	Door    geom.Vec2 `yaml:"door"`
	Edge    EdgeID    `yaml:"edge"`
	To      int       `yaml:"to"`
	Arrival geom.Vec2 `yaml:"arrival"`
}

// UnusedDoors returns the template doors no gate uses. The game walls these off.
//
// Precondition: gates must already be established.
func (r *Room) UnusedDoors() []geom.Vec2 {
	used := make(map[geom.Vec2]bool, len(r.Gates))
	for _, g := range r.Gates {
		used[g.Door] = true
	}
	var out []geom.Vec2
	for _, d := range r.Doors {
		if !used[d] {
			out = append(out, d)
		}
	}
	return out
}

// StepInside returns the cell one step from door into the room interior.
func (r *Room) StepInside(door geom.Vec2) geom.Vec2 {
	switch {
	case door.X == 0:
		return geom.V(door.X+1, door.Y)
	case door.X == r.Size.X-1:
		return geom.V(door.X-1, door.Y)
	case door.Y == 0:
		return geom.V(door.X, door.Y+1)
	case door.Y == r.Size.Y-1:
		return geom.V(door.X, door.Y-1)
	}
	return door
}
