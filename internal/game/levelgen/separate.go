package levelgen

import (
	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// anyOverlapping reports whether any two rooms overlap.
func anyOverlapping(rooms []*level.Room) bool {
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Intersects(rooms[j]) {
				return true
			}
		}
	}
	return false
}

// separate runs one relaxation pass over every room pair and reports whether
// the rooms had already converged. Each overlapping pair is pushed one cell
// apart along the line between their centres; coincident centres are pushed
// along (1,1). Fixed rooms never move.
func (g *Generator) separate() bool {
	if !anyOverlapping(g.rooms) {
		return true
	}
	for i, a := range g.rooms {
		for _, b := range g.rooms[i+1:] {
			if !a.Intersects(b) {
				continue
			}
			dir := a.Mid().Sub(b.Mid())
			if dir.IsZero() {
				dir = geom.One
			}
			dir = dir.Normalize()
			a.Move(dir)
			b.Move(dir.Scale(-1))
		}
	}
	return false
}
