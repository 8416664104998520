package level

import (
	"math"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

// AssignDoors pairs every active edge of r with one of its doors so that the
// total angular difference between the edge direction and the door direction
// is minimal. When r has more active edges than doors the surplus edges share
// the door closest to their direction.
//
// Precondition: r must be attached to this graph.
// Postcondition: DoorFor(r, id) answers for every active edge of r.
func (g *Graph) AssignDoors(r *Room) {
	r.doors = make(map[EdgeID]geom.Vec2)
	edges := g.ActiveEdges(r)
	if len(edges) == 0 {
		return
	}
	if len(r.Doors) == 0 {
		for _, e := range edges {
			r.doors[e.ID] = exitCell(r, e)
		}
		return
	}

	cost := make([][]float64, len(edges))
	for i, e := range edges {
		cost[i] = make([]float64, len(r.Doors))
		ea := edgeDirection(r, e).Angle()
		for j, d := range r.Doors {
			cost[i][j] = geom.AngleDiff(ea, doorDirection(r, d).Angle())
		}
	}

	match := hungarian(cost)
	for i, e := range edges {
		j := match[i]
		if j < 0 {
			j = cheapest(cost[i])
		}
		r.doors[e.ID] = r.Doors[j]
	}
}

// DoorFor returns the door of r assigned to edge id, assigning doors on first use.
//
// Postcondition: ok is false if id is not an active edge of r.
func (g *Graph) DoorFor(r *Room, id EdgeID) (door geom.Vec2, ok bool) {
	e := g.Edge(id)
	if e == nil || !e.Active || !r.HasEdge(id) {
		return geom.Zero, false
	}
	if r.doors == nil {
		g.AssignDoors(r)
	}
	door, ok = r.doors[id]
	return door, ok
}

// edgeDirection points from the room centre to where the edge leaves the room.
func edgeDirection(r *Room, e *Edge) geom.Vec2 {
	mid := r.Mid()
	if _, hit, ok := r.Rect().SideHit(mid, e.Other(r).Mid()); ok {
		return hit.Sub(mid)
	}
	return e.Other(r).Mid().Sub(mid)
}

// doorDirection points from the room centre to the centre of the door cell.
func doorDirection(r *Room, door geom.Vec2) geom.Vec2 {
	return door.Add(geom.V(0.5, 0.5)).Sub(r.Size.Scale(0.5))
}

// exitCell returns the boundary cell where e leaves r, for rooms without doors.
func exitCell(r *Room, e *Edge) geom.Vec2 {
	p := r.Mid().Add(edgeDirection(r, e)).Sub(r.Pos).Floor()
	p.X = math.Max(0, math.Min(r.Size.X-1, p.X))
	p.Y = math.Max(0, math.Min(r.Size.Y-1, p.Y))
	return p
}

func cheapest(row []float64) int {
	best := 0
	for j := range row {
		if row[j] < row[best] {
			best = j
		}
	}
	return best
}

// hungarian solves the rectangular assignment problem for cost, returning for
// each row the assigned column or -1 when there are more rows than columns.
func hungarian(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}
	m := len(cost[0])
	if m == 0 {
		out := make([]int, n)
		for i := range out {
			out[i] = -1
		}
		return out
	}
	if n > m {
		t := make([][]float64, m)
		for j := range t {
			t[j] = make([]float64, n)
			for i := 0; i < n; i++ {
				t[j][i] = cost[i][j]
			}
		}
		cols := hungarian(t)
		out := make([]int, n)
		for i := range out {
			out[i] = -1
		}
		for j, i := range cols {
			out[i] = j
		}
		return out
	}

	// Potentials method over 1-indexed rows and columns; column 0 is the
	// virtual start of each augmenting path.
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)
	way := make([]int, m+1)
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			out[p[j]-1] = j - 1
		}
	}
	return out
}
