package geom

import (
	"math"
	"sort"
)

// Triangulation is a planar Delaunay triangulation in half-edge form.
//
// Triangles holds three point indices per triangle in counter-clockwise
// order. Halfedges[i] is the index of the half-edge opposite to half-edge i,
// or -1 when i lies on the convex hull.
type Triangulation struct {
	Points    []Vec2
	Triangles []int
	Halfedges []int
}

// NextHalfedge returns the half-edge following e within its triangle.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// Triangulate computes the Delaunay triangulation of points. Points are swept
// in lexicographic order, each one joined to every hull edge it sees, and the
// result is legalized with Lawson edge flips.
//
// Postcondition: fewer than three points, or an all-collinear set, produce a
// Triangulation with no triangles; Edges then falls back to a chain.
// Coincident points after the first are left out of the triangulation.
// Every other point belongs to at least one triangle and every convex hull
// edge, collinear hull points included, is an edge of the triangulation.
func Triangulate(points []Vec2) Triangulation {
	t := Triangulation{Points: points}
	if len(points) < 3 || collinear(points) {
		return t
	}

	order := sweepOrder(points)
	if len(order) < 3 {
		return t
	}
	k := 2
	for k < len(order) && orient(points[order[0]], points[order[1]], points[order[k]]) == 0 {
		k++
	}
	if k == len(order) {
		return t
	}

	m := newMesh(points)
	apex := order[k]
	left := orient(points[order[0]], points[order[1]], points[apex]) > 0
	for i := 0; i+1 < k; i++ {
		a, b := order[i], order[i+1]
		if left {
			m.link(len(m.tris), [3]int{a, b, apex})
		} else {
			m.link(len(m.tris), [3]int{b, a, apex})
		}
	}

	for _, pi := range order[k+1:] {
		p := points[pi]
		var visible []dirEdge
		for _, tr := range m.tris {
			for j := 0; j < 3; j++ {
				e := dirEdge{tr[j], tr[(j+1)%3]}
				if _, inner := m.edges[e.reverse()]; !inner && orient(points[e.a], points[e.b], p) < 0 {
					visible = append(visible, e)
				}
			}
		}
		for _, e := range visible {
			m.link(len(m.tris), [3]int{e.b, e.a, pi})
		}
	}
	m.legalize()

	t.Triangles = make([]int, 0, len(m.tris)*3)
	for _, tr := range m.tris {
		t.Triangles = append(t.Triangles, tr[0], tr[1], tr[2])
	}
	t.Halfedges = linkHalfedges(t.Triangles)
	return t
}

// Edges returns every undirected edge of the triangulation exactly once, as
// pairs of point indices.
//
// Postcondition: when there are no triangles and at least two points, the
// points are chained in order along their common line.
func (t Triangulation) Edges() [][2]int {
	if len(t.Triangles) == 0 {
		return chain(t.Points)
	}
	var edges [][2]int
	for i := range t.Triangles {
		h := t.Halfedges[i]
		if h == -1 || i < h {
			edges = append(edges, [2]int{t.Triangles[i], t.Triangles[NextHalfedge(i)]})
		}
	}
	return edges
}

type dirEdge struct{ a, b int }

func (e dirEdge) reverse() dirEdge { return dirEdge{e.b, e.a} }

// mesh is a mutable triangle soup indexed by directed edge.
type mesh struct {
	points []Vec2
	tris   [][3]int
	edges  map[dirEdge]int
}

func newMesh(points []Vec2) *mesh {
	return &mesh{points: points, edges: make(map[dirEdge]int, len(points)*6)}
}

// link stores tr, counter-clockwise, at index ti. ti may be len(m.tris) to
// append.
func (m *mesh) link(ti int, tr [3]int) {
	if ti == len(m.tris) {
		m.tris = append(m.tris, tr)
	} else {
		m.tris[ti] = tr
	}
	for j := 0; j < 3; j++ {
		m.edges[dirEdge{tr[j], tr[(j+1)%3]}] = ti
	}
}

func (m *mesh) unlink(ti int) {
	tr := m.tris[ti]
	for j := 0; j < 3; j++ {
		delete(m.edges, dirEdge{tr[j], tr[(j+1)%3]})
	}
}

// third returns the vertex of triangle ti that is neither a nor b.
func (m *mesh) third(ti, a, b int) int {
	for _, v := range m.tris[ti] {
		if v != a && v != b {
			return v
		}
	}
	return -1
}

// flip replaces the diagonal e of the quad formed by its two triangles when
// the far vertex lies inside the circumcircle of e's triangle. It returns the
// quad's other two vertices when it flipped.
func (m *mesh) flip(e dirEdge) (c, d int, ok bool) {
	t1, ok1 := m.edges[e]
	t2, ok2 := m.edges[e.reverse()]
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	c, d = m.third(t1, e.a, e.b), m.third(t2, e.b, e.a)
	if !inCircumcircle(m.points[d], m.points[e.a], m.points[e.b], m.points[c]) {
		return 0, 0, false
	}
	m.unlink(t1)
	m.unlink(t2)
	m.link(t1, [3]int{e.a, d, c})
	m.link(t2, [3]int{d, e.b, c})
	return c, d, true
}

// legalize flips edges until every interior edge is locally Delaunay.
func (m *mesh) legalize() {
	var stack []dirEdge
	for _, tr := range m.tris {
		for j := 0; j < 3; j++ {
			stack = append(stack, dirEdge{tr[j], tr[(j+1)%3]})
		}
	}
	// Lawson flipping needs O(n²) flips at most; the cap stops flip cycles
	// from rounding on near-cocircular input.
	limit := 4*len(m.points)*len(m.points) + 16
	for flips := 0; len(stack) > 0 && flips < limit; {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c, d, ok := m.flip(e)
		if !ok {
			continue
		}
		flips++
		stack = append(stack, dirEdge{e.a, d}, dirEdge{d, e.b}, dirEdge{e.b, c}, dirEdge{c, e.a})
	}
}

// sweepOrder returns point indices sorted by x then y, keeping only the first
// of any coincident points.
func sweepOrder(points []Vec2) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := points[order[i]], points[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	out := order[:1]
	for _, i := range order[1:] {
		if points[i] != points[out[len(out)-1]] {
			out = append(out, i)
		}
	}
	return out
}

func linkHalfedges(triangles []int) []int {
	halfedges := make([]int, len(triangles))
	index := make(map[dirEdge]int, len(triangles))
	for i := range triangles {
		index[dirEdge{triangles[i], triangles[NextHalfedge(i)]}] = i
	}
	for i := range triangles {
		if j, ok := index[dirEdge{triangles[NextHalfedge(i)], triangles[i]}]; ok {
			halfedges[i] = j
		} else {
			halfedges[i] = -1
		}
	}
	return halfedges
}

// orient is positive when c lies left of the directed line a→b, negative when
// it lies right and zero when the three are collinear.
func orient(a, b, c Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
// inCircumcircle reports whether p lies strictly inside the circumcircle of
// the counter-clockwise triangle (a, b, c).
func inCircumcircle(p, a, b, c Vec2) bool {
	adx, ady := a.X-p.X, a.Y-p.Y
	bdx, bdy := b.X-p.X, b.Y-p.Y
	cdx, cdy := c.X-p.X, c.Y-p.Y

	det := (adx*adx+ady*ady)*(bdx*cdy-cdx*bdy) -
		(bdx*bdx+bdy*bdy)*(adx*cdy-cdx*ady) +
		(cdx*cdx+cdy*cdy)*(adx*bdy-bdx*ady)
	return det > 0
}

// farthestFrom returns the index of the point farthest from points[0].
func farthestFrom(points []Vec2) int {
	best, bestD := 0, -1.0
	for i, p := range points {
		if d := p.Sub(points[0]).Dot(p.Sub(points[0])); d > bestD {
			best, bestD = i, d
		}
	}
	return best
}

func collinear(points []Vec2) bool {
	p0 := points[0]
	d := points[farthestFrom(points)].Sub(p0)
	scale := d.Dot(d)
	if scale < epsilon {
		return true
	}
	for _, p := range points[1:] {
		if math.Abs(d.Cross(p.Sub(p0))) > epsilon*scale {
			return false
		}
	}
	return true
}

// chain orders points along the direction of their greatest spread and links
// consecutive points. The direction always points towards increasing x, or
// increasing y on a vertical line, so the chain does not depend on input order.
func chain(points []Vec2) [][2]int {
	if len(points) < 2 {
		return nil
	}
	p0 := points[0]
	d := points[farthestFrom(points)].Sub(p0)
	if d.X < 0 || (d.X == 0 && d.Y < 0) {
		d = d.Scale(-1)
	}
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return points[order[i]].Sub(p0).Dot(d) < points[order[j]].Sub(p0).Dot(d)
	})
	edges := make([][2]int, 0, len(points)-1)
	for i := 0; i+1 < len(order); i++ {
		edges = append(edges, [2]int{order[i], order[i+1]})
	}
	return edges
}
