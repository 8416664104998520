package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	jbgeom "github.com/jbeda/geom"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

func TestVec2_NormalizeZero(t *testing.T) {
	assert.Equal(t, geom.Zero, geom.Zero.Normalize())
}

func TestVec2_PositiveAngle(t *testing.T) {
	assert.InDelta(t, 3*math.Pi/2, geom.V(0, -1).PositiveAngle(), 1e-12)
	assert.InDelta(t, 0, geom.V(1, 0).PositiveAngle(), 1e-12)
}

func TestVec2_Arithmetic(t *testing.T) {
	a, b := geom.V(3, 4), geom.V(1, -2)
	assert.Equal(t, geom.V(4, 2), a.Add(b))
	assert.Equal(t, geom.V(2, 6), a.Sub(b))
	assert.Equal(t, geom.V(6, 8), a.Scale(2))
	assert.InDelta(t, 5, a.Length(), 1e-12)
	assert.InDelta(t, math.Hypot(2, 6), a.Distance(b), 1e-12)
	assert.InDelta(t, 1, a.Normalize().Length(), 1e-12)
	assert.Equal(t, jbgeom.Coord{X: 3, Y: 4}, a.Coord())
}

func TestVec2_YAML(t *testing.T) {
	out, err := yaml.Marshal(geom.V(1.5, -2))
	require.NoError(t, err)
	assert.Equal(t, "x: 1.5\ny: -2\n", string(out))

	var v geom.Vec2
	require.NoError(t, yaml.Unmarshal([]byte("x: 7\ny: 9\n"), &v))
	assert.Equal(t, geom.V(7, 9), v)
}

func TestAngleDiff_Wraps(t *testing.T) {
	assert.InDelta(t, 0.2, geom.AngleDiff(0.1, 2*math.Pi-0.1), 1e-9)
	assert.InDelta(t, math.Pi, geom.AngleDiff(0, math.Pi), 1e-9)
}

func TestRect_Intersects(t *testing.T) {
	a := geom.R(0, 0, 10, 10)
	assert.True(t, a.Intersects(geom.R(5, 5, 10, 10)))
	assert.False(t, a.Intersects(geom.R(10, 0, 5, 5)), "touching edges must not overlap")
	assert.False(t, a.Intersects(geom.R(20, 20, 1, 1)))
}

func TestRect_Intersection(t *testing.T) {
	got := geom.R(0, 0, 10, 10).Intersection(geom.R(6, 7, 10, 10))
	assert.Equal(t, geom.R(6, 7, 4, 3), got)
	assert.Zero(t, geom.R(0, 0, 1, 1).Intersection(geom.R(5, 5, 1, 1)).Area())
}

func TestRect_Bounds(t *testing.T) {
	r := geom.R(-2, 3, 10, 4)
	b := r.Bounds()
	assert.Equal(t, jbgeom.Coord{X: -2, Y: 3}, b.Min)
	assert.Equal(t, jbgeom.Coord{X: 8, Y: 7}, b.Max)
	assert.Equal(t, r, geom.FromBounds(b))
}

func TestRect_FromCornersAndUnion(t *testing.T) {
	assert.Equal(t, geom.R(1, 2, 4, 6), geom.RectFromCorners(geom.V(5, 2), geom.V(1, 8)))
	assert.Equal(t, geom.R(0, 0, 2, 2), geom.RectFromCorners(geom.V(2, 2), geom.Zero))

	u := geom.R(0, 0, 2, 2).Union(geom.R(5, -3, 1, 1))
	assert.Equal(t, geom.R(0, -3, 6, 5), u)
	assert.Equal(t, geom.R(0, 0, 4, 4), geom.R(0, 0, 4, 4).Union(geom.R(1, 1, 1, 1)), "contained rect")
}

func TestRect_SideHit(t *testing.T) {
	r := geom.R(0, 0, 10, 10)
	mid := r.Mid()

	cases := []struct {
		to   geom.Vec2
		side geom.Side
	}{
		{geom.V(30, 5), geom.SideRight},
		{geom.V(5, 30), geom.SideTop},
		{geom.V(-30, 5), geom.SideLeft},
		{geom.V(5, -30), geom.SideBottom},
	}
	for _, c := range cases {
		side, at, ok := r.SideHit(mid, c.to)
		require.True(t, ok)
		assert.Equal(t, c.side, side, "towards %v", c.to)
		assert.True(t, at.X >= 0 && at.X <= 10 && at.Y >= 0 && at.Y <= 10)
	}

	_, _, ok := r.SideHit(geom.V(2, 2), geom.V(3, 3))
	assert.False(t, ok, "segment fully inside crosses no side")
}

func TestSegmentIntersectsCircle_Cases(t *testing.T) {
	o := geom.Zero
	assert.True(t, geom.SegmentIntersectsCircle(geom.V(-10, 0), geom.V(10, 0), o, 5), "chord through the centre")
	assert.False(t, geom.SegmentIntersectsCircle(geom.V(-10, 6), geom.V(10, 6), o, 5), "passes above")
	assert.False(t, geom.SegmentIntersectsCircle(geom.V(6, 0), geom.V(20, 0), o, 5), "points away")
	assert.True(t, geom.SegmentIntersectsCircle(geom.V(1, 1), geom.V(2, 1), o, 5), "fully inside")
	assert.True(t, geom.SegmentIntersectsCircle(geom.V(1, 1), geom.V(1, 1), o, 5), "degenerate inside")
	assert.False(t, geom.SegmentIntersectsCircle(geom.V(9, 9), geom.V(9, 9), o, 5), "degenerate outside")
}

// TestSegmentIntersectsCircle_EndpointInside verifies that a segment with an
// endpoint strictly inside the circle always intersects it.
func TestSegmentIntersectsCircle_EndpointInside(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := rapid.Float64Range(1, 100).Draw(rt, "r")
		ang := rapid.Float64Range(0, 2*math.Pi).Draw(rt, "ang")
		frac := rapid.Float64Range(0, 0.99).Draw(rt, "frac")
		inside := geom.V(math.Cos(ang), math.Sin(ang)).Scale(r * frac)
		other := geom.V(
			rapid.Float64Range(-500, 500).Draw(rt, "ox"),
			rapid.Float64Range(-500, 500).Draw(rt, "oy"),
		)
		assert.True(rt, geom.SegmentIntersectsCircle(inside, other, geom.Zero, r))
		assert.True(rt, geom.SegmentIntersectsCircle(other, inside, geom.Zero, r))
	})
}

// TestSegmentIntersectsCircle_Outside verifies that a segment lying entirely
// in a half-plane beyond the circle never intersects it.
func TestSegmentIntersectsCircle_Outside(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := rapid.Float64Range(1, 100).Draw(rt, "r")
		gap := rapid.Float64Range(0.01, 50).Draw(rt, "gap")
		y0 := rapid.Float64Range(-500, 500).Draw(rt, "y0")
		y1 := rapid.Float64Range(-500, 500).Draw(rt, "y1")
		x := r + gap
		assert.False(rt, geom.SegmentIntersectsCircle(geom.V(x, y0), geom.V(x+gap, y1), geom.Zero, r))
	})
}

func TestTriangulate_Square(t *testing.T) {
	tri := geom.Triangulate([]geom.Vec2{
		geom.V(0, 0), geom.V(10, 0), geom.V(10, 10), geom.V(0, 11),
	})
	assert.Len(t, tri.Triangles, 6, "four points in convex position give two triangles")
	assert.Len(t, tri.Edges(), 5, "four hull edges and one diagonal")
}

func TestTriangulate_Collinear(t *testing.T) {
	pts := []geom.Vec2{geom.V(20, 0), geom.V(0, 0), geom.V(10, 0)}
	tri := geom.Triangulate(pts)
	assert.Empty(t, tri.Triangles)
	assert.Equal(t, [][2]int{{1, 2}, {2, 0}}, tri.Edges())
}

func TestTriangulate_CollinearChainIgnoresInputOrder(t *testing.T) {
	cases := []struct {
		name string
		pts  []geom.Vec2
		want [][2]int
	}{
		{"ascending first", []geom.Vec2{geom.V(0, 0), geom.V(20, 0), geom.V(10, 0)}, [][2]int{{0, 2}, {2, 1}}},
		{"descending first", []geom.Vec2{geom.V(20, 0), geom.V(10, 0), geom.V(0, 0)}, [][2]int{{2, 1}, {1, 0}}},
		{"vertical", []geom.Vec2{geom.V(0, 5), geom.V(0, -5), geom.V(0, 0)}, [][2]int{{1, 2}, {2, 0}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, geom.Triangulate(c.pts).Edges())
		})
	}
}

// TestTriangulate_ThinSetKeepsHull covers a nearly flat set whose hull runs
// through three collinear points; every point must stay connected.
func TestTriangulate_ThinSetKeepsHull(t *testing.T) {
	pts := []geom.Vec2{geom.V(192, 0), geom.V(42, 1), geom.V(120, 0), geom.V(55, 0)}
	tri := geom.Triangulate(pts)

	require.Len(t, tri.Triangles, 6, "the off-line point fans over the three collinear ones")
	edges := tri.Edges()
	assert.Len(t, edges, 5)
	assert.Equal(t, len(pts), connected(edges, len(pts)))

	undirected := make(map[[2]int]bool)
	for _, e := range edges {
		undirected[[2]int{min(e[0], e[1]), max(e[0], e[1])}] = true
	}
	for _, hull := range [][2]int{{2, 3}, {0, 2}, {0, 1}, {1, 3}} {
		assert.True(t, undirected[hull], "hull edge %v", hull)
	}
}

// TestTriangulate_ThinSetsConnected verifies that point sets spread along a
// line, with small perpendicular jitter, still triangulate into one component.
func TestTriangulate_ThinSetsConnected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 30).Draw(rt, "n")
		vertical := rapid.Bool().Draw(rt, "vertical")
		seen := make(map[geom.Vec2]bool)
		var pts []geom.Vec2
		for len(pts) < n {
			along := float64(rapid.IntRange(-400, 400).Draw(rt, "along"))
			across := float64(rapid.IntRange(0, 2).Draw(rt, "across"))
			p := geom.V(along, across)
			if vertical {
				p = geom.V(across, along)
			}
			if !seen[p] {
				seen[p] = true
				pts = append(pts, p)
			}
		}
		tri := geom.Triangulate(pts)
		assert.Equal(rt, n, connected(tri.Edges(), n), "points %v", pts)
	})
}

func TestTriangulate_TwoPoints(t *testing.T) {
	tri := geom.Triangulate([]geom.Vec2{geom.V(0, 0), geom.V(3, 4)})
	assert.Equal(t, [][2]int{{0, 1}}, tri.Edges())
	assert.Empty(t, geom.Triangulate([]geom.Vec2{geom.V(1, 1)}).Edges())
}

// TestTriangulate_EdgeCount verifies Euler's relation for planar
// triangulations: E = 3n - 3 - h, with every point connected.
func TestTriangulate_EdgeCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 40).Draw(rt, "n")
		seen := make(map[geom.Vec2]bool)
		var pts []geom.Vec2
		for len(pts) < n {
			p := geom.V(
				float64(rapid.IntRange(-200, 200).Draw(rt, "x"))+0.5,
				float64(rapid.IntRange(-200, 200).Draw(rt, "y"))+0.5,
			)
			if !seen[p] {
				seen[p] = true
				pts = append(pts, p)
			}
		}
		tri := geom.Triangulate(pts)
		edges := tri.Edges()

		hull := 0
		for _, h := range tri.Halfedges {
			if h == -1 {
				hull++
			}
		}
		if len(tri.Triangles) > 0 {
			assert.Equal(rt, len(tri.Triangles)/3*3, len(tri.Triangles))
			assert.Equal(rt, (len(tri.Triangles)+hull)/2, len(edges))
		}

		for _, e := range edges {
			assert.NotEqual(rt, e[0], e[1], "no self edges")
		}
		assert.Equal(rt, n, connected(edges, n), "triangulation must connect every point")
	})
}

// connected returns the size of the component containing point 0 under a
// union-find over edges.
func connected(edges [][2]int, n int) int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for _, e := range edges {
		parent[find(e[0])] = find(e[1])
	}
	size := 0
	for i := range parent {
		if find(i) == find(0) {
			size++
		}
	}
	return size
}
