package level_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

func roomAt(id int, mid geom.Vec2) *level.Room {
	tmpl := level.DefaultCatalogue().Spawn
	return level.NewRoom(id, level.Standard, tmpl, mid.Sub(tmpl.Size.Scale(0.5)))
}

func TestNewRoom_CopiesDoors(t *testing.T) {
	cat := level.DefaultCatalogue()
	r := level.NewRoom(0, level.Standard, cat.Regular[0], geom.Zero)
	r.Doors[0] = geom.V(99, 99)
	assert.Equal(t, geom.V(0, 3), cat.Regular[0].Doors[0])
	assert.Equal(t, "standard-1", r.Template)
}

func TestNewRoom_DropsInvalidDoors(t *testing.T) {
	tmpl := level.Template{
		Name:  "odd",
		Size:  geom.V(5, 5),
		Doors: []geom.Vec2{geom.V(0, 2), geom.V(0, 0), geom.V(2, 2), geom.V(4, 3), geom.V(7, 1)},
	}
	r := level.NewRoom(1, level.Standard, tmpl, geom.Zero)
	assert.Equal(t, []geom.Vec2{geom.V(0, 2), geom.V(4, 3)}, r.Doors)
}

func TestRoom_Geometry(t *testing.T) {
	r := roomAt(0, geom.Zero)
	assert.Equal(t, geom.V(-5.5, -5.5), r.Pos)
	assert.Equal(t, geom.Zero, r.Mid())
	assert.InDelta(t, math.Sqrt(242)/2, r.Radius(), 1e-9)
}

func TestRoom_MoveRounds(t *testing.T) {
	r := level.NewRoom(0, level.Standard, level.DefaultCatalogue().Regular[0], geom.Zero)
	r.Move(geom.V(0.6, -1.4))
	assert.Equal(t, geom.V(1, -1), r.Pos)
}

func TestRoom_FixedIgnoresMove(t *testing.T) {
	r := roomAt(0, geom.Zero)
	r.Fixed = true
	r.Move(geom.V(3, 3))
	assert.Equal(t, geom.V(-5.5, -5.5), r.Pos)
	r.SetPos(geom.V(1, 1))
	assert.Equal(t, geom.V(1, 1), r.Pos)
}

func TestRoom_Overlap(t *testing.T) {
	a := roomAt(0, geom.Zero)
	b := roomAt(1, geom.V(5, 0))
	c := roomAt(2, geom.V(11, 0))
	assert.True(t, a.Intersects(b))
	assert.InDelta(t, 6*11, a.Overlap(b), 1e-9)
	assert.False(t, a.Intersects(c), "touching rooms do not overlap")
	assert.Zero(t, a.Overlap(c))
}

func TestRoom_StepInside(t *testing.T) {
	r := roomAt(0, geom.Zero)
	assert.Equal(t, geom.V(1, 5), r.StepInside(geom.V(0, 5)))
	assert.Equal(t, geom.V(9, 5), r.StepInside(geom.V(10, 5)))
	assert.Equal(t, geom.V(5, 1), r.StepInside(geom.V(5, 0)))
	assert.Equal(t, geom.V(5, 9), r.StepInside(geom.V(5, 10)))
}

func TestGraph_RejectsSelfEdge(t *testing.T) {
	g := level.NewGraph()
	r := roomAt(0, geom.Zero)
	id, err := g.NewEdge(r, r)
	require.ErrorIs(t, err, level.ErrSelfEdge)
	assert.Equal(t, level.NoEdge, id)
	assert.Zero(t, g.Len())
}

func TestEdge_WeightTracksMovement(t *testing.T) {
	g := level.NewGraph()
	a, b := roomAt(0, geom.Zero), roomAt(1, geom.V(20, 0))
	id, err := g.NewEdge(a, b)
	require.NoError(t, err)
	e := g.Edge(id)
	assert.InDelta(t, 20, e.Weight(), 1e-9)

	b.Move(geom.V(10, 0))
	assert.InDelta(t, 30, e.Weight(), 1e-9)
}

func TestEdge_SameIsSymmetric(t *testing.T) {
	g := level.NewGraph()
	a, b, c := roomAt(0, geom.Zero), roomAt(1, geom.V(20, 0)), roomAt(2, geom.V(0, 20))
	ab, _ := g.NewEdge(a, b)
	ba, _ := g.NewEdge(b, a)
	ac, _ := g.NewEdge(a, c)

	assert.True(t, g.Edge(ab).Same(g.Edge(ba)))
	assert.True(t, g.Edge(ba).Same(g.Edge(ab)))
	assert.False(t, g.Edge(ab).Same(g.Edge(ac)))
	assert.True(t, g.Edge(ab).SharesRoom(g.Edge(ac)))
	assert.Same(t, b, g.Edge(ab).Other(a))
	assert.Same(t, a, g.Edge(ab).Other(b))
}

func TestEdge_IntersectsCircle(t *testing.T) {
	g := level.NewGraph()
	a, b := roomAt(0, geom.V(-30, 1)), roomAt(1, geom.V(30, 1))
	id, _ := g.NewEdge(a, b)
	assert.True(t, g.Edge(id).IntersectsCircle(geom.Zero, 5))
	assert.False(t, g.Edge(id).IntersectsCircle(geom.V(0, 20), 5))
}

func TestGraph_AttachOrdersBySideThenAngle(t *testing.T) {
	g := level.NewGraph()
	centre := roomAt(0, geom.Zero)
	rightLow := roomAt(1, geom.V(30, -5))
	rightHigh := roomAt(2, geom.V(30, 5))
	top := roomAt(3, geom.V(0, 30))
	left := roomAt(4, geom.V(-30, 0))
	bottom := roomAt(5, geom.V(0, -30))

	ids := map[*level.Room]level.EdgeID{}
	for _, n := range []*level.Room{left, rightHigh, bottom, top, rightLow} {
		id, err := g.NewEdge(centre, n)
		require.NoError(t, err)
		g.Attach(id)
		ids[n] = id
	}

	want := []level.EdgeID{ids[rightLow], ids[rightHigh], ids[top], ids[left], ids[bottom]}
	assert.Equal(t, want, centre.Edges)
	assert.Equal(t, []level.EdgeID{ids[left]}, left.Edges)

	g.Attach(ids[top])
	assert.Len(t, centre.Edges, 5, "attaching twice is a no-op")
}

func TestGraph_QueriesAndReset(t *testing.T) {
	g := level.NewGraph()
	a, b, c := roomAt(0, geom.Zero), roomAt(1, geom.V(20, 0)), roomAt(2, geom.V(0, 20))
	ab, _ := g.NewEdge(a, b)
	ac, _ := g.NewEdge(a, c)
	g.Attach(ab)
	g.Attach(ac)

	assert.Equal(t, ab, g.FindEdge(b, a))
	assert.True(t, g.HasNeighbor(a, c))
	assert.False(t, g.HasNeighbor(b, c))
	assert.Equal(t, level.NoEdge, g.FindEdge(b, c))

	assert.Zero(t, g.ActiveDegree(a))
	g.Edge(ab).Activate(level.Tree)
	assert.Equal(t, 1, g.ActiveDegree(a))
	assert.Equal(t, 1, g.ActiveDegree(b))
	assert.Equal(t, []*level.Edge{g.Edge(ab)}, g.ActiveEdges(a))
	assert.Equal(t, level.Tree, g.Edge(ab).Kind)

	g.Edge(ab).Deactivate()
	assert.Equal(t, level.Candidate, g.Edge(ab).Kind)

	g.Reset([]*level.Room{a, b, c})
	assert.Zero(t, g.Len())
	assert.Empty(t, a.Edges)
	assert.Nil(t, g.Edge(ab))
}

func TestGraph_AssignDoorsFollowsDirection(t *testing.T) {
	g := level.NewGraph()
	centre := roomAt(0, geom.Zero)
	neighbours := map[geom.Vec2]*level.Room{
		geom.V(10, 5): roomAt(1, geom.V(30, 0)),
		geom.V(5, 10): roomAt(2, geom.V(0, 30)),
		geom.V(0, 5):  roomAt(3, geom.V(-30, 0)),
		geom.V(5, 0):  roomAt(4, geom.V(0, -30)),
	}
	ids := map[geom.Vec2]level.EdgeID{}
	for door, n := range neighbours {
		id, _ := g.NewEdge(centre, n)
		g.Attach(id)
		g.Edge(id).Activate(level.Tree)
		ids[door] = id
	}

	for door, id := range ids {
		got, ok := g.DoorFor(centre, id)
		require.True(t, ok)
		assert.Equal(t, door, got)
	}
}

func TestGraph_SurplusEdgesShareDoors(t *testing.T) {
	g := level.NewGraph()
	centre := roomAt(0, geom.Zero)
	var ids []level.EdgeID
	for i, mid := range []geom.Vec2{
		geom.V(30, 0), geom.V(30, 20), geom.V(0, 30), geom.V(-30, 0), geom.V(0, -30),
	} {
		id, _ := g.NewEdge(centre, roomAt(i+1, mid))
		g.Attach(id)
		g.Edge(id).Activate(level.Reinserted)
		ids = append(ids, id)
	}
	g.AssignDoors(centre)

	used := map[geom.Vec2]int{}
	for _, id := range ids {
		d, ok := g.DoorFor(centre, id)
		require.True(t, ok)
		used[d]++
	}
	assert.Len(t, used, 4, "every door is used")
}

func TestGraph_DoorForInactiveEdge(t *testing.T) {
	g := level.NewGraph()
	a, b := roomAt(0, geom.Zero), roomAt(1, geom.V(20, 0))
	id, _ := g.NewEdge(a, b)
	g.Attach(id)
	_, ok := g.DoorFor(a, id)
	assert.False(t, ok)
}

func TestGraph_DoorlessRoomUsesExitCell(t *testing.T) {
	g := level.NewGraph()
	a := level.NewRoom(0, level.Standard, level.Template{Name: "bare", Size: geom.V(11, 11)}, geom.V(-5.5, -5.5))
	b := roomAt(1, geom.V(30, 0))
	id, _ := g.NewEdge(a, b)
	g.Attach(id)
	g.Edge(id).Activate(level.Tree)

	d, ok := g.DoorFor(a, id)
	require.True(t, ok)
	assert.Equal(t, geom.V(10, 5), d)
}

func TestRoom_UnusedDoors(t *testing.T) {
	r := roomAt(0, geom.Zero)
	r.Gates = []level.Gate{{Door: geom.V(10, 5)}, {Door: geom.V(5, 0)}}
	assert.ElementsMatch(t, []geom.Vec2{geom.V(0, 5), geom.V(5, 10)}, r.UnusedDoors())
}
