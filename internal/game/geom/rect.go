package geom

import (
	"math"

	jbgeom "github.com/jbeda/geom"
)

// Side identifies one of the four sides of a Rect. The order is the
// counter-clockwise walk starting from the right-hand side.
type Side int

// Rect sides in hit-test order.
const (
	SideRight Side = iota
	SideTop
	SideLeft
	SideBottom
	SideNone Side = -1
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether leaving through this side moves along the X axis.
func (s Side) Horizontal() bool {
	return s == SideRight || s == SideLeft
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	Origin Vec2 `yaml:"origin"`
	Size   Vec2 `yaml:"size"`
}

// R is a shorthand constructor for Rect.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Vec2{x, y}, Size: Vec2{w, h}}
}

// RectFromCorners returns the smallest rect containing both points.
func RectFromCorners(a, b Vec2) Rect {
	bounds := jbgeom.Rect{Min: a.Coord(), Max: a.Coord()}
	bounds.ExpandToContainCoord(b.Coord())
	return FromBounds(bounds)
}

// FromBounds converts a min/max rectangle to a Rect.
func FromBounds(b jbgeom.Rect) Rect {
	return Rect{Origin: Vec2(b.Min), Size: Vec2{b.Width(), b.Height()}}
}

// Bounds returns r as a min/max rectangle.
func (r Rect) Bounds() jbgeom.Rect {
	return jbgeom.Rect{Min: r.Origin.Coord(), Max: r.Max().Coord()}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 { return r.Origin }

// Max returns the top-right corner.
func (r Rect) Max() Vec2 { return r.Origin.Add(r.Size) }

// Mid returns the centre of the rect.
func (r Rect) Mid() Vec2 { return r.Origin.Add(r.Size.Scale(0.5)) }

// Area returns width * height, or 0 for an empty rect.
func (r Rect) Area() float64 {
	if r.Size.X <= 0 || r.Size.Y <= 0 {
		return 0
	}
	return r.Size.X * r.Size.Y
}

// Intersects reports whether r and o overlap with positive area.
// Rects that only share an edge or a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Origin.X < oMax.X && o.Origin.X < rMax.X &&
		r.Origin.Y < oMax.Y && o.Origin.Y < rMax.Y
}

// Intersection returns the overlapping region of r and o.
//
// Postcondition: the result has zero area when r and o do not intersect.
func (r Rect) Intersection(o Rect) Rect {
	rMax, oMax := r.Max(), o.Max()
	minX := math.Max(r.Origin.X, o.Origin.X)
	minY := math.Max(r.Origin.Y, o.Origin.Y)
	maxX := math.Min(rMax.X, oMax.X)
	maxY := math.Min(rMax.Y, oMax.Y)
	if maxX <= minX || maxY <= minY {
		return Rect{Origin: Vec2{minX, minY}}
	}
	return Rect{Origin: Vec2{minX, minY}, Size: Vec2{maxX - minX, maxY - minY}}
}

// Union returns the smallest rect containing r and o.
func (r Rect) Union(o Rect) Rect {
	bounds := r.Bounds()
	bounds.ExpandToContainRect(o.Bounds())
	return FromBounds(bounds)
}

// Inflate grows the rect by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Origin: r.Origin.Sub(Vec2{d, d}),
		Size:   r.Size.Add(Vec2{2 * d, 2 * d}),
	}
}

// corners returns the rect vertices walking counter-clockwise from the
// bottom-right corner, closing the loop, so that consecutive pairs are the
// sides in Side order.
func (r Rect) corners() [5]Vec2 {
	lo, hi := r.Min(), r.Max()
	return [5]Vec2{
		{hi.X, lo.Y},
		{hi.X, hi.Y},
		{lo.X, hi.Y},
		{lo.X, lo.Y},
		{hi.X, lo.Y},
	}
}

// SideHit returns the first side of r crossed by the segment a→b and the
// crossing point.
//
// Postcondition: returns (SideNone, Zero, false) when the segment crosses no side.
func (r Rect) SideHit(a, b Vec2) (Side, Vec2, bool) {
	c := r.corners()
	for i := 0; i < 4; i++ {
		s, _, ok := SegmentIntersection(a, b, c[i], c[i+1])
		if ok {
			return Side(i), a.Add(b.Sub(a).Scale(s)), true
		}
	}
	return SideNone, Zero, false
}
