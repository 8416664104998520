// Package geom provides the planar primitives used by level generation:
// vectors, axis-aligned rectangles, segment tests and Delaunay triangulation.
//
// All coordinates are in grid units. Y grows upward.
package geom

import (
	"math"

	jbgeom "github.com/jbeda/geom"
)

// epsilon is the tolerance used for degenerate-length checks.
const epsilon = 1e-9

// Vec2 is a point or displacement in the plane. It shares its layout with
// jbgeom.Coord, whose arithmetic it borrows; it marshals as x and y.
type Vec2 jbgeom.Coord

// Zero is the origin.
var Zero = Vec2{}

// One is the vector (1, 1).
var One = Vec2{1, 1}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Coord returns v as a jbgeom.Coord.
func (v Vec2) Coord() jbgeom.Coord { return jbgeom.Coord(v) }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(v.Coord().Plus(o.Coord()))
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(v.Coord().Minus(o.Coord()))
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2(v.Coord().Times(s))
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z-component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return v.Coord().Magnitude()
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Coord().DistanceFrom(o.Coord())
}

// Normalize returns the unit vector in the direction of v.
//
// Postcondition: the zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	if v.Length() < epsilon {
		return Vec2{}
	}
	return Vec2(v.Coord().Unit())
}

// Angle returns the angle of v from the positive X axis in (-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// PositiveAngle returns the angle of v from the positive X axis in [0, 2π).
func (v Vec2) PositiveAngle() float64 {
	a := v.Angle()
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Round rounds both components half away from zero.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Floor floors both components.
func (v Vec2) Floor() Vec2 {
	return Vec2{math.Floor(v.X), math.Floor(v.Y)}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// AngleDiff returns the absolute difference between two angles folded into [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	d = math.Mod(d, 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
