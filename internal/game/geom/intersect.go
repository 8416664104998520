package geom

import "math"

// SegmentIntersectsCircle reports whether the segment a→b touches the circle
// of radius r centred at origin.
//
// The segment is parametrised as a + t·(b−a) with t in [0,1] and the
// quadratic |f + t·d|² = r² is solved for real roots.
//
// Postcondition: a zero-length segment intersects iff its point lies within
// the circle.
func SegmentIntersectsCircle(a, b, origin Vec2, r float64) bool {
	d := b.Sub(a)
	f := a.Sub(origin)

	qa := d.Dot(d)
	if qa < epsilon {
		return f.Dot(f) <= r*r
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - r*r

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)
	if (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1) {
		return true
	}
	// Both roots on opposite sides of the segment: it lies inside the circle.
	return t1 < 0 && t2 > 1
}

// SegmentIntersection intersects segments p0→p1 and q0→q1.
// It returns the parameters s and t such that p0 + s·(p1−p0) == q0 + t·(q1−q0).
//
// Postcondition: ok is true only when both s and t lie in [0,1].
// Parallel segments never intersect.
func SegmentIntersection(p0, p1, q0, q1 Vec2) (s, t float64, ok bool) {
	r := p1.Sub(p0)
	q := q1.Sub(q0)
	denom := r.Cross(q)
	if math.Abs(denom) < epsilon {
		return 0, 0, false
	}
	diff := q0.Sub(p0)
	s = diff.Cross(q) / denom
	t = diff.Cross(r) / denom
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return s, t, false
	}
	return s, t, true
}
