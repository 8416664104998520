// Package testutil provides test helpers: a scripted random stream and a
// canvas that records what the generator draws.
package testutil

import (
	"testing"
)

// ScriptedSource replays fixed random values so tests can pin every draw.
// Once a script runs out, further draws fail the test.
type ScriptedSource struct {
	t      testing.TB
	floats []float64
	ints   []int
	fi, ii int
}

// NewScriptedSource returns a source that yields floats from Float64 and ints
// from Intn, in order.
//
// Precondition: every float must lie in [0,1).
// Postcondition: Intn(n) returns the scripted value modulo n.
func NewScriptedSource(t testing.TB, floats []float64, ints []int) *ScriptedSource {
	t.Helper()
	for i, f := range floats {
		if f < 0 || f >= 1 {
			t.Fatalf("scripted float %d out of range [0,1): %g", i, f)
		}
	}
	return &ScriptedSource{t: t, floats: floats, ints: ints}
}

// Float64 returns the next scripted float.
func (s *ScriptedSource) Float64() float64 {
	s.t.Helper()
	if s.fi >= len(s.floats) {
		s.t.Fatalf("scripted source exhausted after %d floats", len(s.floats))
		return 0
	}
	f := s.floats[s.fi]
	s.fi++
	return f
}

// Intn returns the next scripted int modulo n.
func (s *ScriptedSource) Intn(n int) int {
	s.t.Helper()
	if s.ii >= len(s.ints) {
		s.t.Fatalf("scripted source exhausted after %d ints", len(s.ints))
		return 0
	}
	v := s.ints[s.ii] % n
	s.ii++
	return v
}

// Remaining returns how many floats and ints have not been drawn.
func (s *ScriptedSource) Remaining() (floats, ints int) {
	return len(s.floats) - s.fi, len(s.ints) - s.ii
}
