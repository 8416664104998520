package levelgen

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ring identifies one of the three concentric bands of a level.
type Ring int

// Rings, innermost first.
const (
	RingInside Ring = iota
	RingMiddle
	RingOutside
)

// numRings is the number of concentric bands.
const numRings = 3

// String returns the lower-case ring name.
func (r Ring) String() string {
	switch r {
	case RingInside:
		return "inside"
	case RingMiddle:
		return "middle"
	case RingOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the ring by name.
func (r Ring) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML decodes a ring name written by MarshalYAML.
func (r *Ring) UnmarshalYAML(value *yaml.Node) error {
	for c := RingInside; c <= RingOutside; c++ {
		if value.Value == c.String() {
			*r = c
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown ring %q", value.Line, value.Value)
}

// PlayerRange is an inclusive range of required players for a terminal room.
type PlayerRange struct {
	Min int
	Max int
}

// Config holds the generator settings. Derived values (ring radii, terminal
// split) are recomputed by the setters so they never go stale.
type Config struct {
	mapRadius               float64
	innerCircleFrac         float64
	middleCircleFrac        float64
	innerCircleRadius       float64
	middleCircleRadius      float64
	separationBetweenLayers float64
	numRooms                int
	numTerminalRooms        int
	terminalRooms           [numRings]int
	maxHallwayLength        float64
	addEdgesBackProb        float64
	maxNumEdges             int
	hallwayRadius           float64
	innerConnections        int
	outerConnections        int
	terminalArc             float64
	maxSeparationPasses     int
	terminalPlayers         [numRings]PlayerRange
}

// NewConfig returns a Config with the default level settings.
//
// Postcondition: all derived values are consistent with the inputs.
func NewConfig() *Config {
	c := &Config{
		mapRadius:               60,
		innerCircleFrac:         0.4,
		middleCircleFrac:        0.7,
		separationBetweenLayers: 8,
		numRooms:                100,
		numTerminalRooms:        7,
		maxHallwayLength:        20,
		addEdgesBackProb:        0.2,
		maxNumEdges:             4,
		hallwayRadius:           1,
		innerConnections:        2,
		outerConnections:        3,
		terminalArc:             math.Pi / 2,
		maxSeparationPasses:     10000,
		terminalPlayers: [numRings]PlayerRange{
			RingInside:  {Min: 2, Max: 3},
			RingMiddle:  {Min: 2, Max: 4},
			RingOutside: {Min: 3, Max: 4},
		},
	}
	c.derive()
	return c
}

func (c *Config) derive() {
	c.innerCircleRadius = math.Floor(c.mapRadius * c.innerCircleFrac)
	c.middleCircleRadius = math.Floor(c.mapRadius * c.middleCircleFrac)
	third := c.numTerminalRooms / 3
	c.terminalRooms[RingInside] = third
	c.terminalRooms[RingMiddle] = third
	c.terminalRooms[RingOutside] = c.numTerminalRooms - 2*third
}

// SetMapRadius sets the outer radius of the level.
func (c *Config) SetMapRadius(r float64) {
	c.mapRadius = r
	c.derive()
}

// SetInnerCircleFrac sets the inner ring radius as a fraction of the map radius.
func (c *Config) SetInnerCircleFrac(f float64) {
	c.innerCircleFrac = f
	c.derive()
}

// SetMiddleCircleFrac sets the middle ring radius as a fraction of the map radius.
func (c *Config) SetMiddleCircleFrac(f float64) {
	c.middleCircleFrac = f
	c.derive()
}

// SetSeparationBetweenLayers sets the radial gap opened between rings.
func (c *Config) SetSeparationBetweenLayers(d float64) { c.separationBetweenLayers = d }

// SetNumRooms sets the total room count, spawn room included.
func (c *Config) SetNumRooms(n int) { c.numRooms = n }

// SetNumTerminalRooms sets the terminal count and re-splits it across rings.
func (c *Config) SetNumTerminalRooms(n int) {
	c.numTerminalRooms = n
	c.derive()
}

// SetMaxHallwayLength sets the longest edge that may be reinserted.
func (c *Config) SetMaxHallwayLength(l float64) { c.maxHallwayLength = l }

// SetAddEdgesBackProb sets the probability that an eligible edge is reinserted.
func (c *Config) SetAddEdgesBackProb(p float64) { c.addEdgesBackProb = p }

// SetMaxNumEdges sets the active edge cap per room.
func (c *Config) SetMaxNumEdges(n int) { c.maxNumEdges = n }

// SetHallwayRadius sets the hallway half-width.
func (c *Config) SetHallwayRadius(r float64) { c.hallwayRadius = r }

// SetLayerConnections sets how many hallways join the inside ring to the
// middle ring and the middle ring to the outside ring.
func (c *Config) SetLayerConnections(inner, outer int) {
	c.innerConnections = inner
	c.outerConnections = outer
}

// SetTerminalArc sets the width in radians of the window each terminal is drawn from.
func (c *Config) SetTerminalArc(a float64) { c.terminalArc = a }

// SetMaxSeparationPasses caps the passes of a single separation phase.
func (c *Config) SetMaxSeparationPasses(n int) { c.maxSeparationPasses = n }

// SetTerminalPlayers sets the inclusive range of required players for terminals in ring.
func (c *Config) SetTerminalPlayers(ring Ring, lo, hi int) {
	if ring < RingInside || ring > RingOutside {
		return
	}
	c.terminalPlayers[ring] = PlayerRange{Min: lo, Max: hi}
}

// MapRadius returns the outer radius of the level.
func (c *Config) MapRadius() float64 { return c.mapRadius }

// InnerCircleFrac returns the inner ring fraction.
func (c *Config) InnerCircleFrac() float64 { return c.innerCircleFrac }

// MiddleCircleFrac returns the middle ring fraction.
func (c *Config) MiddleCircleFrac() float64 { return c.middleCircleFrac }

// InnerCircleRadius returns floor(mapRadius × innerCircleFrac).
func (c *Config) InnerCircleRadius() float64 { return c.innerCircleRadius }

// MiddleCircleRadius returns floor(mapRadius × middleCircleFrac).
func (c *Config) MiddleCircleRadius() float64 { return c.middleCircleRadius }

// SeparationBetweenLayers returns the radial gap opened between rings.
func (c *Config) SeparationBetweenLayers() float64 { return c.separationBetweenLayers }

// NumRooms returns the total room count, spawn room included.
func (c *Config) NumRooms() int { return c.numRooms }

// NumTerminalRooms returns the total terminal count.
func (c *Config) NumTerminalRooms() int { return c.numTerminalRooms }

// TerminalRooms returns the number of terminals placed in ring.
//
// Postcondition: the three rings sum to NumTerminalRooms.
func (c *Config) TerminalRooms(ring Ring) int {
	if ring < RingInside || ring > RingOutside {
		return 0
	}
	return c.terminalRooms[ring]
}

// MaxHallwayLength returns the longest edge that may be reinserted.
func (c *Config) MaxHallwayLength() float64 { return c.maxHallwayLength }

// AddEdgesBackProb returns the reinsertion probability.
func (c *Config) AddEdgesBackProb() float64 { return c.addEdgesBackProb }

// MaxNumEdges returns the active edge cap per room.
func (c *Config) MaxNumEdges() int { return c.maxNumEdges }

// HallwayRadius returns the hallway half-width.
func (c *Config) HallwayRadius() float64 { return c.hallwayRadius }

// LayerConnections returns the inside→middle and middle→outside connection counts.
func (c *Config) LayerConnections() (inner, outer int) {
	return c.innerConnections, c.outerConnections
}

// TerminalArc returns the terminal sampling window width in radians.
func (c *Config) TerminalArc() float64 { return c.terminalArc }

// MaxSeparationPasses returns the pass cap of a separation phase.
func (c *Config) MaxSeparationPasses() int { return c.maxSeparationPasses }

// TerminalPlayers returns the required player range for terminals in ring.
func (c *Config) TerminalPlayers(ring Ring) PlayerRange {
	if ring < RingInside || ring > RingOutside {
		return PlayerRange{}
	}
	return c.terminalPlayers[ring]
}

// Validate checks that the settings can drive a generation run.
//
// Postcondition: Returns nil if valid, or an error listing every violation.
func (c *Config) Validate() error {
	var errs []string
	if c.mapRadius <= 0 {
		errs = append(errs, fmt.Sprintf("map radius must be positive, got %g", c.mapRadius))
	}
	if c.innerCircleFrac <= 0 || c.innerCircleFrac >= c.middleCircleFrac || c.middleCircleFrac >= 1 {
		errs = append(errs, fmt.Sprintf("ring fractions must satisfy 0 < inner < middle < 1, got %g and %g",
			c.innerCircleFrac, c.middleCircleFrac))
	}
	if c.numRooms < 1 {
		errs = append(errs, fmt.Sprintf("room count must include the spawn room, got %d", c.numRooms))
	}
	if c.numTerminalRooms < 0 {
		errs = append(errs, fmt.Sprintf("terminal count must be >= 0, got %d", c.numTerminalRooms))
	}
	if c.addEdgesBackProb < 0 || c.addEdgesBackProb > 1 {
		errs = append(errs, fmt.Sprintf("reinsertion probability must be in [0,1], got %g", c.addEdgesBackProb))
	}
	if c.maxNumEdges < 1 {
		errs = append(errs, fmt.Sprintf("max edges per room must be >= 1, got %d", c.maxNumEdges))
	}
	if c.hallwayRadius < 0 {
		errs = append(errs, fmt.Sprintf("hallway radius must be >= 0, got %g", c.hallwayRadius))
	}
	if c.innerConnections < 0 || c.outerConnections < 0 {
		errs = append(errs, "layer connections must be >= 0")
	}
	if c.terminalArc <= 0 || c.terminalArc > 2*math.Pi {
		errs = append(errs, fmt.Sprintf("terminal arc must be in (0, 2π], got %g", c.terminalArc))
	}
	if c.maxSeparationPasses < 1 {
		errs = append(errs, fmt.Sprintf("max separation passes must be >= 1, got %d", c.maxSeparationPasses))
	}
	for ring, pr := range c.terminalPlayers {
		if pr.Min < 0 || pr.Min > pr.Max {
			errs = append(errs, fmt.Sprintf("%s terminal players must satisfy 0 <= min <= max, got [%d,%d]",
				Ring(ring), pr.Min, pr.Max))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("generator config invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}
