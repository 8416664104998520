package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

// Template is a room shape: a footprint and the door cells on its boundary.
// Door coordinates are grid cells relative to the bottom-left corner.
type Template struct {
	Name  string
	Size  geom.Vec2
	Doors []geom.Vec2
}

// Radius returns half the diagonal of the template footprint.
func (t Template) Radius() float64 {
	return t.Size.Length() / 2
}

// ValidDoor reports whether door lies on one of the four sides of a footprint
// of the given size, excluding the corner cells.
func ValidDoor(size, door geom.Vec2) bool {
	onVertical := (door.X == 0 || door.X == size.X-1) && door.Y > 0 && door.Y < size.Y-1
	onHorizontal := (door.Y == 0 || door.Y == size.Y-1) && door.X > 0 && door.X < size.X-1
	return onVertical || onHorizontal
}

// Validate checks template invariants.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func (t Template) Validate() error {
	var errs []string
	if t.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if t.Size.X <= 0 || t.Size.Y <= 0 {
		errs = append(errs, fmt.Sprintf("size must be positive, got %gx%g", t.Size.X, t.Size.Y))
	}
	for _, d := range t.Doors {
		if !ValidDoor(t.Size, d) {
			errs = append(errs, fmt.Sprintf("door (%g,%g) is not on a side", d.X, d.Y))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("template %q: %s", t.Name, strings.Join(errs, "; "))
	}
	return nil
}

// Catalogue holds every room shape the generator can place.
type Catalogue struct {
	Spawn    Template
	Terminal Template
	Regular  []Template
}

// Validate checks catalogue invariants.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func (c *Catalogue) Validate() error {
	var errs []string
	if len(c.Regular) == 0 {
		errs = append(errs, "catalogue must contain at least one regular template")
	}
	names := make(map[string]bool)
	all := append([]Template{c.Spawn, c.Terminal}, c.Regular...)
	for _, t := range all {
		if err := t.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
		if t.Name != "" && names[t.Name] {
			errs = append(errs, fmt.Sprintf("duplicate template name %q", t.Name))
		}
		names[t.Name] = true
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func doors(pts ...[2]float64) []geom.Vec2 {
	out := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		out[i] = geom.V(p[0], p[1])
	}
	return out
}

// DefaultCatalogue returns the built-in room shapes: an 11x11 spawn room, an
// 11x11 terminal room and three 11x11 standard rooms with differing doors.
func DefaultCatalogue() *Catalogue {
	size := geom.V(11, 11)
	return &Catalogue{
		Spawn: Template{
			Name:  "spawn",
			Size:  size,
			Doors: doors([2]float64{0, 5}, [2]float64{5, 10}, [2]float64{10, 5}, [2]float64{5, 0}),
		},
		Terminal: Template{
			Name:  "terminal",
			Size:  size,
			Doors: doors([2]float64{0, 5}, [2]float64{5, 10}, [2]float64{10, 5}, [2]float64{5, 0}),
		},
		Regular: []Template{
			{
				Name:  "standard-1",
				Size:  size,
				Doors: doors([2]float64{0, 3}, [2]float64{7, 10}, [2]float64{10, 5}, [2]float64{5, 0}),
			},
			{
				Name:  "standard-2",
				Size:  size,
				Doors: doors([2]float64{0, 5}, [2]float64{5, 10}, [2]float64{10, 5}, [2]float64{5, 0}),
			},
			{
				Name:  "standard-3",
				Size:  size,
				Doors: doors([2]float64{0, 7}, [2]float64{2, 10}, [2]float64{10, 2}, [2]float64{7, 0}),
			},
		},
	}
}
