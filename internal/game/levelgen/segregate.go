package levelgen

import (
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

// layerExpansion scales every ring outward before the per-ring gap is added.
const layerExpansion = 1.2

// segregateLayers assigns each standard room to a ring by the distance of its
// centre from the origin, then pushes the rings apart: every room is scaled
// outward by layerExpansion and the middle and outside rings are moved a
// further one and two layer gaps along their radial direction.
//
// Spawn and terminal rooms were assigned their rings when placed.
func (g *Generator) segregateLayers() {
	inner, middle := g.cfg.InnerCircleRadius(), g.cfg.MiddleCircleRadius()
	for _, r := range g.rooms {
		if r.Type != level.Standard {
			continue
		}
		d := r.Mid().Length()
		switch {
		case d <= inner:
			g.rings[RingInside] = append(g.rings[RingInside], r)
		case d <= middle:
			g.rings[RingMiddle] = append(g.rings[RingMiddle], r)
		default:
			g.rings[RingOutside] = append(g.rings[RingOutside], r)
		}
	}

	gap := g.cfg.SeparationBetweenLayers()
	for ring := RingInside; ring <= RingOutside; ring++ {
		for _, r := range g.rings[ring] {
			if r.Fixed {
				continue
			}
			mid := r.Mid()
			centre := mid.Scale(layerExpansion).
				Add(mid.Normalize().Scale(gap * float64(ring) * layerExpansion))
			r.SetPos(centre.Sub(r.Size.Scale(0.5)).Round())
		}
	}
	g.canvas.Layout()
}
