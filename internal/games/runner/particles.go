package runner

import "github.com/lanerush/lanerush/internal/core"

// particleTTL is the particle lifetime in render frames.
const particleTTL = 8

// particle is one short-lived splash fragment in world coordinates.
// Particles are presentation only and never feed back into the
// simulation, so they can use plain frame counting instead of sim time.
type particle struct {
	pos   core.Vec3
	drift core.Vec3
	color core.Color
	ttl   int
}

// particleField holds the live particles for the renderer.
type particleField struct {
	items []particle
}

// burstOffsets fans each burst out into a fixed star pattern. A fixed
// pattern reads fine at terminal resolution and keeps the render layer
// free of its own RNG.
var burstOffsets = []core.Vec3{
	{X: 0.6}, {X: -0.6},
	{Y: 0.5}, {Y: -0.5},
	{X: 0.4, Z: 0.8}, {X: -0.4, Z: -0.8},
}

func (f *particleField) burst(pos core.Vec3, color core.Color) {
	for _, off := range burstOffsets {
		f.items = append(f.items, particle{
			pos:   pos.Add(off),
			drift: off.Scale(0.3),
			color: color,
			ttl:   particleTTL,
		})
	}
}

// step ages and drifts the field, dropping expired particles in place.
func (f *particleField) step() {
	out := f.items[:0]
	for _, p := range f.items {
		p.ttl--
		if p.ttl <= 0 {
			continue
		}
		p.pos = p.pos.Add(p.drift)
		out = append(out, p)
	}
	f.items = out
}

func (f *particleField) reset() {
	f.items = f.items[:0]
}

// glyph fades the particle as it ages.
func (p particle) glyph() rune {
	switch {
	case p.ttl > 5:
		return '✦'
	case p.ttl > 2:
		return '•'
	}
	return '·'
}
