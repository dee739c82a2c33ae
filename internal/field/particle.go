package field

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-header/internal/config"
)

// Particle is one node of the network. Pos and Vel are in logical pixels
// and pixels per frame.
type Particle struct {
	Pos r2.Vec
	Vel r2.Vec
	R   float64
}

// TargetCount returns the particle population for a field w logical
// pixels wide, so wide headers keep the same density as narrow ones.
func TargetCount(w int) int {
	base := int(math.Round(float64(w) / config.DensityWidth * config.BaseDensity))
	return max(config.MinParticles, base)
}

// LinkAlpha returns the opacity of a link between two particles d apart.
// ok is false when the pair is too far apart to be linked at all.
func LinkAlpha(d float64) (alpha float64, ok bool) {
	if d >= config.LinkDistance {
		return 0, false
	}
	return 1 - d/config.LinkDistance, true
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

func randSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

func newParticle(rng *rand.Rand, w, h int) Particle {
	return Particle{
		Pos: r2.Vec{
			X: randRange(rng, 0, float64(w)),
			Y: randRange(rng, 0, float64(h)),
		},
		Vel: r2.Vec{
			X: randRange(rng, config.SpeedMin, config.SpeedMax) * randSign(rng),
			Y: randRange(rng, config.SpeedMin, config.SpeedMax) * randSign(rng),
		},
		R: randRange(rng, config.RadiusMin, config.RadiusMax),
	}
}

// advance integrates one frame and bounces off the margin around a w×h
// box. The coordinate is clamped to the margin even if it overshot.
func (p *Particle) advance(w, h float64) {
	p.Pos = r2.Add(p.Pos, p.Vel)

	m := config.BounceMargin
	if p.Pos.X < -m {
		p.Pos.X = -m
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.X > w+m {
		p.Pos.X = w + m
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < -m {
		p.Pos.Y = -m
		p.Vel.Y = -p.Vel.Y
	}
	if p.Pos.Y > h+m {
		p.Pos.Y = h + m
		p.Vel.Y = -p.Vel.Y
	}
}
