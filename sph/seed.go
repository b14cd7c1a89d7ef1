package sph

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/fluid65/vec"
)

// Seed samples initial particle positions from independent per-axis normal
// distributions centered on the origin, and resets velocity, acceleration
// and the derived fields. Mass keeps its configured value. The same seed
// always produces the same cloud.
func (f *Fluid) Seed(seed uint64) {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: float64(f.params.SpawnStddev),
		Src:   rand.NewSource(seed),
	}

	for i := range f.parts {
		p := &f.parts[i]
		p.Position = vec.V3{
			X: float32(dist.Rand()),
			Y: float32(dist.Rand()),
			Z: float32(dist.Rand()),
		}
		p.Velocity = vec.V3{}
		p.Acceleration = vec.V3{}
		p.Density = 0
		p.Pressure = 0
		p.ColorGradient = vec.V3{}
	}
}
