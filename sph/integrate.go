package sph

import (
	"github.com/pthm-cable/fluid65/vec"
)

// integrate advances one particle by semi-implicit Euler: velocity first,
// then position from the just-updated velocity.
//
// The boundary is a soft constraint. Within one unit of the container
// surface an outward-moving particle has its velocity reflected about the
// inward surface normal and scaled by the restitution coefficient; an
// inward-moving particle is left alone so it can re-enter the domain.
// Position is never clamped; a particle may briefly sit outside the
// container, and that is the intended dynamic, not an error to correct.
func (f *Fluid) integrate(p *Particle, dt float32) {
	p.Velocity = vec.Add(p.Velocity, vec.Scale(p.Acceleration, dt))

	if vec.Length(p.Position) >= f.params.ContainerRadius-1 {
		if vec.Dot(p.Position, p.Velocity) > 0 {
			inward := vec.Neg(vec.Normalize(p.Position))
			p.Velocity = vec.Scale(vec.Reflect(p.Velocity, inward), f.params.Restitution)
		}
	}

	p.Position = vec.Add(p.Position, vec.Scale(p.Velocity, dt))
}
