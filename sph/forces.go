package sph

import (
	"github.com/pthm-cable/fluid65/vec"
)

// pressureForce accumulates the symmetric-average pressure interaction over
// all neighbors. Averaging (p_a + p_b)/2 keeps the pair term equal and
// opposite between the two particles even though each evaluates it
// independently.
func (f *Fluid) pressureForce(p *Particle) vec.V3 {
	var force vec.V3
	for i := range f.parts {
		q := &f.parts[i]
		r := vec.Sub(p.Position, q.Position)
		w := q.Mass * (p.Pressure + q.Pressure) / (2 * q.Density) * f.kernel.SpikyDeriv(vec.Length(r))
		force = vec.Sub(force, vec.Scale(vec.Normalize(r), w))
	}
	return force
}

// viscosityForce diffuses relative velocity, damping shear between
// neighboring particles.
func (f *Fluid) viscosityForce(p *Particle) vec.V3 {
	var force vec.V3
	for i := range f.parts {
		q := &f.parts[i]
		r := vec.Length(vec.Sub(p.Position, q.Position))
		w := f.params.Viscosity * q.Mass / q.Density * f.kernel.ViscosityLaplacian(r)
		force = vec.Add(force, vec.Scale(vec.Sub(q.Velocity, p.Velocity), w))
	}
	return force
}

// surfaceTensionForce pulls surface particles inward proportionally to the
// local interface curvature. Interior particles see a zero color gradient
// and feel nothing, since a tension direction is undefined there.
func (f *Fluid) surfaceTensionForce(p *Particle) vec.V3 {
	if vec.IsZero(p.ColorGradient) {
		return vec.V3{}
	}
	curvature := vec.Length(f.colorDivergence(p))
	return vec.Scale(vec.Normalize(p.ColorGradient), -f.params.SurfaceTension*curvature)
}

// accumulate sums the four force contributions on p and stores the
// resulting acceleration.
func (f *Fluid) accumulate(p *Particle) {
	net := f.pressureForce(p)
	net = vec.Add(net, f.viscosityForce(p))
	net = vec.Add(net, f.surfaceTensionForce(p))
	net = vec.Add(net, vec.V3{Y: f.params.Gravity * p.Mass})
	p.Acceleration = vec.Scale(net, 1/p.Density)
}
