package sph

import (
	"github.com/pthm-cable/fluid65/vec"
)

// Field estimators. Each one is a pure function of the frozen particle state
// from the end of the previous pass, which is what makes the per-pass
// parallelism in step.go safe.

// density is the kernel-weighted mass sum over the whole set. The particle's
// own contribution (distance zero, inside the support) is always included,
// so the result is strictly positive for positive masses.
func (f *Fluid) density(p *Particle) float32 {
	var rho float32
	for i := range f.parts {
		r := vec.Length(vec.Sub(p.Position, f.parts[i].Position))
		rho += f.parts[i].Mass * f.kernel.Poly6(r)
	}
	return rho
}

// pressure applies the linear equation of state. Below rest density the
// result goes negative, which acts as a tension term and is intentional.
func (f *Fluid) pressure(p *Particle) float32 {
	return f.params.GasConstant * (p.Density - f.params.RestDensity)
}

// colorGradient estimates the gradient of the color field at p. It serves
// as the interface-normal proxy for surface tension. The self term drops
// out: normalize(0) is the zero vector and Poly6Deriv(0) is zero.
func (f *Fluid) colorGradient(p *Particle) vec.V3 {
	var grad vec.V3
	for i := range f.parts {
		r := vec.Sub(f.parts[i].Position, p.Position)
		w := f.parts[i].Mass / f.parts[i].Density * f.kernel.Poly6Deriv(vec.Length(r))
		grad = vec.Add(grad, vec.Scale(vec.Normalize(r), w))
	}
	return grad
}

// colorDivergence estimates the divergence of the color gradient at p, the
// curvature proxy for surface tension. It reads every particle's
// ColorGradient, so the color-gradient pass must have completed for the
// whole set before the force pass calls this.
func (f *Fluid) colorDivergence(p *Particle) vec.V3 {
	var div vec.V3
	for i := range f.parts {
		r := vec.Length(vec.Sub(p.Position, f.parts[i].Position))
		w := f.parts[i].Mass / f.parts[i].Density * f.kernel.Poly6Laplacian(r)
		div = vec.Add(div, vec.Scale(f.parts[i].ColorGradient, w))
	}
	return div
}
