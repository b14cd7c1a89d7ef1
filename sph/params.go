package sph

import "fmt"

// Params describes a fluid run. Immutable once a Fluid is constructed.
type Params struct {
	Particles       int     // particle count N
	SmoothingRadius float32 // kernel support radius h
	ParticleMass    float32 // initial per-particle mass
	RestDensity     float32 // equation-of-state rest density
	GasConstant     float32 // equation-of-state stiffness k
	Viscosity       float32 // dynamic viscosity coefficient
	SurfaceTension  float32 // surface tension coefficient
	Gravity         float32 // constant y force per unit mass (negative = down)
	ContainerRadius float32 // spherical container radius
	Restitution     float32 // fraction of outward velocity kept after reflection
	DT              float32 // fixed time step
	SpawnStddev     float32 // per-axis Gaussian stddev for initial positions
}

// Validate reports the first parameterization error, if any. A bad h or mass
// cannot be detected later: it surfaces as a zero or non-finite density deep
// inside a step, so it is rejected up front.
func (p Params) Validate() error {
	switch {
	case p.Particles <= 0:
		return fmt.Errorf("sph: particle count must be positive, got %d", p.Particles)
	case p.SmoothingRadius <= 0:
		return fmt.Errorf("sph: smoothing radius must be positive, got %g", p.SmoothingRadius)
	case p.ParticleMass <= 0:
		return fmt.Errorf("sph: particle mass must be positive, got %g", p.ParticleMass)
	case p.ContainerRadius <= 0:
		return fmt.Errorf("sph: container radius must be positive, got %g", p.ContainerRadius)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("sph: restitution must be in [0, 1], got %g", p.Restitution)
	case p.DT <= 0:
		return fmt.Errorf("sph: time step must be positive, got %g", p.DT)
	case p.SpawnStddev < 0:
		return fmt.Errorf("sph: spawn stddev must be non-negative, got %g", p.SpawnStddev)
	}
	return nil
}
