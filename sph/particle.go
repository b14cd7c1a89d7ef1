package sph

import (
	"github.com/pthm-cable/fluid65/vec"
)

// Particle is one mass-carrying fluid sample. Position, velocity and
// acceleration are integrated state; density, pressure and color gradient
// are re-derived from the particle set every tick.
type Particle struct {
	Position     vec.V3
	Velocity     vec.V3
	Acceleration vec.V3
	Mass         float32

	Density       float32
	Pressure      float32
	ColorGradient vec.V3
}

// Fluid owns a fixed-size particle set and the kernels and scratch state
// needed to advance it. The set never grows or shrinks after construction.
type Fluid struct {
	params  Params
	kernel  Kernel
	parts   []Particle
	workers int
}

// New allocates a fluid for the given parameters. Particles start at the
// origin with zero velocity and the configured mass; call Seed to sample
// initial positions.
func New(params Params) (*Fluid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f := &Fluid{
		params:  params,
		kernel:  NewKernel(params.SmoothingRadius),
		parts:   make([]Particle, params.Particles),
		workers: defaultWorkers(),
	}
	for i := range f.parts {
		f.parts[i].Mass = params.ParticleMass
	}
	return f, nil
}

// Params returns the parameters the fluid was built with.
func (f *Fluid) Params() Params { return f.params }

// Len returns the particle count.
func (f *Fluid) Len() int { return len(f.parts) }

// Particles exposes the particle set for read-only snapshotting between
// steps. Callers must not mutate it, and must copy it if they need a stable
// view while the next Step runs.
func (f *Fluid) Particles() []Particle { return f.parts }
