package sph

import (
	"math"
	"testing"

	"github.com/pthm-cable/fluid65/vec"
)

// testParams mirrors the reference parameterization (see config defaults).
func testParams(n int) Params {
	return Params{
		Particles:       n,
		SmoothingRadius: 12,
		ParticleMass:    1,
		RestDensity:     0.0001,
		GasConstant:     100,
		Viscosity:       0.01,
		SurfaceTension:  50,
		Gravity:         -0.1,
		ContainerRadius: 40,
		Restitution:     0.8,
		DT:              0.04,
		SpawnStddev:     5,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		wantOK bool
	}{
		{"reference params", func(p *Params) {}, true},
		{"zero particles", func(p *Params) { p.Particles = 0 }, false},
		{"negative radius", func(p *Params) { p.SmoothingRadius = -1 }, false},
		{"zero mass", func(p *Params) { p.ParticleMass = 0 }, false},
		{"zero container", func(p *Params) { p.ContainerRadius = 0 }, false},
		{"restitution above 1", func(p *Params) { p.Restitution = 1.5 }, false},
		{"zero dt", func(p *Params) { p.DT = 0 }, false},
		{"negative stddev", func(p *Params) { p.SpawnStddev = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(10)
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestSingleParticleFields(t *testing.T) {
	params := testParams(1)
	params.Gravity = 0
	f, err := New(params)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Step(params.DT); err != nil {
		t.Fatal(err)
	}

	p := f.Particles()[0]
	wantDensity := f.kernel.Poly6(0) // own contribution only
	if !approx32(p.Density, wantDensity, 1e-9) {
		t.Errorf("density = %g, want %g", p.Density, wantDensity)
	}

	wantPressure := params.GasConstant * (wantDensity - params.RestDensity)
	if !approx32(p.Pressure, wantPressure, 1e-6) {
		t.Errorf("pressure = %g, want %g", p.Pressure, wantPressure)
	}

	// No neighbors, no gravity: the particle must not move.
	if !vec.IsZero(p.Velocity) {
		t.Errorf("velocity = %v, want zero", p.Velocity)
	}
}

func TestDensityAlwaysPositive(t *testing.T) {
	f, err := New(testParams(300))
	if err != nil {
		t.Fatal(err)
	}
	f.Seed(7)

	for tick := 0; tick < 3; tick++ {
		if err := f.Step(f.params.DT); err != nil {
			t.Fatal(err)
		}
		for i, p := range f.Particles() {
			if p.Density <= 0 {
				t.Fatalf("tick %d: density[%d] = %g, want > 0", tick, i, p.Density)
			}
		}
	}
}

func TestPressureForcePairSymmetry(t *testing.T) {
	f, err := New(testParams(2))
	if err != nil {
		t.Fatal(err)
	}
	f.parts[0].Position = vec.V3{X: -1.5}
	f.parts[1].Position = vec.V3{X: 1.5}

	for i := range f.parts {
		f.parts[i].Density = f.density(&f.parts[i])
	}
	for i := range f.parts {
		f.parts[i].Pressure = f.pressure(&f.parts[i])
	}

	fa := f.pressureForce(&f.parts[0])
	fb := f.pressureForce(&f.parts[1])

	if vec.IsZero(fa) {
		t.Fatal("pressure force is zero; particles should interact at this spacing")
	}
	if !approx32(vec.Length(fa), vec.Length(fb), 1e-6) {
		t.Errorf("pair magnitudes differ: %g vs %g", vec.Length(fa), vec.Length(fb))
	}
	sum := vec.Add(fa, fb)
	if vec.Length(sum) > 1e-6*vec.Length(fa) {
		t.Errorf("pair forces not opposite: fa=%v fb=%v", fa, fb)
	}
}

// TestLatticePressureCancellation places a particle in a symmetric
// neighborhood and checks that isotropic pressure contributions cancel when
// viscosity, surface tension and gravity are off.
func TestLatticePressureCancellation(t *testing.T) {
	params := testParams(27)
	params.Viscosity = 0
	params.SurfaceTension = 0
	params.Gravity = 0
	f, err := New(params)
	if err != nil {
		t.Fatal(err)
	}

	const spacing = 2.0
	idx := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				f.parts[idx].Position = vec.V3{
					X: float32(x) * spacing,
					Y: float32(y) * spacing,
					Z: float32(z) * spacing,
				}
				idx++
			}
		}
	}

	// The middle particle of the 3x3x3 block sits at the origin.
	centerIdx := -1
	for i := range f.parts {
		if vec.IsZero(f.parts[i].Position) {
			centerIdx = i
		}
	}
	if centerIdx < 0 {
		t.Fatal("no particle at the lattice center")
	}

	if err := f.Step(params.DT); err != nil {
		t.Fatal(err)
	}

	if a := vec.Length(f.parts[centerIdx].Acceleration); a > 1e-3 {
		t.Errorf("center acceleration = %g, want ~0 from isotropic cancellation", a)
	}
}

func TestBoundaryReflection(t *testing.T) {
	tests := []struct {
		name     string
		velocity vec.V3
		wantVelX float32
	}{
		{"outward is reflected and damped", vec.V3{X: 10}, -8},
		{"inward is untouched", vec.V3{X: -10}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams(1)
			params.Gravity = 0
			f, err := New(params)
			if err != nil {
				t.Fatal(err)
			}
			f.parts[0].Position = vec.V3{X: params.ContainerRadius - 0.5}
			f.parts[0].Velocity = tt.velocity

			if err := f.Step(params.DT); err != nil {
				t.Fatal(err)
			}

			p := f.Particles()[0]
			if !approx32(p.Velocity.X, tt.wantVelX, 1e-4) {
				t.Errorf("velocity.X = %g, want %g", p.Velocity.X, tt.wantVelX)
			}
			if p.Velocity.Y != 0 || p.Velocity.Z != 0 {
				t.Errorf("velocity picked up off-axis components: %v", p.Velocity)
			}

			// Position updates unconditionally from the post-reflection
			// velocity; there is no positional clamp.
			wantX := params.ContainerRadius - 0.5 + tt.wantVelX*params.DT
			if !approx32(p.Position.X, wantX, 1e-4) {
				t.Errorf("position.X = %g, want %g", p.Position.X, wantX)
			}
		})
	}
}

// TestDeterminism runs two identically seeded fluids, large enough that the
// passes fan out across workers, and requires bit-identical state.
func TestDeterminism(t *testing.T) {
	run := func() []Particle {
		f, err := New(testParams(128))
		if err != nil {
			t.Fatal(err)
		}
		f.Seed(42)
		for tick := 0; tick < 5; tick++ {
			if err := f.Step(f.params.DT); err != nil {
				t.Fatal(err)
			}
		}
		out := make([]Particle, f.Len())
		copy(out, f.Particles())
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestStepRejectsInvalidDensity(t *testing.T) {
	f, err := New(testParams(2))
	if err != nil {
		t.Fatal(err)
	}
	f.Seed(1)

	// Zero mass can only happen through memory corruption or a caller
	// violating the read-only contract; either way the step must halt
	// instead of propagating divisions by zero.
	for i := range f.parts {
		f.parts[i].Mass = 0
	}

	before := f.parts[0].Position
	if err := f.Step(f.params.DT); err == nil {
		t.Fatal("Step() = nil, want error for zero densities")
	}
	if f.parts[0].Position != before {
		t.Error("position mutated by an aborted step")
	}
}

func approx32(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func BenchmarkStep(b *testing.B) {
	f, err := New(testParams(500))
	if err != nil {
		b.Fatal(err)
	}
	f.Seed(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.Step(f.params.DT); err != nil {
			b.Fatal(err)
		}
	}
}
