package sph

import (
	"fmt"
	"math"
)

// Step advances the fluid by dt. It runs exactly five passes over the whole
// set, in strict order: density, pressure, color gradient, force
// accumulation, integration. Every pass completes for all particles before
// the next begins; within a pass each particle reads only state frozen at
// the end of the previous pass and writes only its own fields, so the
// passes parallelize without changing the result.
//
// A zero or non-finite density after the first pass is an internal
// consistency violation (it cannot occur with valid parameters) and aborts
// the step before any velocity or position is touched.
func (f *Fluid) Step(dt float32) error {
	f.forEach(func(i int) {
		f.parts[i].Density = f.density(&f.parts[i])
	})
	if err := f.checkDensities(); err != nil {
		return err
	}

	f.forEach(func(i int) {
		f.parts[i].Pressure = f.pressure(&f.parts[i])
	})

	f.forEach(func(i int) {
		f.parts[i].ColorGradient = f.colorGradient(&f.parts[i])
	})

	f.forEach(func(i int) {
		f.accumulate(&f.parts[i])
	})

	f.forEach(func(i int) {
		f.integrate(&f.parts[i], dt)
	})

	return nil
}

// checkDensities verifies the strictly-positive density invariant before
// anything divides by it.
func (f *Fluid) checkDensities() error {
	for i := range f.parts {
		d := float64(f.parts[i].Density)
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("sph: invalid density %g at particle %d (bad parameterization?)", d, i)
		}
	}
	return nil
}
