package telemetry

import (
	"testing"

	"github.com/pthm-cable/fluid65/sph"
	"github.com/pthm-cable/fluid65/vec"
)

func testFluid(t *testing.T, n int) *sph.Fluid {
	t.Helper()
	f, err := sph.New(sph.Params{
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
	})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestSampleFluid(t *testing.T) {
	f := testFluid(t, 3)
	parts := f.Particles()
	parts[0].Velocity = vec.V3{X: 2} // kinetic ½·1·4 = 2
	parts[1].Velocity = vec.V3{Y: 4} // kinetic ½·1·16 = 8
	parts[2].Position = vec.V3{X: 45} // beyond the 40-unit container
	parts[0].Density = 0.2
	parts[1].Density = 0.4
	parts[2].Density = 0.6
	parts[0].Pressure = -1
	parts[2].Pressure = 5

	s := SampleFluid(f)

	if s.Kinetic != 10 {
		t.Errorf("Kinetic = %v, want 10", s.Kinetic)
	}
	if s.MaxSpeed != 4 {
		t.Errorf("MaxSpeed = %v, want 4", s.MaxSpeed)
	}
	if s.DensityMin != 0.2 || s.DensityMax != 0.6 {
		t.Errorf("density range = [%v, %v], want [0.2, 0.6]", s.DensityMin, s.DensityMax)
	}
	if s.DensityMean < 0.399 || s.DensityMean > 0.401 {
		t.Errorf("DensityMean = %v, want 0.4", s.DensityMean)
	}
	if s.PressureMin != -1 || s.PressureMax != 5 {
		t.Errorf("pressure range = [%v, %v], want [-1, 5]", s.PressureMin, s.PressureMax)
	}
	if s.Outside != 1 {
		t.Errorf("Outside = %d, want 1", s.Outside)
	}
}

func TestCollectorWindows(t *testing.T) {
	f := testFluid(t, 2)
	c := NewCollector(0.08, 0.04) // 2 ticks per window

	var tick int32
	for tick = 1; tick <= 2; tick++ {
		c.Record(f)
	}
	if !c.WindowReady(2) {
		t.Fatal("window should be ready after 2 ticks")
	}
	if c.WindowReady(1) {
		t.Error("window ready too early")
	}

	ws := c.EndWindow(2)
	if ws.WindowStartTick != 0 || ws.WindowEndTick != 2 {
		t.Errorf("window bounds = [%d, %d], want [0, 2]", ws.WindowStartTick, ws.WindowEndTick)
	}

	// Next window starts where the last ended.
	if c.WindowReady(3) {
		t.Error("fresh window should not be ready one tick in")
	}
	if !c.WindowReady(4) {
		t.Error("fresh window should be ready after two more ticks")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0.001, 0.04) // shorter than one tick: clamps to 1
	if !c.WindowReady(1) {
		t.Error("sub-tick window should clamp to one tick")
	}
}
