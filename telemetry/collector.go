package telemetry

import (
	"github.com/pthm-cable/fluid65/sph"
	"github.com/pthm-cable/fluid65/vec"
)

// Collector samples the particle set once per tick and aggregates the
// samples into fixed-duration windows. It only ever reads particle state,
// between steps.
type Collector struct {
	windowTicks int32
	dt          float64

	windowStart int32
	samples     []TickSample
}

// NewCollector creates a stats collector.
// windowSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick. Taken as float64 so reported sim time does not
// inherit float32 rounding from the physics step size.
func NewCollector(windowSec, dt float64) *Collector {
	ticks := int32(windowSec / dt)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks: ticks,
		dt:          dt,
		samples:     make([]TickSample, 0, ticks),
	}
}

// Record takes a tick sample from the fluid.
func (c *Collector) Record(f *sph.Fluid) {
	c.samples = append(c.samples, SampleFluid(f))
}

// WindowReady reports whether the current window is full at the given tick.
func (c *Collector) WindowReady(tick int32) bool {
	return tick-c.windowStart >= c.windowTicks
}

// EndWindow aggregates and resets the current window.
func (c *Collector) EndWindow(tick int32) WindowStats {
	ws := aggregate(c.samples, c.windowStart, tick, c.dt)
	c.windowStart = tick
	c.samples = c.samples[:0]
	return ws
}

// SampleFluid measures one tick's worth of statistics from the particle set.
func SampleFluid(f *sph.Fluid) TickSample {
	parts := f.Particles()
	if len(parts) == 0 {
		return TickSample{}
	}

	containerR := float64(f.Params().ContainerRadius)

	s := TickSample{
		DensityMin:  float64(parts[0].Density),
		DensityMax:  float64(parts[0].Density),
		PressureMin: float64(parts[0].Pressure),
		PressureMax: float64(parts[0].Pressure),
	}

	var densitySum float64
	for i := range parts {
		p := &parts[i]

		speed := float64(vec.Length(p.Velocity))
		s.Kinetic += 0.5 * float64(p.Mass) * speed * speed
		if speed > s.MaxSpeed {
			s.MaxSpeed = speed
		}

		d := float64(p.Density)
		densitySum += d
		if d < s.DensityMin {
			s.DensityMin = d
		}
		if d > s.DensityMax {
			s.DensityMax = d
		}

		pr := float64(p.Pressure)
		if pr < s.PressureMin {
			s.PressureMin = pr
		}
		if pr > s.PressureMax {
			s.PressureMax = pr
		}

		if float64(vec.Length(p.Position)) > containerR {
			s.Outside++
		}
	}
	s.DensityMean = densitySum / float64(len(parts))

	return s
}
