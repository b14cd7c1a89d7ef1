package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TickSample holds the per-tick measurements taken from the particle set.
type TickSample struct {
	Kinetic     float64 // total kinetic energy, ½Σm|v|²
	MaxSpeed    float64
	DensityMin  float64
	DensityMean float64
	DensityMax  float64
	PressureMin float64
	PressureMax float64
	Outside     int // particles beyond the container radius
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	KineticMean float64 `csv:"kinetic_mean"`
	KineticP50  float64 `csv:"kinetic_p50"`
	KineticMax  float64 `csv:"kinetic_max"`
	MaxSpeed    float64 `csv:"max_speed"`

	DensityMin  float64 `csv:"density_min"`
	DensityMean float64 `csv:"density_mean"`
	DensityStd  float64 `csv:"density_std"`
	DensityMax  float64 `csv:"density_max"`

	PressureMin float64 `csv:"pressure_min"`
	PressureMax float64 `csv:"pressure_max"`

	OutsideMean float64 `csv:"outside_mean"`
	OutsideMax  int     `csv:"outside_max"`
}

// aggregate folds a window of tick samples into WindowStats.
func aggregate(samples []TickSample, startTick, endTick int32, dt float64) WindowStats {
	ws := WindowStats{
		WindowStartTick: startTick,
		WindowEndTick:   endTick,
		SimTimeSec:      float64(endTick) * dt,
	}
	if len(samples) == 0 {
		return ws
	}

	kinetic := make([]float64, len(samples))
	densMeans := make([]float64, len(samples))
	var outsideSum int

	for i, s := range samples {
		kinetic[i] = s.Kinetic
		densMeans[i] = s.DensityMean
		outsideSum += s.Outside

		if i == 0 {
			ws.DensityMin = s.DensityMin
			ws.DensityMax = s.DensityMax
			ws.PressureMin = s.PressureMin
			ws.PressureMax = s.PressureMax
		}
		if s.DensityMin < ws.DensityMin {
			ws.DensityMin = s.DensityMin
		}
		if s.DensityMax > ws.DensityMax {
			ws.DensityMax = s.DensityMax
		}
		if s.PressureMin < ws.PressureMin {
			ws.PressureMin = s.PressureMin
		}
		if s.PressureMax > ws.PressureMax {
			ws.PressureMax = s.PressureMax
		}
		if s.MaxSpeed > ws.MaxSpeed {
			ws.MaxSpeed = s.MaxSpeed
		}
		if s.Kinetic > ws.KineticMax {
			ws.KineticMax = s.Kinetic
		}
		if s.Outside > ws.OutsideMax {
			ws.OutsideMax = s.Outside
		}
	}

	ws.KineticMean = stat.Mean(kinetic, nil)
	sort.Float64s(kinetic)
	ws.KineticP50 = stat.Quantile(0.5, stat.Empirical, kinetic, nil)

	ws.DensityMean = stat.Mean(densMeans, nil)
	if len(densMeans) > 1 {
		ws.DensityStd = stat.StdDev(densMeans, nil)
	}

	ws.OutsideMean = float64(outsideSum) / float64(len(samples))

	return ws
}

// Log writes the window stats via slog.
func (ws WindowStats) Log() {
	slog.Info("window stats",
		"window_end", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"kinetic_mean", ws.KineticMean,
		"kinetic_max", ws.KineticMax,
		"max_speed", ws.MaxSpeed,
		"density_min", ws.DensityMin,
		"density_mean", ws.DensityMean,
		"density_max", ws.DensityMax,
		"outside_mean", ws.OutsideMean,
	)
}
