// Package sim owns the running simulation: the fluid, the telemetry
// pipeline, and the graphical or headless update loop around them.
package sim

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fluid65/camera"
	"github.com/pthm-cable/fluid65/config"
	"github.com/pthm-cable/fluid65/renderer"
	"github.com/pthm-cable/fluid65/sph"
	"github.com/pthm-cable/fluid65/telemetry"
)

// Options configures a simulation run.
type Options struct {
	Seed           uint64
	Headless       bool
	LogStats       bool
	StepsPerUpdate int    // simulation ticks per update call
	OutputDir      string // CSV output directory (empty = disabled)
	CaptureDir     string // PNG frame directory (empty = disabled)
}

// Sim holds the complete simulation state. It exclusively owns the particle
// set; the renderer only reads it between ticks.
type Sim struct {
	cfg  *config.Config
	opts Options

	fluid *sph.Fluid

	cam      *camera.Camera
	scene    *renderer.Scene
	capturer *renderer.Capturer

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	tick          int32
	paused        bool
	stepsPerFrame int
}

// New builds a simulation from the global config and the given options.
func New(opts Options) (*Sim, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	fluid, err := sph.New(cfg.FluidParams())
	if err != nil {
		return nil, fmt.Errorf("building fluid: %w", err)
	}
	fluid.Seed(opts.Seed)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	s := &Sim{
		cfg:           cfg,
		opts:          opts,
		fluid:         fluid,
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Fluid.DT),
		perf:          telemetry.NewPerfCollector(cfg.Derived.StatsWindowTicks),
		output:        output,
		stepsPerFrame: opts.StepsPerUpdate,
	}

	if !opts.Headless {
		s.cam = camera.New(float32(cfg.Container.Radius) * 3)
		s.scene = renderer.NewScene(float32(cfg.Container.Radius))
		s.capturer, err = renderer.NewCapturer(opts.CaptureDir)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Tick returns the number of completed simulation ticks.
func (s *Sim) Tick() int32 { return s.tick }

// Update handles input and advances the simulation for one rendered frame.
func (s *Sim) Update() error {
	s.handleInput()

	if s.paused {
		return nil
	}

	for i := 0; i < s.stepsPerFrame; i++ {
		if err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateHeadless advances the simulation without any input handling.
func (s *Sim) UpdateHeadless() error {
	for i := 0; i < s.stepsPerFrame; i++ {
		if err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

// step runs one tick: physics, then telemetry. A physics error is fatal for
// the whole run; a partially updated tick must not feed the next one.
func (s *Sim) step() error {
	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseStep)
	if err := s.fluid.Step(s.cfg.Derived.DT32); err != nil {
		return fmt.Errorf("tick %d: %w", s.tick, err)
	}
	s.tick++

	s.perf.StartPhase(telemetry.PhaseStats)
	s.collector.Record(s.fluid)
	if s.collector.WindowReady(s.tick) {
		ws := s.collector.EndWindow(s.tick)
		perfStats := s.perf.Stats()

		if s.opts.LogStats {
			ws.Log()
			perfStats.LogStats()
		}
		if err := s.output.WriteTelemetry(ws); err != nil {
			slog.Error("writing telemetry", "error", err)
		}
		if err := s.output.WritePerf(perfStats.Record(s.tick)); err != nil {
			slog.Error("writing perf", "error", err)
		}
	}

	s.perf.EndTick()
	return nil
}

// Draw renders the current particle state. Graphical mode only.
func (s *Sim) Draw() {
	s.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	s.scene.Draw(s.fluid.Particles(), s.cam)
	rl.DrawFPS(10, 10)
	rl.EndDrawing()

	s.capturer.Capture()
}

// Close flushes telemetry output.
func (s *Sim) Close() error {
	return s.output.Close()
}
