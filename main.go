package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fluid65/config"
	"github.com/pthm-cable/fluid65/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	captureDir := flag.String("capture-dir", "", "Directory for per-frame PNG captures (graphical mode)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	opts := sim.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		LogStats:       *logStats,
		StepsPerUpdate: *stepsPerUpdate,
		OutputDir:      *outputDir,
		CaptureDir:     *captureDir,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		s, err := sim.New(opts)
		if err != nil {
			slog.Error("failed to build simulation", "error", err)
			os.Exit(1)
		}
		defer s.Close()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"particles", cfg.Fluid.Particles,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			if err := s.UpdateHeadless(); err != nil {
				slog.Error("simulation halted", "error", err)
				s.Close()
				os.Exit(1)
			}

			if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", s.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "SPH Fluid")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := sim.New(opts)
	if err != nil {
		slog.Error("failed to build simulation", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	for !rl.WindowShouldClose() {
		if err := s.Update(); err != nil {
			slog.Error("simulation halted", "error", err)
			s.Close()
			os.Exit(1)
		}
		s.Draw()

		if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
			break
		}
	}
}
