// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/fluid65/sph"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Fluid     FluidConfig     `yaml:"fluid"`
	Container ContainerConfig `yaml:"container"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Capture   CaptureConfig   `yaml:"capture"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FluidConfig holds the physical parameters of the fluid.
type FluidConfig struct {
	Particles       int     `yaml:"particles"`
	SmoothingRadius float64 `yaml:"smoothing_radius"` // kernel support radius h
	ParticleMass    float64 `yaml:"particle_mass"`
	RestDensity     float64 `yaml:"rest_density"`
	GasConstant     float64 `yaml:"gas_constant"`    // pressure stiffness k
	Viscosity       float64 `yaml:"viscosity"`       // dynamic viscosity μ
	SurfaceTension  float64 `yaml:"surface_tension"` // tension coefficient σ
	Gravity         float64 `yaml:"gravity"`         // y force per unit mass, negative = down
	DT              float64 `yaml:"dt"`              // fixed simulation time step
}

// ContainerConfig describes the spherical container.
type ContainerConfig struct {
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"` // outward velocity kept after a bounce
}

// SpawnConfig holds initial particle sampling parameters.
type SpawnConfig struct {
	Stddev float64 `yaml:"stddev"` // per-axis Gaussian stddev around the origin
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of sim time per stats window
}

// CaptureConfig holds frame capture parameters.
type CaptureConfig struct {
	Dir string `yaml:"dir"` // PNG frame output directory (empty = disabled)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32             float32 // Fluid.DT as float32
	ScreenW32        float32
	ScreenH32        float32
	StatsWindowTicks int // StatsWindow converted to whole ticks
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Fluid.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := 1
	if c.Fluid.DT > 0 {
		ticks = int(c.Telemetry.StatsWindow / c.Fluid.DT)
	}
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.StatsWindowTicks = ticks
}

// FluidParams maps the loaded configuration onto the physics core's
// parameter set.
func (c *Config) FluidParams() sph.Params {
	return sph.Params{
		Particles:       c.Fluid.Particles,
		SmoothingRadius: float32(c.Fluid.SmoothingRadius),
		ParticleMass:    float32(c.Fluid.ParticleMass),
		RestDensity:     float32(c.Fluid.RestDensity),
		GasConstant:     float32(c.Fluid.GasConstant),
		Viscosity:       float32(c.Fluid.Viscosity),
		SurfaceTension:  float32(c.Fluid.SurfaceTension),
		Gravity:         float32(c.Fluid.Gravity),
		ContainerRadius: float32(c.Container.Radius),
		Restitution:     float32(c.Container.Restitution),
		DT:              c.Derived.DT32,
		SpawnStddev:     float32(c.Spawn.Stddev),
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
