// Package camera provides an orbit camera for viewing the container.
package camera

import (
	"math"

	"github.com/pthm-cable/fluid65/vec"
)

// pitchLimit keeps the eye off the poles so the up vector stays valid.
const pitchLimit = math.Pi/2 - 0.05

// Camera orbits a target point at a fixed distance, controlled by yaw and
// pitch angles. All math is renderer-agnostic; the renderer converts Eye()
// into whatever its graphics API wants.
type Camera struct {
	Target vec.V3

	// Yaw rotates around the vertical axis, pitch tilts toward the poles.
	// Radians.
	Yaw, Pitch float32

	// Distance from target to eye, clamped to [MinDistance, MaxDistance].
	Distance    float32
	MinDistance float32
	MaxDistance float32
}

// New creates a camera looking at the origin from the given distance.
func New(distance float32) *Camera {
	return &Camera{
		Distance:    distance,
		MinDistance: distance * 0.25,
		MaxDistance: distance * 4,
	}
}

// Orbit adjusts yaw and pitch by the given deltas, clamping pitch away from
// the poles.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch += dpitch

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}

	// Keep yaw bounded so it never loses float precision on long runs.
	for c.Yaw > math.Pi {
		c.Yaw -= 2 * math.Pi
	}
	for c.Yaw < -math.Pi {
		c.Yaw += 2 * math.Pi
	}
}

// Zoom moves the eye along the view ray. Positive delta zooms in.
func (c *Camera) Zoom(delta float32) {
	c.Distance -= delta
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Eye returns the camera position in world coordinates. At zero yaw and
// pitch the eye sits on the +Z axis looking back at the target.
func (c *Camera) Eye() vec.V3 {
	cy := float32(math.Cos(float64(c.Yaw)))
	sy := float32(math.Sin(float64(c.Yaw)))
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))

	offset := vec.V3{
		X: c.Distance * cp * sy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * cy,
	}
	return vec.Add(c.Target, offset)
}
