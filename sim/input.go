package sim

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	orbitSensitivity = 0.005 // radians per pixel of mouse drag
	zoomSensitivity  = 5.0   // world units per wheel notch
)

// handleInput processes keyboard and mouse input for one frame.
func (s *Sim) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		s.paused = !s.paused
	}

	if rl.IsKeyPressed(rl.KeyComma) && s.stepsPerFrame > 1 {
		s.stepsPerFrame--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		s.stepsPerFrame++
	}

	if rl.IsKeyPressed(rl.KeyR) {
		s.opts.Seed++
		s.fluid.Seed(s.opts.Seed)
		s.tick = 0
	}

	if rl.IsKeyPressed(rl.KeyF2) {
		rl.TakeScreenshot(fmt.Sprintf("screenshot_%d.png", s.tick))
	}

	// Camera controls: arrow keys or left mouse drag
	const keyOrbitSpeed = 0.03
	if rl.IsKeyDown(rl.KeyRight) {
		s.cam.Orbit(keyOrbitSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		s.cam.Orbit(-keyOrbitSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		s.cam.Orbit(0, keyOrbitSpeed)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		s.cam.Orbit(0, -keyOrbitSpeed)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		s.cam.Orbit(d.X*orbitSensitivity, d.Y*orbitSensitivity)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.cam.Zoom(-wheel * zoomSensitivity)
	}
}
