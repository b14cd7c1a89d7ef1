// Package renderer draws the particle set with raylib. It only ever reads
// particle state between simulation steps; the physics core has no idea it
// exists.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fluid65/camera"
	"github.com/pthm-cable/fluid65/sph"
	"github.com/pthm-cable/fluid65/vec"
)

// Scene renders particles as small spheres inside a wireframe container.
type Scene struct {
	containerRadius float32
	particleRadius  float32
}

// NewScene creates a scene for the given container radius.
func NewScene(containerRadius float32) *Scene {
	return &Scene{
		containerRadius: containerRadius,
		particleRadius:  1.0,
	}
}

// Draw renders one frame of the particle set from the camera's viewpoint.
func (s *Scene) Draw(parts []sph.Particle, cam *camera.Camera) {
	rlCam := rl.Camera3D{
		Position:   toRL(cam.Eye()),
		Target:     toRL(cam.Target),
		Up:         rl.NewVector3(0, -1, 0), // gravity pulls toward -y; flip so the fluid falls down on screen
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(rlCam)

	for i := range parts {
		p := &parts[i]
		rl.DrawSphereEx(toRL(p.Position), s.particleRadius, 6, 12, particleColor(p))
	}

	rl.DrawSphereWires(rl.NewVector3(0, 0, 0), s.containerRadius, 24, 48, rl.Gray)

	rl.EndMode3D()
}

// particleColor shades faster particles brighter so the flow reads visually.
func particleColor(p *sph.Particle) rl.Color {
	t := vec.Length(p.Velocity) / 10
	if t > 1 {
		t = 1
	}
	return rl.Color{
		R: uint8(40 + 80*t),
		G: uint8(80 + 120*t),
		B: 255,
		A: 255,
	}
}

func toRL(v vec.V3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
