package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Capturer writes each frame as a numbered PNG into a directory, to be
// assembled into a video offline. A nil Capturer is a no-op, mirroring the
// telemetry OutputManager convention.
type Capturer struct {
	dir   string
	frame int
}

// NewCapturer creates a frame capturer. Returns nil if dir is empty
// (capture disabled).
func NewCapturer(dir string) (*Capturer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating capture directory: %w", err)
	}
	return &Capturer{dir: dir}, nil
}

// Capture saves the current framebuffer. Must be called after the frame has
// been drawn.
func (c *Capturer) Capture() {
	if c == nil {
		return
	}
	rl.TakeScreenshot(filepath.Join(c.dir, fmt.Sprintf("frame_%05d.png", c.frame)))
	c.frame++
}
