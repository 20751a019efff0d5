// Package input turns device state into a structured per-tick InputFrame.
// The vehicle core never touches a device API: it consumes frames from a Source,
// and keyboard or gamepad sources are chosen when the game is wired together.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is the logical input for one simulation tick. Steer and Throttle are in
// [-1, 1], Brake in [0, 1]. Reset is edge-triggered: true only on the tick the
// reset action begins. Frames are recomputed every tick and never persisted.
type Frame struct {
	Steer    float32
	Throttle float32
	Brake    float32
	Reset    bool
}

// Clamped returns the frame with every channel forced into its documented range.
func (f Frame) Clamped() Frame {
	f.Steer = rl.Clamp(f.Steer, -1, 1)
	f.Throttle = rl.Clamp(f.Throttle, -1, 1)
	f.Brake = rl.Clamp(f.Brake, 0, 1)
	return f
}

// Source produces one Frame per simulation tick. Implementations poll whatever
// device they wrap; callers poll exactly once per tick.
type Source interface {
	Poll() Frame
}
