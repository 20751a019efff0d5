package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard polls WASD/arrow keys for driving, Space for brake, and R for reset.
// Digital keys map to full-scale axis values; there is no analog ramp.
type Keyboard struct {
	resetHeld bool // previous poll, for edge detection
}

// NewKeyboard returns a keyboard input source.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll reads the current key state and returns a clamped frame. Reset edges on
// the R key transition per poll, not per render frame, so a frame that runs
// several physics ticks still fires reset once.
func (k *Keyboard) Poll() Frame {
	var f Frame
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		f.Throttle = 1
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		f.Throttle = -1
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		f.Steer = -1
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		f.Steer = 1
	}
	if rl.IsKeyDown(rl.KeySpace) {
		f.Brake = 1
	}

	resetDown := rl.IsKeyDown(rl.KeyR)
	f.Reset = resetDown && !k.resetHeld
	k.resetHeld = resetDown

	return f.Clamped()
}
