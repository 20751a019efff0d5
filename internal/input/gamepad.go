package input

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// steerDeadzone filters stick noise near center; steerCurveExp shapes the stick
// response so small deflections steer gently (matches how analog pads feel best).
const (
	steerDeadzone = 0.1
	steerCurveExp = 1.75
)

// Gamepad polls a controller: left stick X steers, right trigger is throttle,
// left trigger is reverse throttle, face-down button brakes, face-right resets.
type Gamepad struct {
	pad       int32
	resetHeld bool // previous poll, for edge detection
}

// NewGamepad returns a gamepad source for the given pad index (0 for the first pad).
func NewGamepad(pad int32) *Gamepad {
	return &Gamepad{pad: pad}
}

// Available reports whether the wrapped pad is currently connected.
func (g *Gamepad) Available() bool {
	return rl.IsGamepadAvailable(g.pad)
}

// Poll reads the current pad state and returns a clamped frame. A disconnected
// pad yields an all-zero frame. Reset edges on the face-right button transition.
func (g *Gamepad) Poll() Frame {
	if !rl.IsGamepadAvailable(g.pad) {
		g.resetHeld = false
		return Frame{}
	}

	var f Frame
	f.Steer = shapeSteer(rl.GetGamepadAxisMovement(g.pad, rl.GamepadAxisLeftX))

	// Triggers report [-1, 1] at rest-to-full; remap to [0, 1].
	fwd := (1 + rl.GetGamepadAxisMovement(g.pad, rl.GamepadAxisRightTrigger)) / 2
	rev := (1 + rl.GetGamepadAxisMovement(g.pad, rl.GamepadAxisLeftTrigger)) / 2
	f.Throttle = fwd - rev

	if rl.IsGamepadButtonDown(g.pad, rl.GamepadButtonRightFaceDown) {
		f.Brake = 1
	}

	resetDown := rl.IsGamepadButtonDown(g.pad, rl.GamepadButtonRightFaceRight)
	f.Reset = resetDown && !g.resetHeld
	g.resetHeld = resetDown

	return f.Clamped()
}

// shapeSteer applies the deadzone and response curve to a raw stick value.
func shapeSteer(raw float32) float32 {
	if math32.Abs(raw) < steerDeadzone {
		return 0
	}
	sign := float32(1)
	if raw < 0 {
		sign = -1
	}
	return sign * math32.Pow(math32.Abs(raw), steerCurveExp)
}
