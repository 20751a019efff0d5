package vehicle

import (
	"errors"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"arcade-drive/internal/input"
	"arcade-drive/internal/physics"
)

const (
	// rollStabilityGain scales the restoring torque that rights the chassis.
	// It corrects excess roll/pitch every tick without being a hard constraint.
	rollStabilityGain = 6.0

	// groundRayLift raises the ray origin slightly above the chassis origin so
	// the cast doesn't start inside the ground it is looking for.
	groundRayLift = 0.1

	// resetLift raises the vehicle on reset to avoid ground interpenetration.
	resetLift = 0.5

	// pedalDeadzone is the threshold under which throttle/brake inputs are
	// treated as released for the braking rules.
	pedalDeadzone = 0.1
)

// Dynamics drives a rigid body from per-tick input: ground check, longitudinal
// and lateral forces, kinematic steering, downforce, and roll stabilization.
// It owns nothing beyond the cached input frame and the grounded flag; all
// physical state lives on the body.
type Dynamics struct {
	world  *physics.World
	body   *physics.Body
	tuning Tuning

	frame    input.Frame
	grounded bool
}

// ErrNoBody is returned when a Dynamics is constructed without a rigid body.
var ErrNoBody = errors.New("vehicle: dynamics requires a rigid body")

// ErrNoWorld is returned when a Dynamics is constructed without a physics world.
var ErrNoWorld = errors.New("vehicle: dynamics requires a physics world")

// NewDynamics returns a dynamics controller for body in world. The body's center
// of mass is lowered by the tuning's Y offset so the chassis resists rolling.
func NewDynamics(world *physics.World, body *physics.Body, tuning Tuning) (*Dynamics, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if body == nil {
		return nil, ErrNoBody
	}
	body.CenterOfMass = rl.NewVector3(0, tuning.CenterOfMassYOffset, 0)
	return &Dynamics{world: world, body: body, tuning: tuning}, nil
}

// SetInput caches the input frame for the next Tick. Channels are re-clamped
// so a misbehaving source cannot push values out of range.
func (d *Dynamics) SetInput(f input.Frame) {
	d.frame = f.Clamped()
}

// Grounded reports whether the last Tick's ground ray hit within range.
// Recomputed every tick with no hysteresis.
func (d *Dynamics) Grounded() bool {
	return d.grounded
}

// Body returns the driven rigid body.
func (d *Dynamics) Body() *physics.Body {
	return d.body
}

// Tuning returns the active tuning.
func (d *Dynamics) Tuning() Tuning {
	return d.tuning
}

// GroundRay returns the ground-check ray geometry (origin, direction, length)
// for the current pose, for external visualizers.
func (d *Dynamics) GroundRay() (origin, dir rl.Vector3, length float32) {
	origin = rl.Vector3Add(d.body.Position, rl.NewVector3(0, groundRayLift, 0))
	return origin, rl.NewVector3(0, -1, 0), d.tuning.GroundRayLength
}

// Speed returns the current forward speed in the body's local frame (m/s,
// negative when reversing).
func (d *Dynamics) Speed() float32 {
	return d.body.LocalVelocity().Z
}

// Tick runs one fixed-timestep update with the cached input frame.
// Call once per physics tick, before World.Step.
func (d *Dynamics) Tick(dt float32) {
	if d.frame.Reset {
		d.reset()
		return
	}

	origin, dir, length := d.GroundRay()
	_, d.grounded = d.world.Raycast(origin, dir, length, d.body)

	local := d.body.LocalVelocity()
	forwardVel := local.Z
	lateralVel := local.X

	speedFactor := rl.Clamp(math32.Abs(forwardVel)/d.tuning.MaxForwardSpeed, 0, 1)

	if d.grounded {
		force := d.longitudinalForce(forwardVel)
		d.body.AddAcceleration(rl.Vector3Scale(d.body.Forward(), force))
		d.body.AddAcceleration(rl.Vector3Scale(d.body.Right(), -lateralVel*d.tuning.LateralFriction))
		d.body.AddAcceleration(rl.Vector3Scale(d.body.Up(), -d.tuning.Downforce*speedFactor))
	} else {
		d.body.AddAcceleration(rl.Vector3Scale(d.world.Gravity, d.tuning.ExtraGravity))
	}

	d.steer(speedFactor, dt)
	d.stabilize()
}

// longitudinalForce returns the forward-axis acceleration for the current tick.
// The speed error is capped to ±1 so the force per tick is bounded regardless
// of how far the vehicle is from its target speed.
func (d *Dynamics) longitudinalForce(forwardVel float32) float32 {
	target := d.tuning.MaxForwardSpeed
	if d.frame.Throttle < 0 {
		target = d.tuning.MaxReverseSpeed
	}
	errTerm := rl.Clamp(d.frame.Throttle*target-forwardVel, -1, 1)
	force := errTerm * d.tuning.Acceleration

	// Rolling against the throttle (e.g. sliding backwards under forward
	// throttle) gets an extra braking kick so direction changes feel crisp.
	if signf(forwardVel) != signf(d.frame.Throttle) && math32.Abs(d.frame.Throttle) > pedalDeadzone {
		force -= d.tuning.BrakeStrength * signf(forwardVel)
	}
	if d.frame.Brake > pedalDeadzone {
		force -= d.tuning.BrakeStrength * signf(forwardVel)
	}
	return force
}

// steer applies the yaw delta as a kinematic rotation about the local up axis.
// Authority shrinks linearly with speed; steering works even airborne.
func (d *Dynamics) steer(speedFactor, dt float32) {
	authority := rl.Lerp(1, 1-d.tuning.HighSpeedSteerReduction, speedFactor)
	yawDeg := d.frame.Steer * d.tuning.SteerRate * authority * dt
	if yawDeg == 0 {
		return
	}
	delta := rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), yawDeg*rl.Deg2rad)
	d.body.MoveRotation(delta)
}

// stabilize applies a restoring torque toward world up, every tick.
// Proportional to up × worldUp, so it vanishes when the chassis is level.
// The body's center-of-mass height scales the torque arm: a lowered center
// rights the chassis harder, a raised one weakens the response.
func (d *Dynamics) stabilize() {
	lean := rl.Vector3CrossProduct(d.body.Up(), rl.NewVector3(0, 1, 0))
	arm := math32.Max(0, 1-d.body.CenterOfMass.Y)
	d.body.AddTorque(rl.Vector3Scale(lean, rollStabilityGain*arm))
}

// reset zeroes all motion, snaps the orientation to yaw only, and lifts the
// vehicle slightly along world up. Horizontal position is kept.
// Yaw is recovered from the projected forward axis rather than Euler angles,
// so roll/pitch stripping is exact regardless of rotation order.
func (d *Dynamics) reset() {
	fwd := d.body.Forward()
	yaw := math32.Atan2(fwd.X, fwd.Z)
	pos := d.body.Position
	pos.Y += resetLift
	d.body.SetPose(pos, rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), yaw))
	d.body.SetVelocity(rl.Vector3Zero())
	d.body.SetAngularVelocity(rl.Vector3Zero())
	d.grounded = false
}

// signf returns -1, 0, or 1. Zero maps to zero so braking terms contribute
// nothing at rest.
func signf(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
