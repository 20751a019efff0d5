// Package followcam smooths a camera behind a moving target. Position chases a
// target-relative offset through a critically damped filter; orientation can
// optionally slerp toward a look-at of the target.
package followcam

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Target is any transform the camera can follow. The vehicle's rigid body
// satisfies this; tests use fixed poses.
type Target interface {
	WorldPosition() rl.Vector3
	WorldRotation() rl.Quaternion
}

// rotationLerp is the fixed fraction the orientation slerps toward the look-at
// each frame when LookAtTarget is enabled.
const rotationLerp = 0.15

// Camera follows a Target with a smoothed position and optional look-at rotation.
// The velocity accumulator is the filter's internal state, carried frame to frame.
type Camera struct {
	Offset       rl.Vector3 // in the target's local frame, e.g. behind-and-above
	SmoothTime   float32    // seconds to close most of the gap; smaller = stiffer
	LookAtTarget bool

	target   Target
	position rl.Vector3
	rotation rl.Quaternion
	velocity rl.Vector3 // SmoothDamp accumulator
}

// New returns a camera at the origin with identity rotation, following nothing yet.
func New(offset rl.Vector3, smoothTime float32) *Camera {
	return &Camera{
		Offset:       offset,
		SmoothTime:   smoothTime,
		LookAtTarget: true,
		rotation:     rl.QuaternionIdentity(),
	}
}

// SetTarget binds the transform to follow. Pass nil to unbind; Update then
// holds the current pose (a no-op, not an error).
func (c *Camera) SetTarget(t Target) {
	c.target = t
}

// SnapTo places the camera directly at its desired pose behind the target,
// killing accumulated velocity. Useful when teleporting the target.
func (c *Camera) SnapTo() {
	if c.target == nil {
		return
	}
	c.position = c.desiredPosition()
	c.velocity = rl.Vector3Zero()
	if c.LookAtTarget {
		c.rotation = c.lookRotation()
	}
}

// Position returns the camera's current world position.
func (c *Camera) Position() rl.Vector3 {
	return c.position
}

// Rotation returns the camera's current world orientation.
func (c *Camera) Rotation() rl.Quaternion {
	return c.rotation
}

// Update advances the camera one rendered frame. Call after all physics ticks
// for the frame so the target pose is current. dt is the render delta time.
func (c *Camera) Update(dt float32) {
	if c.target == nil || dt <= 0 {
		return
	}
	desired := c.desiredPosition()
	c.position, c.velocity = smoothDamp(c.position, desired, c.velocity, c.SmoothTime, dt)
	if c.LookAtTarget {
		c.rotation = rl.QuaternionSlerp(c.rotation, c.lookRotation(), rotationLerp)
	}
}

// desiredPosition is the offset expressed in the target's rotated frame,
// translated to world space: behind-and-above regardless of heading.
func (c *Camera) desiredPosition() rl.Vector3 {
	rotated := rl.Vector3RotateByQuaternion(c.Offset, c.target.WorldRotation())
	return rl.Vector3Add(c.target.WorldPosition(), rotated)
}

// lookRotation faces from the camera's current position toward the target,
// with world up as the reference up axis.
func (c *Camera) lookRotation() rl.Quaternion {
	dir := rl.Vector3Subtract(c.target.WorldPosition(), c.position)
	if rl.Vector3Length(dir) < 1e-6 {
		return c.rotation
	}
	dir = rl.Vector3Normalize(dir)
	yaw := math32.Atan2(dir.X, dir.Z)
	pitch := -math32.Asin(rl.Clamp(dir.Y, -1, 1))
	yawQ := rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), yaw)
	pitchQ := rl.QuaternionFromAxisAngle(rl.NewVector3(1, 0, 0), pitch)
	return rl.QuaternionMultiply(yawQ, pitchQ)
}

// smoothDamp moves current toward desired with a critically damped spring,
// never overshooting on the first step from rest. velocity is carried by the
// caller between frames. Standard exponential approximation of the spring.
func smoothDamp(current, desired, velocity rl.Vector3, smoothTime, dt float32) (rl.Vector3, rl.Vector3) {
	smoothTime = math32.Max(1e-4, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := rl.Vector3Subtract(current, desired)
	temp := rl.Vector3Scale(rl.Vector3Add(velocity, rl.Vector3Scale(change, omega)), dt)
	velocity = rl.Vector3Scale(rl.Vector3Subtract(velocity, rl.Vector3Scale(temp, omega)), decay)
	next := rl.Vector3Add(desired, rl.Vector3Scale(rl.Vector3Add(change, temp), decay))
	return next, velocity
}
