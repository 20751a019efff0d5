package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a 3D rigid body with position, orientation, linear and angular velocity,
// and an AABB (from scale). Static bodies do not move and are not affected by gravity.
// Trigger bodies only tag a volume: ray queries and collision resolution skip them.
type Body struct {
	Position        rl.Vector3
	Rotation        rl.Quaternion
	Velocity        rl.Vector3 // world space, m/s
	AngularVelocity rl.Vector3 // world space, rad/s
	Scale           rl.Vector3
	Mass            float32
	CenterOfMass    rl.Vector3 // local offset from Position; controllers read it to shape torques
	Static          bool
	Trigger         bool

	// Per-step accumulators, cleared by World.Step.
	accel       rl.Vector3 // mass-independent linear acceleration
	angAccel    rl.Vector3 // mass-independent angular acceleration
	pendingSpin rl.Quaternion
	hasSpin     bool
}

// NewBody returns a dynamic body at position with the given scale (AABB extents).
// Velocity and angular velocity are zero, rotation is identity.
// mass is used for collision response; use 1 for default.
func NewBody(position, scale rl.Vector3, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Position: position,
		Rotation: rl.QuaternionIdentity(),
		Scale:    scale,
		Mass:     mass,
	}
}

// NewStaticBody returns a static body (ignores gravity, forces, and integration).
func NewStaticBody(position, scale rl.Vector3) *Body {
	b := NewBody(position, scale, 1)
	b.Static = true
	return b
}

// AddAcceleration queues a mass-independent acceleration for the next Step.
// The caller specifies the resulting acceleration directly; mass is not applied.
func (b *Body) AddAcceleration(a rl.Vector3) {
	if b.Static {
		return
	}
	b.accel = rl.Vector3Add(b.accel, a)
}

// AddTorque queues a mass-independent angular acceleration (rad/s²) for the next Step.
func (b *Body) AddTorque(t rl.Vector3) {
	if b.Static {
		return
	}
	b.angAccel = rl.Vector3Add(b.angAccel, t)
}

// MoveRotation queues an incremental rotation composed onto the current orientation
// at the next Step, before angular velocity integration. Used for kinematic steering.
func (b *Body) MoveRotation(delta rl.Quaternion) {
	if b.Static {
		return
	}
	if b.hasSpin {
		b.pendingSpin = rl.QuaternionMultiply(b.pendingSpin, delta)
		return
	}
	b.pendingSpin = delta
	b.hasSpin = true
}

// SetPose replaces position and rotation directly, bypassing integration.
func (b *Body) SetPose(position rl.Vector3, rotation rl.Quaternion) {
	b.Position = position
	b.Rotation = rl.QuaternionNormalize(rotation)
}

// SetVelocity replaces the linear velocity directly.
func (b *Body) SetVelocity(v rl.Vector3) {
	b.Velocity = v
}

// SetAngularVelocity replaces the angular velocity directly.
func (b *Body) SetAngularVelocity(v rl.Vector3) {
	b.AngularVelocity = v
}

// WorldPosition returns the body's position. Satisfies camera target interfaces.
func (b *Body) WorldPosition() rl.Vector3 {
	return b.Position
}

// WorldRotation returns the body's orientation. Satisfies camera target interfaces.
func (b *Body) WorldRotation() rl.Quaternion {
	return b.Rotation
}

// Forward returns the body's local +Z axis in world space.
func (b *Body) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, 1), b.Rotation)
}

// Right returns the body's local +X axis in world space.
func (b *Body) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.NewVector3(1, 0, 0), b.Rotation)
}

// Up returns the body's local +Y axis in world space.
func (b *Body) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), b.Rotation)
}

// LocalVelocity returns the linear velocity expressed in the body's local frame
// (X = right, Y = up, Z = forward).
func (b *Body) LocalVelocity() rl.Vector3 {
	return rl.NewVector3(
		rl.Vector3DotProduct(b.Velocity, b.Right()),
		rl.Vector3DotProduct(b.Velocity, b.Up()),
		rl.Vector3DotProduct(b.Velocity, b.Forward()),
	)
}

// clearStep resets per-step accumulators after integration.
func (b *Body) clearStep() {
	b.accel = rl.Vector3Zero()
	b.angAccel = rl.Vector3Zero()
	b.hasSpin = false
}
