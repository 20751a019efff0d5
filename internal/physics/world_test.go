package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = float32(1.0 / 60.0)

func newZeroGravityWorld() *World {
	w := NewWorld()
	w.SetGravity(rl.NewVector3(0, 0, 0))
	return w
}

func TestStepIntegratesAcceleration(t *testing.T) {
	w := newZeroGravityWorld()
	b := NewBody(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 1, 1), 10)
	w.AddBody(b)

	b.AddAcceleration(rl.NewVector3(0, 0, 6))
	w.Step(dt)

	// Acceleration mode ignores mass: dv = a*dt regardless of the 10 kg body.
	assert.InDelta(t, 6*dt, b.Velocity.Z, 1e-5)
	assert.InDelta(t, 6*dt*dt, b.Position.Z, 1e-5)
}

func TestStepAppliesGravity(t *testing.T) {
	w := NewWorld()
	b := NewBody(rl.NewVector3(0, 50, 0), rl.NewVector3(1, 1, 1), 1)
	w.AddBody(b)

	w.Step(dt)

	assert.InDelta(t, -9.81*dt, b.Velocity.Y, 1e-4)
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld()
	b := NewStaticBody(rl.NewVector3(1, 2, 3), rl.NewVector3(4, 1, 4))
	w.AddBody(b)

	b.AddAcceleration(rl.NewVector3(100, 100, 100))
	b.AddTorque(rl.NewVector3(5, 5, 5))
	for i := 0; i < 10; i++ {
		w.Step(dt)
	}

	assert.Equal(t, rl.NewVector3(1, 2, 3), b.Position)
	assert.Equal(t, rl.Vector3Zero(), b.Velocity)
}

func TestMoveRotationComposesYaw(t *testing.T) {
	w := newZeroGravityWorld()
	b := NewBody(rl.Vector3Zero(), rl.NewVector3(1, 1, 1), 1)
	w.AddBody(b)

	quarter := rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), rl.Pi/2)
	b.MoveRotation(quarter)
	w.Step(dt)

	// Forward (+Z) rotated 90° about Y lands on +X.
	fwd := b.Forward()
	assert.InDelta(t, 1, fwd.X, 1e-5)
	assert.InDelta(t, 0, fwd.Z, 1e-5)
}

func TestAngularVelocityIntegration(t *testing.T) {
	w := newZeroGravityWorld()
	b := NewBody(rl.Vector3Zero(), rl.NewVector3(1, 1, 1), 1)
	w.AddBody(b)

	// Half a turn per second about Y; after one second forward flips sign.
	b.SetAngularVelocity(rl.NewVector3(0, rl.Pi, 0))
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	fwd := b.Forward()
	assert.InDelta(t, -1, fwd.Z, 1e-2)
}

func TestLocalVelocityDecomposition(t *testing.T) {
	b := NewBody(rl.Vector3Zero(), rl.NewVector3(1, 1, 1), 1)
	// Yaw 90°: local forward is world +X.
	b.Rotation = rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), rl.Pi/2)
	b.SetVelocity(rl.NewVector3(4, 0, 0))

	local := b.LocalVelocity()
	assert.InDelta(t, 4, local.Z, 1e-4)
	assert.InDelta(t, 0, local.X, 1e-4)
}

func TestCollisionPushesDynamicOutOfStatic(t *testing.T) {
	w := newZeroGravityWorld()
	slab := NewStaticBody(rl.NewVector3(0, -0.5, 0), rl.NewVector3(20, 1, 20))
	w.AddBody(slab)
	b := NewBody(rl.NewVector3(0, 0.3, 0), rl.NewVector3(1, 1, 1), 1) // bottom at -0.2, inside slab
	b.SetVelocity(rl.NewVector3(0, -1, 0))
	w.AddBody(b)

	w.Step(dt)

	// Pushed up so the AABBs just touch, vertical velocity killed.
	assert.GreaterOrEqual(t, b.Position.Y, float32(0.5)-1e-4)
	assert.Equal(t, float32(0), b.Velocity.Y)
}

func TestRaycastHitsClosestBody(t *testing.T) {
	w := NewWorld()
	far := NewStaticBody(rl.NewVector3(0, -10, 0), rl.NewVector3(4, 1, 4))
	near := NewStaticBody(rl.NewVector3(0, -2, 0), rl.NewVector3(4, 1, 4))
	w.AddBody(far)
	w.AddBody(near)

	hit, ok := w.Raycast(rl.NewVector3(0, 0, 0), rl.NewVector3(0, -1, 0), 20, nil)
	require.True(t, ok)
	assert.Same(t, near, hit.Body)
	assert.InDelta(t, 1.5, hit.Distance, 1e-4) // near's top face is at y=-1.5
	assert.InDelta(t, -1.5, hit.Point.Y, 1e-4)
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewStaticBody(rl.NewVector3(0, -5, 0), rl.NewVector3(4, 1, 4)))

	_, ok := w.Raycast(rl.Vector3Zero(), rl.NewVector3(0, -1, 0), 2, nil)
	assert.False(t, ok)
}

func TestRaycastSkipsTriggersAndIgnored(t *testing.T) {
	w := NewWorld()
	zone := NewStaticBody(rl.NewVector3(0, -1, 0), rl.NewVector3(4, 1, 4))
	zone.Trigger = true
	w.AddBody(zone)
	self := NewBody(rl.NewVector3(0, -3, 0), rl.NewVector3(1, 1, 1), 1)
	w.AddBody(self)

	_, ok := w.Raycast(rl.Vector3Zero(), rl.NewVector3(0, -1, 0), 20, self)
	assert.False(t, ok, "trigger and ignored body should both be skipped")

	hit, ok := w.Raycast(rl.Vector3Zero(), rl.NewVector3(0, -1, 0), 20, nil)
	require.True(t, ok)
	assert.Same(t, self, hit.Body)
}

func TestRaycastFromInsideBoxReportsZeroDistance(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewStaticBody(rl.Vector3Zero(), rl.NewVector3(4, 4, 4)))

	hit, ok := w.Raycast(rl.Vector3Zero(), rl.NewVector3(0, -1, 0), 10, nil)
	require.True(t, ok)
	assert.Equal(t, float32(0), hit.Distance)
}
