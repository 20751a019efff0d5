package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World holds a set of bodies and runs a simple 3D physics step: queued forces and
// torques, gravity, pose integration, and AABB collision against other bodies.
type World struct {
	Gravity rl.Vector3
	Bodies  []*Body
}

// NewWorld returns a new physics world with default gravity (0, -9.81, 0).
// The scene is Y-up; "down" is -Y.
func NewWorld() *World {
	return &World{
		Gravity: rl.NewVector3(0, -9.81, 0),
	}
}

// SetGravity sets the gravity vector (e.g. [0, -9.81, 0] for down in -Y).
func (w *World) SetGravity(g rl.Vector3) {
	w.Gravity = g
}

// AddBody appends a body to the world. Order is preserved for syncing with scene objects.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// bodyAABB returns the AABB for a body (center position, half extents from scale).
// Rotation is ignored for collision: arcade bodies are boxy enough that axis-aligned
// extents hold up, and it keeps resolution cheap.
func bodyAABB(b *Body) rl.BoundingBox {
	sx, sy, sz := b.Scale.X, b.Scale.Y, b.Scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	half := rl.NewVector3(sx*0.5, sy*0.5, sz*0.5)
	return rl.NewBoundingBox(
		rl.NewVector3(b.Position.X-half.X, b.Position.Y-half.Y, b.Position.Z-half.Z),
		rl.NewVector3(b.Position.X+half.X, b.Position.Y+half.Y, b.Position.Z+half.Z),
	)
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the
// minimum penetration. If no overlap, returns (0, -1).
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: apply queued rotations, integrate
// forces/torques and gravity, integrate poses, then resolve AABB collisions.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		if b.hasSpin {
			b.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(b.Rotation, b.pendingSpin))
		}
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(rl.Vector3Add(b.accel, w.Gravity), dt))
		b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, rl.Vector3Scale(b.angAccel, dt))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
		integrateSpin(b, dt)
		b.clearStep()
	}
	w.resolveCollisions()
}

// integrateSpin rotates the body by its angular velocity over dt (axis-angle form).
func integrateSpin(b *Body, dt float32) {
	speed := rl.Vector3Length(b.AngularVelocity)
	if speed == 0 {
		return
	}
	axis := rl.Vector3Scale(b.AngularVelocity, 1/speed)
	delta := rl.QuaternionFromAxisAngle(axis, speed*dt)
	b.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(delta, b.Rotation))
}

// resolveCollisions pushes overlapping AABB pairs apart along the minimum penetration
// axis and zeroes velocity along that axis. Static bodies don't move; triggers are skipped.
func (w *World) resolveCollisions() {
	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		if bi.Trigger {
			continue
		}
		boxI := bodyAABB(bi)
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bj.Trigger || (bi.Static && bj.Static) {
				continue
			}
			boxJ := bodyAABB(bj)
			if !rl.CheckCollisionBoxes(boxI, boxJ) {
				continue
			}
			depth, axis := penetrationAxis(boxI, boxJ)
			if axis < 0 {
				continue
			}
			totalMass := bi.Mass + bj.Mass
			if bi.Static {
				totalMass = bj.Mass
			}
			if bj.Static {
				totalMass = bi.Mass
			}
			var moveI, moveJ float32
			switch {
			case bi.Static:
				moveJ = depth
			case bj.Static:
				moveI = -depth
			default:
				moveI = -depth * (bj.Mass / totalMass)
				moveJ = depth * (bi.Mass / totalMass)
			}
			// bi below/left of bj means bi moves negative along the axis; flip when not.
			if axisCenter(bi, axis) > axisCenter(bj, axis) {
				moveI, moveJ = -moveI, -moveJ
			}
			applyPush(bi, axis, moveI)
			applyPush(bj, axis, moveJ)
			boxI = bodyAABB(bi) // update for next pair
		}
	}
}

func axisCenter(b *Body, axis int) float32 {
	switch axis {
	case 0:
		return b.Position.X
	case 1:
		return b.Position.Y
	default:
		return b.Position.Z
	}
}

// applyPush moves a body along one axis and kills its velocity on that axis.
func applyPush(b *Body, axis int, amount float32) {
	if b.Static || amount == 0 {
		return
	}
	switch axis {
	case 0:
		b.Position.X += amount
		b.Velocity.X = 0
	case 1:
		b.Position.Y += amount
		b.Velocity.Y = 0
	case 2:
		b.Position.Z += amount
		b.Velocity.Z = 0
	}
}
