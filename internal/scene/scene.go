package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"arcade-drive/internal/physics"
	"arcade-drive/internal/track"
)

const (
	gridExtent     = 60
	gridMinorStep  = 2
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// World colors. The chassis gets a strong hue so it reads against the arena.
var (
	groundColor   = rl.NewColor(52, 64, 52, 255)
	obstacleColor = rl.NewColor(130, 130, 140, 255)
	chassisColor  = rl.NewColor(200, 60, 50, 255)
)

// Scene renders the drive arena: ground slab, obstacle blocks, vehicle chassis,
// and an optional editor-style grid. The 3D camera pose is pushed in each frame
// from the follow camera via SetView.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	meshes      *meshSet
}

// New returns a scene with a perspective camera looking at the origin.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 60°.
func New() *Scene {
	s := &Scene{meshes: newMeshSet()}
	s.Camera.Position = rl.NewVector3(10, 10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// SetGridVisible sets whether the grid overlay is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetView points the 3D camera at the given pose: position is taken directly,
// target is one unit along the rotation's forward axis.
func (s *Scene) SetView(position rl.Vector3, rotation rl.Quaternion) {
	forward := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, 1), rotation)
	s.Camera.Position = position
	s.Camera.Target = rl.Vector3Add(position, forward)
}

// Draw renders the world between BeginMode3D and EndMode3D. extra, when non-nil,
// runs inside 3D mode after the world (used for debug geometry like the ground ray).
func (s *Scene) Draw(layout track.Layout, chassis *physics.Body, extra func()) {
	s.meshes.setView(
		[3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z},
		[3]float32{0.5, 1, 0.5},
	)

	rl.BeginMode3D(s.Camera)
	if layout.Ground != nil {
		s.meshes.drawBox(layout.Ground.Position, layout.GroundSize, rl.QuaternionIdentity(), groundColor)
	}
	for _, b := range layout.Obstacles {
		s.meshes.drawBox(b.Position, b.Scale, b.Rotation, obstacleColor)
	}
	if chassis != nil {
		s.meshes.drawBox(chassis.Position, chassis.Scale, chassis.Rotation, chassisColor)
	}
	if s.GridVisible {
		drawGrid()
	}
	if extra != nil {
		extra()
	}
	rl.EndMode3D()
}

// drawGrid draws major/minor grid lines on the XZ plane, slightly above Y=0 so
// they don't z-fight the ground slab.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	const y = 0.02
	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
