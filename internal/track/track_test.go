package track

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade-drive/internal/physics"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate(physics.NewWorld(), DefaultOptions())
	b := Generate(physics.NewWorld(), DefaultOptions())

	require.Equal(t, len(a.Obstacles), len(b.Obstacles))
	for i := range a.Obstacles {
		assert.Equal(t, a.Obstacles[i].Position, b.Obstacles[i].Position)
		assert.Equal(t, a.Obstacles[i].Scale, b.Obstacles[i].Scale)
	}
}

func TestGenerateGroundSlab(t *testing.T) {
	w := physics.NewWorld()
	layout := Generate(w, DefaultOptions())

	require.NotNil(t, layout.Ground)
	assert.True(t, layout.Ground.Static)
	// Top face sits at Y=0 so the grid and spawn height line up.
	top := layout.Ground.Position.Y + layout.Ground.Scale.Y/2
	assert.InDelta(t, 0, top, 1e-5)
	assert.Equal(t, rl.NewVector3(120, 1, 120), layout.GroundSize)
}

func TestGenerateKeepsSpawnClear(t *testing.T) {
	opts := DefaultOptions()
	layout := Generate(physics.NewWorld(), opts)

	for _, b := range layout.Obstacles {
		dist := math32.Sqrt(b.Position.X*b.Position.X + b.Position.Z*b.Position.Z)
		assert.GreaterOrEqual(t, dist, opts.SpawnRadius,
			"obstacle inside the spawn circle at %v", b.Position)
	}
}

func TestGenerateAddsAllBodiesToWorld(t *testing.T) {
	w := physics.NewWorld()
	layout := Generate(w, DefaultOptions())

	assert.Len(t, w.Bodies, 1+len(layout.Obstacles))
	for _, b := range layout.Obstacles {
		assert.True(t, b.Static)
		assert.Greater(t, b.Scale.Y, float32(0))
		assert.LessOrEqual(t, b.Scale.Y, DefaultOptions().MaxHeight+1e-5)
	}
}

func TestGenerateProducesSomeObstacles(t *testing.T) {
	layout := Generate(physics.NewWorld(), DefaultOptions())
	assert.NotEmpty(t, layout.Obstacles, "default options should scatter at least one block")
}
