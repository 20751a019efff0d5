package vehicle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsSane(t *testing.T) {
	d := DefaultTuning()
	assert.Greater(t, d.MaxForwardSpeed, float32(0))
	assert.Greater(t, d.MaxReverseSpeed, float32(0))
	assert.Greater(t, d.Acceleration, float32(0))
	assert.Greater(t, d.BrakeStrength, float32(0))
	assert.Greater(t, d.SteerRate, float32(0))
	assert.Greater(t, d.LateralFriction, float32(0))
	assert.Greater(t, d.Downforce, float32(0))
	assert.Greater(t, d.ExtraGravity, float32(0))
	assert.Greater(t, d.GroundRayLength, float32(0))
	assert.GreaterOrEqual(t, d.HighSpeedSteerReduction, float32(0))
	assert.LessOrEqual(t, d.HighSpeedSteerReduction, float32(1))
}

func TestLoadTuningFillsMissingFieldsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kart.yaml")
	yaml := "name: kart\nmax_forward_speed: 18\nsteer_rate: 200\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	got, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, "kart", got.Name)
	assert.Equal(t, float32(18), got.MaxForwardSpeed)
	assert.Equal(t, float32(200), got.SteerRate)
	// Unspecified fields keep their defaults.
	assert.Equal(t, DefaultTuning().BrakeStrength, got.BrakeStrength)
	assert.Equal(t, DefaultTuning().GroundRayLength, got.GroundRayLength)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTuningMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_forward_speed: [oops"), 0644))

	_, err := LoadTuning(path)
	assert.Error(t, err)
}

func TestCloneIsIndependentCopy(t *testing.T) {
	orig := DefaultTuning()
	clone := orig.Clone()
	assert.Equal(t, orig, clone)

	clone.MaxForwardSpeed = 99
	assert.NotEqual(t, orig.MaxForwardSpeed, clone.MaxForwardSpeed)
}
