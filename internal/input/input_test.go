package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampedForcesDocumentedRanges(t *testing.T) {
	f := Frame{Steer: 2.5, Throttle: -3, Brake: 9, Reset: true}.Clamped()

	assert.Equal(t, float32(1), f.Steer)
	assert.Equal(t, float32(-1), f.Throttle)
	assert.Equal(t, float32(1), f.Brake)
	assert.True(t, f.Reset)
}

func TestClampedKeepsInRangeValues(t *testing.T) {
	f := Frame{Steer: -0.4, Throttle: 0.7, Brake: 0.2}
	assert.Equal(t, f, f.Clamped())
}

func TestShapeSteerDeadzoneAndCurve(t *testing.T) {
	assert.Equal(t, float32(0), shapeSteer(0.05), "inside deadzone")
	assert.Equal(t, float32(0), shapeSteer(-0.09), "inside deadzone")

	// Curve preserves sign and full deflection, softens mid-range.
	assert.InDelta(t, 1, shapeSteer(1), 1e-5)
	assert.InDelta(t, -1, shapeSteer(-1), 1e-5)
	assert.Less(t, shapeSteer(0.5), float32(0.5))
	assert.Greater(t, shapeSteer(-0.5), float32(-0.5))
}
