package vehicle

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// Tuning holds the arcade handling parameters for one vehicle. All values are
// positive scalars except CenterOfMassYOffset (usually negative, to lower the
// roll center). Tuning is immutable during a run; swap presets between runs.
type Tuning struct {
	Name                    string  `yaml:"name,omitempty"`
	MaxForwardSpeed         float32 `yaml:"max_forward_speed"`          // m/s
	MaxReverseSpeed         float32 `yaml:"max_reverse_speed"`          // m/s
	Acceleration            float32 `yaml:"acceleration"`               // m/s² at full throttle error
	BrakeStrength           float32 `yaml:"brake_strength"`             // m/s²
	SteerRate               float32 `yaml:"steer_rate"`                 // deg/s at full authority
	HighSpeedSteerReduction float32 `yaml:"high_speed_steer_reduction"` // 0..1
	LateralFriction         float32 `yaml:"lateral_friction"`           // 1/s damping on side slip
	Downforce               float32 `yaml:"downforce"`                  // m/s² at top speed
	ExtraGravity            float32 `yaml:"extra_gravity"`              // multiplier on world gravity when airborne
	GroundRayLength         float32 `yaml:"ground_ray_length"`          // m
	CenterOfMassYOffset     float32 `yaml:"center_of_mass_y_offset"`   // m
}

// DefaultTuning returns a mid-weight arcade car setup.
func DefaultTuning() Tuning {
	return Tuning{
		Name:                    "default",
		MaxForwardSpeed:         30,
		MaxReverseSpeed:         12,
		Acceleration:            25,
		BrakeStrength:           35,
		SteerRate:               120,
		HighSpeedSteerReduction: 0.6,
		LateralFriction:         6,
		Downforce:               10,
		ExtraGravity:            2.5,
		GroundRayLength:         0.7,
		CenterOfMassYOffset:     -0.4,
	}
}

// LoadTuning reads a preset YAML file (e.g. assets/vehicles/truck.yaml).
// Fields absent from the file keep their DefaultTuning values, so presets only
// need to name what they change.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning preset: %w", err)
	}
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning preset %s: %w", path, err)
	}
	return t, nil
}

// Clone returns a deep copy of the tuning, for deriving a per-run variant
// without touching the loaded preset.
func (t Tuning) Clone() Tuning {
	var out Tuning
	_ = copier.Copy(&out, &t)
	return out
}
