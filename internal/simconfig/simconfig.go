package simconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the sim config file, relative to the process working directory.
const ConfigPath = "config/sim.json"

// Prefs holds sim preferences (debug overlays, grid, vehicle preset). Persisted
// across runs. Tuning values themselves live in the preset YAML files, not here.
type Prefs struct {
	ShowOverlays  bool   `json:"show_overlays"`
	GridVisible   bool   `json:"grid_visible"`
	VehiclePreset string `json:"vehicle_preset,omitempty"`
}

// Default returns default preferences (overlays off, grid on, default car).
func Default() Prefs {
	return Prefs{
		ShowOverlays:  false,
		GridVisible:   true,
		VehiclePreset: "car",
	}
}

// Load reads preferences from config/sim.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/sim.json, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
