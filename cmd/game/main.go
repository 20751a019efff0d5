package main

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arcade-drive/internal/debug"
	"arcade-drive/internal/followcam"
	"arcade-drive/internal/graphics"
	"arcade-drive/internal/input"
	"arcade-drive/internal/logger"
	"arcade-drive/internal/physics"
	"arcade-drive/internal/scene"
	"arcade-drive/internal/simconfig"
	"arcade-drive/internal/track"
	"arcade-drive/internal/vehicle"
)

// cameraOffset keeps the camera behind-and-above the vehicle in its local frame.
var cameraOffset = rl.NewVector3(0, 3, -8)

const cameraSmoothTime = 0.35

func main() {
	log := logger.New()
	defer log.Close()

	prefs, _ := simconfig.Load()

	world := physics.NewWorld()
	layout := track.Generate(world, track.DefaultOptions())

	tuning := loadPreset(prefs.VehiclePreset, log)

	chassis := physics.NewBody(rl.NewVector3(0, 1, 0), rl.NewVector3(1.8, 1.1, 4.2), 1200)
	world.AddBody(chassis)

	dyn, err := vehicle.NewDynamics(world, chassis, tuning)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cam := followcam.New(cameraOffset, cameraSmoothTime)
	cam.SetTarget(chassis)
	cam.SnapTo()

	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)

	dbg := debug.New()
	if prefs.ShowOverlays {
		dbg.Toggle()
	}

	// Input strategy is decided on the first tick, once the window (and with it
	// gamepad enumeration) exists: pad 0 when connected, keyboard otherwise.
	var src input.Source
	pad := input.NewGamepad(0)

	tick := func(dt float32) {
		if src == nil {
			if pad.Available() {
				src = pad
				log.Log("input: gamepad 0")
			} else {
				src = input.NewKeyboard()
				log.Log("input: keyboard")
			}
		}
		frame := src.Poll()
		if frame.Reset {
			log.Log("vehicle reset")
		}
		dyn.SetInput(frame)
		dyn.Tick(dt)
		world.Step(dt)
	}

	frame := func(dt float32) {
		if rl.IsKeyPressed(rl.KeyF3) {
			dbg.Toggle()
			prefs.ShowOverlays = dbg.ShowFPS
			_ = simconfig.Save(prefs)
		}
		if rl.IsKeyPressed(rl.KeyG) {
			scn.SetGridVisible(!scn.GridVisible)
			prefs.GridVisible = scn.GridVisible
			_ = simconfig.Save(prefs)
		}
		cam.Update(dt)
		scn.SetView(cam.Position(), cam.Rotation())
	}

	draw := func() {
		scn.Draw(layout, chassis, func() { dbg.DrawRay(dyn) })
		dbg.Draw(dyn)
	}

	graphics.Run("arcade drive", tick, frame, draw)
}

// loadPreset loads assets/vehicles/<name>.yaml, falling back to defaults when
// the preset is missing or malformed. The run gets a clone of the loaded
// preset, so in-session tuning edits can never leak back into the file-backed
// values.
func loadPreset(name string, log *logger.Logger) vehicle.Tuning {
	if name == "" {
		return vehicle.DefaultTuning()
	}
	path := filepath.Join("assets", "vehicles", name+".yaml")
	t, err := vehicle.LoadTuning(path)
	if err != nil {
		log.Logf("preset %q: %v (using defaults)", name, err)
		return vehicle.DefaultTuning()
	}
	log.Logf("preset %q loaded from %s", t.Name, path)
	return t.Clone()
}
