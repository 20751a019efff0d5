package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// TickRate is the fixed physics cadence; FixedDt is the timestep handed to tick.
const TickRate = 60
const FixedDt float32 = 1.0 / TickRate

// maxFrameTime caps how much simulation time one rendered frame may owe, so a
// stall (window drag, debugger pause) doesn't trigger a tick avalanche.
const maxFrameTime float32 = 0.25

// Run starts the window and main loop with two cadences: tick runs zero or more
// times per frame on the fixed timestep (drained from an accumulator), then
// frame runs once with the variable render delta, then draw renders. Physics
// always completes before frame, so camera code reads the freshest pose.
// Window is 1600x900; close via ESC or the window button.
func Run(title string, tick func(dt float32), frame func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(1600, 900, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(144)

	var accumulator float32
	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		if dt > maxFrameTime {
			dt = maxFrameTime
		}
		accumulator += dt
		for accumulator >= FixedDt {
			tick(FixedDt)
			accumulator -= FixedDt
		}
		frame(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
