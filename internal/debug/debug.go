package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arcade-drive/internal/vehicle"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 15
)

// Debug holds runtime overlays: FPS, heap, and vehicle telemetry (speed and
// grounded flag), plus the ground-check ray drawn into the 3D scene. All
// overlays are off by default.
type Debug struct {
	ShowFPS       bool
	ShowMemAlloc  bool
	ShowTelemetry bool
	ShowGroundRay bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastTeleText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Toggle flips all overlays together (bound to a single debug key in the game).
func (d *Debug) Toggle() {
	on := !d.ShowFPS
	d.ShowFPS = on
	d.ShowMemAlloc = on
	d.ShowTelemetry = on
	d.ShowGroundRay = on
}

// DrawRay draws the vehicle's ground-check ray inside 3D mode: yellow when the
// last tick was grounded, red when airborne. Call from the scene's extra hook.
func (d *Debug) DrawRay(dyn *vehicle.Dynamics) {
	if !d.ShowGroundRay || dyn == nil {
		return
	}
	origin, dir, length := dyn.GroundRay()
	end := rl.Vector3Add(origin, rl.Vector3Scale(dir, length))
	color := rl.Red
	if dyn.Grounded() {
		color = rl.Yellow
	}
	rl.DrawLine3D(origin, end, color)
	rl.DrawSphere(end, 0.05, color)
}

// Draw renders the 2D overlays. Call after the 3D scene in the draw loop.
// Text is recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(dyn *vehicle.Dynamics) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.lastFpsText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowTelemetry && dyn != nil {
		if update || d.lastTeleText == "" {
			state := "air"
			if dyn.Grounded() {
				state = "ground"
			}
			kmh := dyn.Speed() * 3.6
			d.lastTeleText = fmt.Sprintf("%.0f km/h  [%s]", kmh, state)
		}
		drawRight(d.lastTeleText, screenW, y, rl.SkyBlue)
	}
}

// drawRight draws text right-aligned at the given baseline.
func drawRight(text string, screenW, y int32, color rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, color)
}
