// Package track lays out the drive arena: a flat ground slab plus a scatter of
// static obstacle blocks placed by seeded fractal noise, so jumps and collisions
// have something to happen against. A fixed seed gives a fixed layout.
package track

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"arcade-drive/internal/physics"
)

// Options controls arena generation. Extent is the half-size of the square
// ground slab on X/Z. Threshold in (0,1) sets obstacle density: cells whose
// noise sample exceeds it get a block. Seed == 0 means "pick a fixed default",
// never wall-clock, so layouts stay reproducible.
type Options struct {
	Extent      float32
	CellSize    float32
	Threshold   float32
	MaxHeight   float32
	SpawnRadius float32 // cells inside this radius around the origin stay clear
	Seed        int64

	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a medium arena: 120×120 m slab, blocks up to 4 m tall,
// a clear spawn circle, and noise shaped for loose clusters.
func DefaultOptions() Options {
	return Options{
		Extent:      60,
		CellSize:    6,
		Threshold:   0.62,
		MaxHeight:   4,
		SpawnRadius: 12,
		Seed:        1,
		Octaves:     3,
		Frequency:   0.35,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// Layout is a generated arena: the ground body, the obstacle bodies, and the
// slab dimensions for rendering.
type Layout struct {
	Ground     *physics.Body
	Obstacles  []*physics.Body
	GroundSize rl.Vector3
}

// groundThickness is the slab's Y extent; its top face sits at Y=0.
const groundThickness = 1.0

// Generate builds the arena and adds every body to the world.
func Generate(world *physics.World, opts Options) Layout {
	if opts.Extent <= 0 {
		opts.Extent = 60
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 6
	}
	if opts.Threshold <= 0 || opts.Threshold >= 1 {
		opts.Threshold = 0.62
	}
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = 4
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 3
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.35
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}

	size := rl.NewVector3(opts.Extent*2, groundThickness, opts.Extent*2)
	ground := physics.NewStaticBody(rl.NewVector3(0, -groundThickness/2, 0), size)
	world.AddBody(ground)

	layout := Layout{Ground: ground, GroundSize: size}

	cells := int(opts.Extent * 2 / opts.CellSize)
	start := -opts.Extent + opts.CellSize/2
	for zi := 0; zi < cells; zi++ {
		for xi := 0; xi < cells; xi++ {
			wx := start + float32(xi)*opts.CellSize
			wz := start + float32(zi)*opts.CellSize
			if math32.Sqrt(wx*wx+wz*wz) < opts.SpawnRadius {
				continue
			}
			n := fractalValueNoise2D(float32(xi)*opts.Frequency, float32(zi)*opts.Frequency,
				opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if n < opts.Threshold {
				continue
			}
			// Remap the over-threshold band to [0.2, 1] of MaxHeight so even
			// borderline cells produce a drivable bump.
			h := (0.2 + 0.8*(n-opts.Threshold)/(1-opts.Threshold)) * opts.MaxHeight
			block := physics.NewStaticBody(
				rl.NewVector3(wx, h/2, wz),
				rl.NewVector3(opts.CellSize*0.8, h, opts.CellSize*0.8),
			)
			world.AddBody(block)
			layout.Obstacles = append(layout.Obstacles, block)
		}
	}
	return layout
}

// fractalValueNoise2D layers smooth value noise with configurable octaves,
// lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := rl.Lerp(v00, v10, sx)
	ix1 := rl.Lerp(v01, v11, sx)
	return rl.Lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

// smoothStep is Perlin-style cubic easing: 3t² - 2t³.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
