package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit describes the closest body struck by a ray query.
type Hit struct {
	Body     *Body
	Distance float32
	Point    rl.Vector3
}

// Raycast casts a ray from origin along dir (need not be normalized) up to maxDist
// and returns the closest non-trigger body hit. ignore is skipped entirely (pass the
// querying body itself, or nil). ok is false when nothing is hit within maxDist.
func (w *World) Raycast(origin, dir rl.Vector3, maxDist float32, ignore *Body) (hit Hit, ok bool) {
	dir = rl.Vector3Normalize(dir)
	if rl.Vector3Length(dir) == 0 || maxDist <= 0 {
		return Hit{}, false
	}
	closest := maxDist
	for _, b := range w.Bodies {
		if b == ignore || b.Trigger {
			continue
		}
		d, intersects := rayAABB(origin, dir, bodyAABB(b))
		if intersects && d <= closest {
			closest = d
			hit = Hit{Body: b, Distance: d, Point: rl.Vector3Add(origin, rl.Vector3Scale(dir, d))}
			ok = true
		}
	}
	return hit, ok
}

// rayAABB is the slab test: intersect the ray with each axis slab and keep the
// overlapping parameter interval. Returns the entry distance (0 if origin is inside).
func rayAABB(origin, dir rl.Vector3, box rl.BoundingBox) (float32, bool) {
	tMin := float32(0)
	tMax := float32(math32.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		o, d := component(origin, axis), component(dir, axis)
		lo, hi := component(box.Min, axis), component(box.Max, axis)
		if math32.Abs(d) < 1e-8 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
