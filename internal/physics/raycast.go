package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     Handle
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest body AABB hit by the ray within maxDistance.
// The body ignore (usually the caster itself) is skipped.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore Handle) (RaycastHit, bool) {
	if isZero(direction) {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := RaycastHit{Body: NoHandle, Distance: maxDistance}
	hit := false
	bodies := w.store.Bodies()
	for i := range bodies {
		if Handle(i) == ignore || !bodies[i].HasExtents() {
			continue
		}
		if h, ok := raycastBox(origin, direction, bodies[i].Bounds(), maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			closest.Body = Handle(i)
			hit = true
		}
	}
	return closest, hit
}

// raycastBox is a slab test; direction must be normalized.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}
	t := tmin
	if t < 0 {
		t = tmax // origin inside the box
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face that was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case absf(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
