package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABB creates an AABB from a center point and half extents.
func NewAABB(center, half rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Overlaps reports strict overlap; boxes that only touch do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Contact is the narrow phase result for one overlapping pair. Normal points
// from A toward B.
type Contact struct {
	A, B   Handle
	Normal rl.Vector3
	Depth  float32
}

// CollideAABB tests the world AABBs of a and b. Orientation is ignored. The
// contact normal lies on the axis of least overlap; ties prefer X, then Y,
// then Z. Coincident centers produce a +Y normal.
func CollideAABB(a, b *RigidBody) (Contact, bool) {
	d := rl.Vector3Subtract(b.Position, a.Position)

	ox := a.HalfExtents.X + b.HalfExtents.X - absf(d.X)
	if ox <= 0 {
		return Contact{}, false
	}
	oy := a.HalfExtents.Y + b.HalfExtents.Y - absf(d.Y)
	if oy <= 0 {
		return Contact{}, false
	}
	oz := a.HalfExtents.Z + b.HalfExtents.Z - absf(d.Z)
	if oz <= 0 {
		return Contact{}, false
	}

	var c Contact
	switch {
	case ox <= oy && ox <= oz:
		c.Depth = ox
		c.Normal = rl.Vector3{X: sign(d.X)}
	case oy <= oz:
		c.Depth = oy
		c.Normal = rl.Vector3{Y: sign(d.Y)}
	default:
		c.Depth = oz
		c.Normal = rl.Vector3{Z: sign(d.Z)}
	}
	if isZero(c.Normal) {
		c.Normal = worldUp
	}
	return c, true
}
