package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// OBB represents an oriented bounding box.
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size and orientation.
func NewOBB(center, size rl.Vector3, orientation rl.Quaternion) OBB {
	q := normalizedOrientation(orientation)
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes: [3]rl.Vector3{
			rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, q),
			rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, q),
			rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, q),
		},
	}
}

// EnclosingHalfExtents returns the half size of the smallest world AABB that
// contains the box.
func (o OBB) EnclosingHalfExtents() rl.Vector3 {
	var h rl.Vector3
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
	for i, axis := range o.Axes {
		h.X += absf(axis.X) * half[i]
		h.Y += absf(axis.Y) * half[i]
		h.Z += absf(axis.Z) * half[i]
	}
	return h
}

func (o OBB) Bounds() AABB {
	return NewAABB(o.Center, o.EnclosingHalfExtents())
}

// Corners returns the eight world-space corners, used for debug drawing.
func (o OBB) Corners() [8]rl.Vector3 {
	var out [8]rl.Vector3
	for i := range out {
		p := o.Center
		for axis := 0; axis < 3; axis++ {
			s := float32(-1)
			if i&(1<<axis) != 0 {
				s = 1
			}
			var h float32
			switch axis {
			case 0:
				h = o.HalfSize.X
			case 1:
				h = o.HalfSize.Y
			default:
				h = o.HalfSize.Z
			}
			p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[axis], s*h))
		}
		out[i] = p
	}
	return out
}

// halfExtentsFor derives AABB half extents from local size and orientation.
func halfExtentsFor(size rl.Vector3, orientation rl.Quaternion) rl.Vector3 {
	return NewOBB(rl.Vector3{}, size, orientation).EnclosingHalfExtents()
}
