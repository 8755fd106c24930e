package world

import (
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	frustumNear = 0.1
	frustumFar  = 1000.0
)

// Frustum is the six clip planes of a camera, used to skip drawing objects
// that are off screen.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane is ax + by + cz + d = 0 with a unit normal pointing inside.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

func (p Plane) signedDistance(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, v) + p.Distance
}

// ExtractFrustum builds the planes from the camera and the viewport aspect
// ratio (Gribb/Hartmann). It only needs raymath, so it works without a window.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	if aspect <= 0 {
		aspect = 1
	}
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraOrthographic {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	} else {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	}
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	w := rows[3]

	var f Frustum
	for i := 0; i < 3; i++ {
		r := rows[i]
		f.planes[2*i] = planeFrom(w, r, 1)
		f.planes[2*i+1] = planeFrom(w, r, -1)
	}
	return f
}

// planeFrom combines the w row with sign*r and normalizes the result.
func planeFrom(w, r [4]float32, sign float32) Plane {
	p := Plane{
		Normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		Distance: w[3] + sign*r[3],
	}
	length := rl.Vector3Length(p.Normal)
	if length > 0 {
		p.Normal = rl.Vector3Scale(p.Normal, 1/length)
		p.Distance /= length
	}
	return p
}

func (f Frustum) ContainsPoint(p rl.Vector3) bool {
	return f.ContainsSphere(p, 0)
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsAABB tests the box corner furthest along each plane normal. It can
// report a box near a frustum edge as visible, never the other way round.
func (f Frustum) ContainsAABB(box physics.AABB) bool {
	for _, p := range f.planes {
		v := box.Min
		if p.Normal.X >= 0 {
			v.X = box.Max.X
		}
		if p.Normal.Y >= 0 {
			v.Y = box.Max.Y
		}
		if p.Normal.Z >= 0 {
			v.Z = box.Max.Z
		}
		if p.signedDistance(v) < 0 {
			return false
		}
	}
	return true
}
