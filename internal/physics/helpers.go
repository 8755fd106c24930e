package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	worldUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
	localForward = rl.Vector3{X: 0, Y: 0, Z: 1}
)

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func isZero(v rl.Vector3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// horizontal drops the vertical component.
func horizontal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Z: v.Z}
}

// frameScaled converts a per-frame multiplier tuned at 60 Hz into the
// multiplier for a step of dt seconds.
func frameScaled(factor, dt float32) float32 {
	return clamp(1-(1-factor)*dt*60, 0, 1)
}

// normalizedOrientation maps the zero quaternion to identity so callers can
// leave orientation unset.
func normalizedOrientation(q rl.Quaternion) rl.Quaternion {
	if q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0 {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionNormalize(q)
}

// rotateWorld applies a world-space rotation of angle radians about axis to q.
func rotateWorld(q rl.Quaternion, axis rl.Vector3, angle float32) rl.Quaternion {
	delta := rl.QuaternionFromAxisAngle(axis, angle)
	return rl.QuaternionNormalize(rl.QuaternionMultiply(delta, q))
}
