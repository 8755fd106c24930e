package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Integrate advances one body by dt with semi-implicit Euler and clears its
// force and torque accumulators. Static bodies and non-positive steps are
// ignored.
func Integrate(b *RigidBody, cfg Config, dt float32) {
	if dt <= 0 || !b.IsDynamic() {
		return
	}

	b.AddForce(rl.Vector3{Y: cfg.Gravity * b.Mass})
	b.AddForce(rl.Vector3Scale(b.Velocity, -cfg.LinearDrag*b.InverseMass))

	accel := rl.Vector3Scale(b.Force, b.InverseMass)
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(accel, dt))
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))

	if !isZero(b.AngularVelocity) && !b.rotationOwnedByTopple() {
		speed := rl.Vector3Length(b.AngularVelocity)
		axis := rl.Vector3Scale(b.AngularVelocity, 1/speed)
		b.Orientation = rotateWorld(b.Orientation, axis, speed*dt)
		b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, cfg.AngularDamping)
	}

	b.Force = rl.Vector3{}
	b.Torque = rl.Vector3{}
}
