package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// DriveInput is what a vehicle controller decides for one frame.
type DriveInput struct {
	EngineForce    float32 // along the vehicle's forward axis, negative reverses
	SteeringTorque float32 // about world up, positive turns left
	Brake          bool
	Boost          bool
}

// ApplyDrive pushes a vehicle body according to in. Engine force goes into
// the force accumulator; steering is applied straight to the yaw rate.
// Bodies that are not vehicles are left untouched.
func ApplyDrive(b *RigidBody, in DriveInput, cfg Config, dt float32) {
	if !b.IsVehicle() || dt <= 0 {
		return
	}

	engine := in.EngineForce
	if in.Boost {
		engine *= cfg.BoostMultiplier
	}
	if engine != 0 {
		b.AddForce(rl.Vector3Scale(b.Forward(), engine))
	}

	b.AngularVelocity.Y += in.SteeringTorque * cfg.SteeringGain * dt

	if in.Brake {
		applyBrake(b, cfg, dt)
	}
}

// applyBrake opposes horizontal motion. Below the speed one brake step would
// remove, the horizontal velocity is zeroed so the vehicle cannot creep or
// rock back and forth.
func applyBrake(b *RigidBody, cfg Config, dt float32) {
	flat := horizontal(b.Velocity)
	speed := rl.Vector3Length(flat)

	creep := cfg.BrakeMinSpeed
	if perStep := cfg.BrakeForce * b.InverseMass * dt; perStep > creep {
		creep = perStep
	}
	if speed <= creep {
		b.Velocity.X = 0
		b.Velocity.Z = 0
		return
	}
	b.AddForce(rl.Vector3Scale(flat, -cfg.BrakeForce/speed))
}
