package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ApplyGroundContact keeps a dynamic body on or above its ground plane. A
// body that sinks below is snapped back; a fast downward velocity bounces,
// a slow one is zeroed. Grounded bodies lose horizontal and angular speed to
// friction. Returns whether the body touches the ground.
func ApplyGroundContact(b *RigidBody, cfg Config, dt float32) bool {
	if !b.IsDynamic() {
		return false
	}

	bottom := b.Position.Y - b.HalfExtents.Y
	if bottom > b.GroundY+cfg.GroundContactEpsilon {
		return false
	}

	if bottom < b.GroundY {
		b.Position.Y = b.GroundY + b.HalfExtents.Y
		switch {
		case b.Velocity.Y < -cfg.GroundSettleSpeed:
			b.Velocity.Y = -b.Velocity.Y * cfg.GroundBounce
		case b.Velocity.Y < 0:
			b.Velocity.Y = 0
		}
	}

	f := frameScaled(cfg.GroundFriction, dt)
	b.Velocity.X *= f
	b.Velocity.Z *= f
	if !b.rotationOwnedByTopple() {
		b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, f)
	}
	return true
}
