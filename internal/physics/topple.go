package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ToppleState is the phase of a toppleable prop.
type ToppleState uint8

const (
	Upright ToppleState = iota
	Falling
	Settled
)

func (s ToppleState) String() string {
	switch s {
	case Upright:
		return "upright"
	case Falling:
		return "falling"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Topple tracks a prop that falls over once when hit hard enough.
type Topple struct {
	State ToppleState
	Angle float32       // radians fallen so far, never above TerminalFallAngle
	Axis  rl.Vector3    // horizontal world axis of the fall
	Rest  rl.Quaternion // orientation when the fall started
}

// TryTrigger starts the fall of prop if it is upright and the impactor is
// fast enough. The prop tips away from the impactor, about the horizontal
// axis perpendicular to the line between them. Hits with no horizontal
// component never trigger.
func (t *Topple) TryTrigger(prop *RigidBody, impactorPos, impactorVel rl.Vector3, cfg Config) bool {
	if t.State != Upright {
		return false
	}
	speedSq := rl.Vector3LengthSqr(impactorVel)
	if speedSq <= cfg.MinImpactSpeedSq {
		return false
	}

	dir := horizontal(rl.Vector3Subtract(prop.Position, impactorPos))
	if rl.Vector3LengthSqr(dir) == 0 {
		return false
	}
	dir = rl.Vector3Normalize(dir)

	t.Axis = rl.Vector3Normalize(rl.Vector3CrossProduct(worldUp, dir))
	t.Rest = prop.Orientation
	t.Angle = 0
	t.State = Falling

	prop.AngularVelocity = rl.Vector3Add(prop.AngularVelocity,
		rl.Vector3Scale(t.Axis, cfg.FallStrength*sqrtf(speedSq)))
	return true
}

// Advance rotates a falling prop by one step. It returns true on the step
// the prop settles.
func (t *Topple) Advance(prop *RigidBody, cfg Config, dt float32) bool {
	if t.State != Falling || dt <= 0 {
		return false
	}

	speed := rl.Vector3Length(prop.AngularVelocity)
	if speed < cfg.MinFallSpeed {
		speed = cfg.MinFallSpeed
	}
	step := speed * dt

	if t.Angle+step >= TerminalFallAngle {
		t.settle(prop)
		return true
	}

	t.Angle += step
	prop.Orientation = rl.QuaternionNormalize(
		rl.QuaternionMultiply(rl.QuaternionFromAxisAngle(t.Axis, t.Angle), t.Rest))
	prop.AngularVelocity = rl.Vector3Scale(prop.AngularVelocity, cfg.FallDecay)
	return false
}

// settle locks the prop at exactly the terminal angle and rests its new,
// wider bounding box on the ground.
func (t *Topple) settle(prop *RigidBody) {
	t.Angle = TerminalFallAngle
	t.State = Settled
	prop.Orientation = rl.QuaternionNormalize(
		rl.QuaternionMultiply(rl.QuaternionFromAxisAngle(t.Axis, TerminalFallAngle), t.Rest))
	prop.AngularVelocity = rl.Vector3{}
	prop.refreshExtents()
	prop.Position.Y = prop.GroundY + prop.HalfExtents.Y
	if prop.Velocity.Y < 0 {
		prop.Velocity.Y = 0
	}
}
