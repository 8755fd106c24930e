package physics

import "math"

// Broad phase names accepted by Config.BroadPhase.
const (
	BroadPhaseAllPairs = "allpairs"
	BroadPhaseGrid     = "grid"
)

// TerminalFallAngle is the angle at which a toppling prop comes to rest.
const TerminalFallAngle = float32(math.Pi / 2)

// Config holds every tunable constant of the simulation. Values are in SI
// units (meters, seconds, kilograms) unless noted otherwise.
type Config struct {
	// Integration
	Gravity        float32 // signed, negative is down
	LinearDrag     float32 // drag force = -v * LinearDrag / mass
	AngularDamping float32 // per-step multiplier on angular velocity

	// Contacts
	Restitution     float32
	Friction        float32
	FrictionEpsilon float32 // tangential speed below this gets no friction impulse
	Slop            float32 // penetration left in place to avoid jitter
	Iterations      int
	BroadPhase      string
	GridCellSize    float32

	// Ground plane
	GroundBounce         float32 // fraction of downward speed kept on bounce
	GroundSettleSpeed    float32 // downward speed below which a body stops dead
	GroundFriction       float32 // per-frame multiplier at 60 Hz
	GroundContactEpsilon float32

	// Vehicle
	SteeringGain    float32
	BrakeForce      float32
	BrakeMinSpeed   float32
	BoostMultiplier float32

	// Toppling props
	MinImpactSpeedSq float32
	FallStrength     float32
	FallDecay        float32 // per-step multiplier on fall speed
	MinFallSpeed     float32 // rad/s floor so a fall always completes
}

// DefaultConfig returns the tuning used by the farm scene.
func DefaultConfig() Config {
	return Config{
		Gravity:        -9.8,
		LinearDrag:     0.5,
		AngularDamping: 0.95,

		Restitution:     0.1,
		Friction:        0.7,
		FrictionEpsilon: 1e-4,
		Slop:            0.01,
		Iterations:      3,
		BroadPhase:      BroadPhaseAllPairs,
		GridCellSize:    5.0,

		GroundBounce:         0.3,
		GroundSettleSpeed:    0.5,
		GroundFriction:       0.98,
		GroundContactEpsilon: 0.01,

		SteeringGain:    1.0,
		BrakeForce:      150,
		BrakeMinSpeed:   0.1,
		BoostMultiplier: 1.5,

		MinImpactSpeedSq: 0.1,
		FallStrength:     1.0,
		FallDecay:        0.98,
		MinFallSpeed:     1.2,
	}
}

// NewBroadPhase returns the broad phase named by cfg.BroadPhase, falling
// back to all-pairs for unknown names.
func (cfg Config) NewBroadPhase() BroadPhase {
	switch cfg.BroadPhase {
	case BroadPhaseGrid:
		return NewSpatialGrid(cfg.GridCellSize)
	default:
		return AllPairs{}
	}
}
