package components

import (
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// VehicleTuning holds the controller side of vehicle handling. Forces are in
// newtons, speeds in m/s.
type VehicleTuning struct {
	EngineForce     float32
	ReverseForce    float32
	MaxSpeed        float32
	SteerTorque     float32
	TurnSpeedRef    float32 // speed at which steering reaches full strength
	BoostMultiplier float32
}

func DefaultVehicleTuning() VehicleTuning {
	return VehicleTuning{
		EngineForce:     300,
		ReverseForce:    150,
		MaxSpeed:        20,
		SteerTorque:     6,
		TurnSpeedRef:    5,
		BoostMultiplier: 1.5,
	}
}

// DriveIntent is the raw player input for one frame.
type DriveIntent struct {
	Throttle bool
	Reverse  bool
	Left     bool
	Right    bool
	Brake    bool
	Boost    bool
}

// ComputeDrive turns player intent into physics input. Throttle is cut at
// the speed cap, which is raised while boosting. Reverse is capped at half
// the forward speed. Steering grows with speed and flips sign when rolling
// backwards, like a real car.
func ComputeDrive(in DriveIntent, forwardSpeed float32, tu VehicleTuning) physics.DriveInput {
	out := physics.DriveInput{
		Brake: in.Brake,
		Boost: in.Boost && in.Throttle,
	}

	speedCap := tu.MaxSpeed
	if out.Boost {
		speedCap *= tu.BoostMultiplier
	}
	switch {
	case in.Throttle && !in.Reverse:
		if forwardSpeed < speedCap {
			out.EngineForce = tu.EngineForce
		}
	case in.Reverse && !in.Throttle:
		if -forwardSpeed < tu.MaxSpeed/2 {
			out.EngineForce = -tu.ReverseForce
		}
	}

	var steer float32
	if in.Left {
		steer++
	}
	if in.Right {
		steer--
	}
	if steer != 0 && tu.TurnSpeedRef > 0 {
		authority := forwardSpeed / tu.TurnSpeedRef
		if authority > 1 {
			authority = 1
		} else if authority < -1 {
			authority = -1
		}
		out.SteeringTorque = steer * tu.SteerTorque * authority
	}
	return out
}

// ReadKeyboard polls raylib for the driving keys.
func ReadKeyboard() DriveIntent {
	return DriveIntent{
		Throttle: rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Reverse:  rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:     rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:    rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Brake:    rl.IsKeyDown(rl.KeySpace),
		Boost:    rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyB),
	}
}

// VehicleController feeds player input to the vehicle body on the same
// object. It needs a Rigidbody component next to it.
type VehicleController struct {
	engine.BaseComponent
	Tuning VehicleTuning
	Input  func() DriveIntent

	// Last values sent, shown on the HUD.
	Intent DriveIntent
	Drive  physics.DriveInput
	Err    error
}

func NewVehicleController(tuning VehicleTuning) *VehicleController {
	return &VehicleController{
		Tuning: tuning,
		Input:  ReadKeyboard,
	}
}

func (v *VehicleController) Update(deltaTime float32) {
	g := v.GetGameObject()
	if g == nil || v.Input == nil {
		return
	}
	rb := engine.GetComponent[*Rigidbody](g)
	if rb == nil {
		return
	}
	body := rb.Body()
	if body == nil {
		return
	}

	v.Intent = v.Input()
	forwardSpeed := rl.Vector3DotProduct(body.Velocity, body.Forward())
	v.Drive = ComputeDrive(v.Intent, forwardSpeed, v.Tuning)
	v.Err = rb.World.SetDriveInput(rb.Handle, v.Drive)
}

// Speed is the vehicle's current speed in m/s, or 0 without a body.
func (v *VehicleController) Speed() float32 {
	g := v.GetGameObject()
	if g == nil {
		return 0
	}
	rb := engine.GetComponent[*Rigidbody](g)
	if rb == nil || rb.Body() == nil {
		return 0
	}
	return rb.Body().Speed()
}
