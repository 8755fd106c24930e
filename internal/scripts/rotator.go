package scripts

import (
	"farmdrive/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotator spins a decorative object, such as windmill blades, about one of
// its local axes. Speed is in degrees per second.
type Rotator struct {
	engine.BaseComponent
	Speed float32
	Axis  rl.Vector3
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.Speed == 0 {
		return
	}
	step := rl.QuaternionFromAxisAngle(r.Axis, r.Speed*rl.Deg2rad*deltaTime)
	g.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(g.Transform.Rotation, step))
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory)
}

func rotatorFactory(props map[string]any) engine.Component {
	return &Rotator{
		Speed: engine.PropFloat(props, "speed", 90),
		Axis:  axisProp(props, "axis"),
	}
}

// axisProp reads "x", "y" or "z"; Y is the default.
func axisProp(props map[string]any, key string) rl.Vector3 {
	s, _ := props[key].(string)
	switch s {
	case "x", "X":
		return rl.Vector3{X: 1}
	case "z", "Z":
		return rl.Vector3{Z: 1}
	default:
		return rl.Vector3{Y: 1}
	}
}
