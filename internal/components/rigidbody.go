package components

import (
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"
)

// Rigidbody links a game object to its body in the physics world. The world
// owns the state; this component only mirrors it onto the transform.
type Rigidbody struct {
	engine.BaseComponent
	World  *physics.World
	Handle physics.Handle
}

func NewRigidbody(world *physics.World, handle physics.Handle) *Rigidbody {
	return &Rigidbody{World: world, Handle: handle}
}

// Body returns the physics body, or nil if the handle is stale.
func (r *Rigidbody) Body() *physics.RigidBody {
	if r.World == nil {
		return nil
	}
	return r.World.Body(r.Handle)
}

// SyncTransform copies the simulated pose onto the game object. Called once
// per frame after the physics step.
func (r *Rigidbody) SyncTransform() {
	g := r.GetGameObject()
	b := r.Body()
	if g == nil || b == nil {
		return
	}
	g.Transform.Position = b.Position
	g.Transform.Rotation = b.Orientation
}
