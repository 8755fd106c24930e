package components

import (
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider gives an object a box shape for the physics world. Size is in
// local units and is multiplied by the object's scale.
type BoxCollider struct {
	engine.BaseComponent
	Size rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// BodyDef describes the body for this collider at the object's current
// world pose.
func (b *BoxCollider) BodyDef(mass float32, flags physics.Flags) physics.BodyDef {
	g := b.GetGameObject()
	return physics.BodyDef{
		Name:        g.Name,
		Position:    g.WorldPosition(),
		Orientation: g.WorldRotation(),
		Size:        rl.Vector3Multiply(b.Size, g.WorldScale()),
		Mass:        mass,
		Flags:       flags,
	}
}

// GetAABB is the world box of the attached body, or of the collider itself
// when the object has no body yet.
func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil && rb.Body() != nil {
		return rb.Body().Bounds()
	}
	def := b.BodyDef(0, 0)
	return physics.NewOBB(def.Position, def.Size, def.Orientation).Bounds()
}
