package camera

import (
	"math"

	"farmdrive/internal/components"
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera trails a target object from behind and above. When a body
// sits between the target and the camera, the camera moves in front of it.
type FollowCamera struct {
	Camera rl.Camera3D
	Target engine.GameObjectRef

	Distance    float32 // behind the target
	Height      float32 // above the target
	MinDistance float32 // closest the camera gets when blocked
	Smoothing   float32 // 1/s, 0 snaps
	Yaw         float32 // orbit offset in degrees, 0 is straight behind

	world  *physics.World
	placed bool
}

func NewFollow(world *physics.World) *FollowCamera {
	return &FollowCamera{
		Camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 10, Z: -20},
			Target:     rl.Vector3{},
			Up:         rl.Vector3{Y: 1},
			Fovy:       60,
			Projection: rl.CameraPerspective,
		},
		Distance:    10,
		Height:      4,
		MinDistance: 1.5,
		Smoothing:   6,
		world:       world,
	}
}

// Follow switches to g and snaps on the next Update.
func (c *FollowCamera) Follow(g *engine.GameObject) {
	c.Target.Set(g)
	c.placed = false
}

// Orbit turns the camera around the target by degrees.
func (c *FollowCamera) Orbit(degrees float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+degrees), 360))
}

func (c *FollowCamera) Update(deltaTime float32, scene *engine.Scene) {
	g := c.Target.Get(scene)
	if g == nil {
		return
	}

	pos := g.WorldPosition()
	ignore := physics.NoHandle
	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		ignore = rb.Handle
	}
	forward := rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, g.WorldRotation())
	if c.Yaw != 0 {
		forward = rl.Vector3RotateByQuaternion(forward, rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, c.Yaw*rl.Deg2rad))
	}

	desired := c.DesiredPosition(pos, forward)
	desired = c.unblock(pos, desired, ignore)

	if !c.placed || c.Smoothing <= 0 {
		c.Camera.Position = desired
		c.placed = true
	} else {
		t := 1 - float32(math.Exp(float64(-c.Smoothing*deltaTime)))
		c.Camera.Position = rl.Vector3Lerp(c.Camera.Position, desired, t)
	}
	c.Camera.Target = pos
}

// DesiredPosition is where the camera wants to be for a target at pos facing
// forward, before occlusion.
func (c *FollowCamera) DesiredPosition(pos, forward rl.Vector3) rl.Vector3 {
	flat := rl.Vector3{X: forward.X, Z: forward.Z}
	if rl.Vector3Length(flat) < 1e-4 {
		// Pointing straight up or down; keep the last heading.
		flat = rl.Vector3Subtract(pos, c.Camera.Position)
		flat.Y = 0
		if rl.Vector3Length(flat) < 1e-4 {
			flat = rl.Vector3{Z: 1}
		}
	}
	flat = rl.Vector3Normalize(flat)
	back := rl.Vector3Scale(flat, -c.Distance)
	return rl.Vector3Add(pos, rl.Vector3{X: back.X, Y: c.Height, Z: back.Z})
}

func (c *FollowCamera) unblock(from, to rl.Vector3, ignore physics.Handle) rl.Vector3 {
	if c.world == nil {
		return to
	}
	dir := rl.Vector3Subtract(to, from)
	length := rl.Vector3Length(dir)
	if length == 0 {
		return to
	}
	hit, ok := c.world.Raycast(from, dir, length, ignore)
	if !ok {
		return to
	}
	d := hit.Distance - 0.2
	if d < c.MinDistance {
		d = c.MinDistance
	}
	return rl.Vector3Add(from, rl.Vector3Scale(dir, d/length))
}
