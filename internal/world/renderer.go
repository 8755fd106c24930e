package world

import (
	"farmdrive/internal/components"
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	groundColor = rl.NewColor(118, 160, 84, 255)
	wireAwake   = rl.Lime
	wireStatic  = rl.Gray
	wireFalling = rl.Orange
)

// Renderer draws the ground and every visible object. Debug adds body AABBs
// and oriented boxes.
type Renderer struct {
	Debug     bool
	floorSize float32

	visible []*engine.GameObject

	// Counts from the last frame.
	Drawn  int
	Culled int
}

func NewRenderer(floorSize float32) *Renderer {
	return &Renderer{floorSize: floorSize}
}

// Draw must be called between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, w *World) {
	frustum := ExtractFrustum(camera, aspect)
	r.visible = VisibleObjects(frustum, w.Scene.GameObjects, r.visible[:0])
	r.Drawn = len(r.visible)
	r.Culled = len(w.Scene.GameObjects) - r.Drawn

	rl.BeginMode3D(camera)
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: r.floorSize, Y: r.floorSize}, groundColor)
	rl.DrawGrid(int32(r.floorSize/2), 2)

	for _, g := range r.visible {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
	if r.Debug {
		drawBodies(w.Physics)
	}
	rl.EndMode3D()
}

// VisibleObjects appends the active objects whose bounds touch the frustum.
// Objects without a collider are always kept.
func VisibleObjects(f Frustum, objects []*engine.GameObject, dst []*engine.GameObject) []*engine.GameObject {
	for _, g := range objects {
		if !g.Active {
			continue
		}
		if bc := engine.GetComponent[*components.BoxCollider](g); bc != nil && !f.ContainsAABB(bc.GetAABB()) {
			continue
		}
		dst = append(dst, g)
	}
	return dst
}

func drawBodies(phys *physics.World) {
	bodies := phys.Bodies()
	for i := range bodies {
		b := &bodies[i]
		if !b.HasExtents() {
			continue
		}
		color := wireAwake
		switch {
		case !b.IsDynamic():
			color = wireStatic
		case b.Topple != nil && b.Topple.State == physics.Falling:
			color = wireFalling
		}
		box := b.Bounds()
		rl.DrawBoundingBox(rl.BoundingBox{Min: box.Min, Max: box.Max}, rl.Fade(color, 0.6))
		drawOBB(physics.NewOBB(b.Position, b.LocalSize, b.Orientation), color)
	}
}

// obbEdges indexes Corners(): bit 0 is X, bit 1 is Y, bit 2 is Z.
var obbEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func drawOBB(o physics.OBB, color rl.Color) {
	c := o.Corners()
	for _, e := range obbEdges {
		rl.DrawLine3D(c[e[0]], c[e[1]], color)
	}
}
