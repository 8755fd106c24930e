package components

import (
	"farmdrive/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape selects the unit mesh a ModelRenderer draws.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCylinder
)

func (s Shape) String() string {
	if s == ShapeCylinder {
		return "cylinder"
	}
	return "box"
}

// ParseShape accepts the scene file names; anything unknown is a box.
func ParseShape(name string) Shape {
	if name == "cylinder" {
		return ShapeCylinder
	}
	return ShapeBox
}

// ModelRenderer draws a unit mesh scaled, rotated and placed by the object's
// world transform.
type ModelRenderer struct {
	engine.BaseComponent
	Shape Shape
	Color rl.Color

	// Flash tints the model for a short time, see ImpactFlash.
	Tint      rl.Color
	TintTimer float32

	model  rl.Model
	offset rl.Matrix
	loaded bool
}

func NewModelRenderer(shape Shape, color rl.Color) *ModelRenderer {
	return &ModelRenderer{Shape: shape, Color: color}
}

// Start builds the GPU mesh, so it must run after the window is open.
func (m *ModelRenderer) Start() {
	if m.loaded {
		return
	}
	switch m.Shape {
	case ShapeCylinder:
		m.model = rl.LoadModelFromMesh(rl.GenMeshCylinder(0.5, 1, 16))
		// GenMeshCylinder grows up from its base; center it.
		m.offset = rl.MatrixTranslate(0, -0.5, 0)
	default:
		m.model = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
		m.offset = rl.MatrixIdentity()
	}
	m.loaded = true
}

func (m *ModelRenderer) Update(deltaTime float32) {
	if m.TintTimer > 0 {
		m.TintTimer -= deltaTime
	}
}

// CurrentColor is the base colour, or the flash tint while it lasts.
func (m *ModelRenderer) CurrentColor() rl.Color {
	if m.TintTimer > 0 {
		return m.Tint
	}
	return m.Color
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !m.loaded {
		return
	}
	m.model.Transform = rl.MatrixMultiply(m.offset, g.WorldMatrix())
	color := m.CurrentColor()
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, color)
	rl.DrawModelWires(m.model, rl.Vector3Zero(), 1.0, rl.Fade(rl.Black, 0.3))
}

func (m *ModelRenderer) Unload() {
	if m.loaded {
		rl.UnloadModel(m.model)
		m.loaded = false
	}
}
