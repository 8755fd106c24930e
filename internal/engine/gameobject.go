package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// Matrix returns scale, then rotation, then translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Rotation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentScale := g.Parent.WorldScale()
	scaled := rl.Vector3Multiply(g.Transform.Position, parentScale)
	rotated := rl.Vector3RotateByQuaternion(scaled, g.Parent.WorldRotation())
	return rl.Vector3Add(g.Parent.WorldPosition(), rotated)
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return rl.Vector3Multiply(g.Parent.WorldScale(), g.Transform.Scale)
}

// WorldMatrix is the full model matrix including parents.
func (g *GameObject) WorldMatrix() rl.Matrix {
	return Transform{
		Position: g.WorldPosition(),
		Rotation: g.WorldRotation(),
		Scale:    g.WorldScale(),
	}.Matrix()
}
