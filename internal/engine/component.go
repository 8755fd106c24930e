package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// CollisionHandler is implemented by components that want to know when
// their object starts or stops touching another one.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// Drawable is implemented by components that render something.
type Drawable interface {
	Draw()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
