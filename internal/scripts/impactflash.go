package scripts

import (
	"farmdrive/internal/components"
	"farmdrive/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ImpactFlash briefly tints its object whenever something runs into it.
type ImpactFlash struct {
	engine.BaseComponent
	Color    rl.Color
	Duration float32
	Hits     int
}

func (f *ImpactFlash) OnCollisionEnter(other *engine.GameObject) {
	f.Hits++
	g := f.GetGameObject()
	if g == nil {
		return
	}
	if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
		mr.Tint = f.Color
		mr.TintTimer = f.Duration
	}
}

func (f *ImpactFlash) OnCollisionExit(other *engine.GameObject) {}

func init() {
	engine.RegisterScript("ImpactFlash", impactFlashFactory)
}

func impactFlashFactory(props map[string]any) engine.Component {
	return &ImpactFlash{
		Color:    rl.Yellow,
		Duration: engine.PropFloat(props, "duration", 0.25),
	}
}
