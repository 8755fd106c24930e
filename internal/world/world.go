package world

import (
	"fmt"

	"farmdrive/internal/components"
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"
	_ "farmdrive/internal/scripts" // registers scene scripts

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FloorSize is the side of the drawn ground plane. The physics ground is
// infinite.
const FloorSize = 60.0

// World ties the scene graph to the physics world. Objects with a body get a
// Rigidbody whose pose is copied back after every step.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Def     *SceneFile

	// VehicleRef points at the driven object, if the scene has one.
	VehicleRef engine.GameObjectRef

	// Input overrides the keyboard for the vehicle controller.
	Input func() components.DriveIntent

	// OnReset fires after Reset has rebuilt the scene.
	OnReset engine.Event

	// Toppled counts props that have finished falling since the last build.
	Toppled int
	Spawned int

	tuning  components.VehicleTuning
	logger  zerolog.Logger
	objects map[physics.Handle]*engine.GameObject
	bodies  []*components.Rigidbody
	started bool
}

func New(phys *physics.World, tuning components.VehicleTuning, logger zerolog.Logger) *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: phys,
		tuning:  tuning,
		logger:  logger.With().Str("component", "world").Logger(),
		objects: make(map[physics.Handle]*engine.GameObject),
	}
	phys.OnCollisionEnter.AddListener(func(ev physics.CollisionEvent) {
		w.dispatchCollision(ev, true)
	})
	phys.OnCollisionExit.AddListener(func(ev physics.CollisionEvent) {
		w.dispatchCollision(ev, false)
	})
	phys.OnTopple.AddListener(w.handleTopple)
	return w
}

// Build replaces the current scene with sf. Nothing is started; call Start
// once the window is open.
func (w *World) Build(sf *SceneFile) error {
	if err := sf.Validate(); err != nil {
		return err
	}
	w.clear()
	w.Def = sf
	w.Scene = engine.NewScene(sf.Name)

	for _, def := range sf.Objects {
		if _, err := w.addObject(def); err != nil {
			return err
		}
	}
	w.logger.Info().
		Str("scene", sf.Name).
		Int("objects", len(w.Scene.GameObjects)).
		Int("bodies", w.Physics.BodyCount()).
		Msg("scene built")
	return nil
}

// Start starts every object. Renderers load their meshes here.
func (w *World) Start() {
	w.Scene.Start()
	w.started = true
}

// Reset rebuilds the world from the current definition.
func (w *World) Reset() error {
	if w.Def == nil {
		return errors.New("reset: no scene loaded")
	}
	w.unload()
	if err := w.Build(w.Def); err != nil {
		return errors.Wrap(err, "reset")
	}
	if w.started {
		w.Scene.Start()
	}
	w.OnReset.Invoke()
	return nil
}

// Update runs components, steps physics and copies poses back.
func (w *World) Update(dt float32) {
	w.Scene.Update(dt)
	w.Physics.Step(dt)
	for _, rb := range w.bodies {
		rb.SyncTransform()
	}
}

// SpawnCrate drops a crate a few metres in front of the vehicle, or above
// the origin when there is no vehicle.
func (w *World) SpawnCrate() (*engine.GameObject, error) {
	pos := rl.Vector3{Y: 3}
	if car := w.VehicleObject(); car != nil {
		if rb := engine.GetComponent[*components.Rigidbody](car); rb != nil && rb.Body() != nil {
			b := rb.Body()
			pos = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Forward(), 4))
			pos.Y = b.Position.Y + 3
		}
	}
	w.Spawned++
	def := crateDef(fmt.Sprintf("spawned-crate-%d", w.Spawned), "SkyBlue", [3]float32{pos.X, pos.Y, pos.Z})
	g, err := w.addObject(def)
	if err != nil {
		return nil, err
	}
	w.logger.Debug().Str("object", g.Name).Uint64("uid", g.UID).Msg("spawned")
	return g, nil
}

// ObjectFor maps a body handle back to its game object.
func (w *World) ObjectFor(h physics.Handle) *engine.GameObject {
	return w.objects[h]
}

func (w *World) VehicleObject() *engine.GameObject {
	return w.VehicleRef.Get(w.Scene)
}

func (w *World) addObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = append(g.Tags, def.Tags...)
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = def.orientation()
	g.Transform.Scale = vec3(def.Size)
	if def.Parent != "" {
		parent := w.Scene.FindByName(def.Parent)
		if parent == nil {
			return nil, errors.Errorf("object %q: no parent %q", def.Name, def.Parent)
		}
		// Objects are scaled to their size, so undo the parent's scale to
		// keep the child's offset and size in metres.
		ps := parent.WorldScale()
		g.Transform.Position = rl.Vector3Divide(g.Transform.Position, ps)
		g.Transform.Scale = rl.Vector3Divide(g.Transform.Scale, ps)
		parent.AddChild(g)
	}

	collider := components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	g.AddComponent(collider)
	g.AddComponent(components.NewModelRenderer(components.ParseShape(def.Shape), lookupColor(def.Color)))

	if !def.Decorative {
		var flags physics.Flags
		if def.Vehicle {
			flags |= physics.FlagVehicle
		}
		if def.Toppleable {
			flags |= physics.FlagToppleable
		}
		h, err := w.Physics.AddBody(collider.BodyDef(def.Mass, flags))
		if err != nil {
			return nil, errors.Wrapf(err, "object %q", def.Name)
		}
		rb := components.NewRigidbody(w.Physics, h)
		g.AddComponent(rb)
		w.bodies = append(w.bodies, rb)
		w.objects[h] = g

		if def.Vehicle {
			vc := components.NewVehicleController(w.tuning)
			if w.Input != nil {
				vc.Input = w.Input
			}
			g.AddComponent(vc)
			w.VehicleRef.Set(g)
		}
	}

	for _, s := range def.Scripts {
		c := engine.CreateScript(s.Name, s.Props)
		if c == nil {
			return nil, errors.Errorf("object %q: unknown script %q", def.Name, s.Name)
		}
		g.AddComponent(c)
	}

	w.Scene.AddGameObject(g)
	if w.started {
		g.Start()
	}
	return g, nil
}

func (w *World) dispatchCollision(ev physics.CollisionEvent, enter bool) {
	a, b := w.objects[ev.A], w.objects[ev.B]
	if a == nil || b == nil {
		return
	}
	notify(a, b, enter)
	notify(b, a, enter)
}

func notify(self, other *engine.GameObject, enter bool) {
	for _, c := range self.Components() {
		h, ok := c.(engine.CollisionHandler)
		if !ok {
			continue
		}
		if enter {
			h.OnCollisionEnter(other)
		} else {
			h.OnCollisionExit(other)
		}
	}
}

func (w *World) handleTopple(ev physics.ToppleEvent) {
	if ev.State == physics.Settled {
		w.Toppled++
	}
	name := ""
	if g := w.objects[ev.Body]; g != nil {
		name = g.Name
	}
	w.logger.Debug().Str("object", name).Stringer("state", ev.State).Msg("topple")
}

// clear drops all bodies and objects without touching GPU resources.
func (w *World) clear() {
	w.Physics.Reset()
	for h := range w.objects {
		delete(w.objects, h)
	}
	w.bodies = w.bodies[:0]
	w.VehicleRef.Clear()
	w.Toppled = 0
	w.Spawned = 0
}

func (w *World) unload() {
	for _, g := range w.Scene.GameObjects {
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			mr.Unload()
		}
	}
}
