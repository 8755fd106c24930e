package physics

import (
	"fmt"
	"sort"
	"time"

	"farmdrive/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// CollisionEvent is sent when two bodies start or stop overlapping.
type CollisionEvent struct {
	A, B Handle
}

// ToppleEvent is sent when a prop starts falling and when it settles.
type ToppleEvent struct {
	Body  Handle
	State ToppleState
	Axis  rl.Vector3
}

// World owns the bodies and runs the simulation step. It is not safe for
// concurrent use; call everything from the frame loop. Event listeners run
// inside Step and must not add bodies.
type World struct {
	Config Config

	store  Store
	broad  BroadPhase
	pairs  []Pair
	drives map[Handle]DriveInput

	// Overlapping pairs from the last and current step, for enter/exit.
	active  map[Pair]struct{}
	current map[Pair]struct{}

	OnCollisionEnter engine.EventWithArg[CollisionEvent]
	OnCollisionExit  engine.EventWithArg[CollisionEvent]
	OnImpact         engine.EventWithArg[Impact]
	OnTopple         engine.EventWithArg[ToppleEvent]

	metrics *Metrics
	logger  zerolog.Logger

	// Stats from the last step, for the HUD.
	LastContacts int
	LastImpacts  int
	LastStep     time.Duration
}

func NewWorld(cfg Config, logger zerolog.Logger) *World {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	return &World{
		Config:  cfg,
		broad:   cfg.NewBroadPhase(),
		drives:  make(map[Handle]DriveInput),
		active:  make(map[Pair]struct{}),
		current: make(map[Pair]struct{}),
		logger:  logger.With().Str("component", "physics").Logger(),
	}
}

// SetMetrics attaches metric instruments; nil disables recording.
func (w *World) SetMetrics(m *Metrics) {
	w.metrics = m
}

func (w *World) SetBroadPhase(bp BroadPhase) {
	w.broad = bp
}

func (w *World) BroadPhase() BroadPhase {
	return w.broad
}

// AddBody creates a body and returns its handle.
func (w *World) AddBody(def BodyDef) (Handle, error) {
	h, err := w.store.Add(def)
	if err != nil {
		w.logger.Warn().Err(err).Str("body", def.Name).Msg("rejected body")
		return NoHandle, err
	}
	b := w.store.Get(h)
	w.logger.Debug().
		Str("body", b.Name).
		Int32("handle", int32(h)).
		Stringer("kind", b.Kind).
		Float32("mass", b.Mass).
		Msg("added body")
	return h, nil
}

// Body returns the body for h or nil. The pointer is only valid until the
// next AddBody.
func (w *World) Body(h Handle) *RigidBody {
	return w.store.Get(h)
}

func (w *World) Bodies() []RigidBody {
	return w.store.Bodies()
}

func (w *World) BodyCount() int {
	return w.store.Len()
}

// Reset removes every body and pending input.
func (w *World) Reset() {
	w.store.Reset()
	for k := range w.drives {
		delete(w.drives, k)
	}
	for k := range w.active {
		delete(w.active, k)
	}
	for k := range w.current {
		delete(w.current, k)
	}
}

// SetDriveInput queues controller input for a vehicle body. It is consumed
// by the next Step.
func (w *World) SetDriveInput(h Handle, in DriveInput) error {
	b := w.store.Get(h)
	if b == nil {
		return fmt.Errorf("%w: %d", ErrUnknownBody, h)
	}
	if !b.IsVehicle() {
		return fmt.Errorf("%w: %q", ErrNotVehicle, b.Name)
	}
	w.drives[h] = in
	return nil
}

// Step advances the simulation by dt seconds. All bodies are integrated
// before any contact is resolved, and ground contact runs after resolution.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	start := time.Now()
	cfg := w.Config
	bodies := w.store.Bodies()

	for h, in := range w.drives {
		ApplyDrive(&bodies[h], in, cfg, dt)
		delete(w.drives, h)
	}

	for i := range bodies {
		b := &bodies[i]
		Integrate(b, cfg, dt)
		if b.IsVehicle() {
			// Vehicles yaw freely, so their box follows their heading.
			b.refreshExtents()
		}
	}

	w.pairs = w.broad.Pairs(bodies, w.pairs[:0])

	contacts, impacts := 0, 0
	for iter := 0; iter < cfg.Iterations; iter++ {
		for _, p := range w.pairs {
			a, b := &bodies[p.A], &bodies[p.B]
			c, ok := CollideAABB(a, b)
			if !ok {
				continue
			}
			c.A, c.B = p.A, p.B
			if iter == 0 {
				contacts++
				w.current[p] = struct{}{}
			}
			impact, ok := Resolve(a, b, c, cfg)
			if !ok {
				continue
			}
			impacts++
			w.handleImpact(bodies, impact)
		}
	}

	for i := range bodies {
		ApplyGroundContact(&bodies[i], cfg, dt)
	}

	for i := range bodies {
		b := &bodies[i]
		if b.Topple == nil {
			continue
		}
		if b.Topple.Advance(b, cfg, dt) {
			w.logger.Info().Str("body", b.Name).Msg("prop settled")
			w.metrics.recordTopple(b.Name, Settled)
			w.OnTopple.Invoke(ToppleEvent{Body: Handle(i), State: Settled, Axis: b.Topple.Axis})
		}
	}

	w.dispatchCollisionEvents()

	w.LastContacts, w.LastImpacts = contacts, impacts
	w.LastStep = time.Since(start)
	w.metrics.recordStep(contacts, impacts, w.LastStep)
}

// handleImpact publishes an impact and lets a struck prop start falling.
func (w *World) handleImpact(bodies []RigidBody, impact Impact) {
	w.OnImpact.Invoke(impact)
	if !impact.Prop.Valid() {
		return
	}
	prop := &bodies[impact.Prop]
	impactor := &bodies[impact.Impactor]
	if !prop.Topple.TryTrigger(prop, impactor.Position, impact.ImpactorVelocity, w.Config) {
		return
	}
	w.logger.Info().
		Str("body", prop.Name).
		Str("by", impactor.Name).
		Float32("speed", rl.Vector3Length(impact.ImpactorVelocity)).
		Msg("prop toppling")
	w.metrics.recordTopple(prop.Name, Falling)
	w.OnTopple.Invoke(ToppleEvent{Body: impact.Prop, State: Falling, Axis: prop.Topple.Axis})
}

// dispatchCollisionEvents fires enter/exit in pair order and swaps the sets.
func (w *World) dispatchCollisionEvents() {
	var entered, exited []Pair
	for p := range w.current {
		if _, ok := w.active[p]; !ok {
			entered = append(entered, p)
		}
	}
	for p := range w.active {
		if _, ok := w.current[p]; !ok {
			exited = append(exited, p)
		}
	}
	sortPairs(entered)
	sortPairs(exited)

	for _, p := range entered {
		w.OnCollisionEnter.Invoke(CollisionEvent{A: p.A, B: p.B})
	}
	for _, p := range exited {
		w.OnCollisionExit.Invoke(CollisionEvent{A: p.A, B: p.B})
	}

	w.active, w.current = w.current, w.active
	for k := range w.current {
		delete(w.current, k)
	}
}

func sortPairs(ps []Pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].A != ps[j].A {
			return ps[i].A < ps[j].A
		}
		return ps[i].B < ps[j].B
	})
}
