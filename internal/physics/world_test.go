package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightless() Config {
	cfg := DefaultConfig()
	cfg.Gravity = 0
	cfg.LinearDrag = 0
	return cfg
}

func TestWorld_EnterAndExitEvents(t *testing.T) {
	cfg := weightless()
	cfg.Restitution = 1
	w := NewWorld(cfg, zerolog.Nop())

	wall, err := w.AddBody(BodyDef{Name: "wall", Position: rl.Vector3{Y: 10}, Size: two})
	require.NoError(t, err)
	ball, err := w.AddBody(unitBox("ball", rl.Vector3{X: 1.55, Y: 10}, 1))
	require.NoError(t, err)
	w.Body(ball).Velocity = rl.Vector3{X: -1}

	var entered, exited []CollisionEvent
	var impacts []Impact
	w.OnCollisionEnter.AddListener(func(e CollisionEvent) { entered = append(entered, e) })
	w.OnCollisionExit.AddListener(func(e CollisionEvent) { exited = append(exited, e) })
	w.OnImpact.AddListener(func(i Impact) { impacts = append(impacts, i) })

	w.Step(0.1)
	require.Len(t, entered, 1)
	assert.Equal(t, CollisionEvent{A: wall, B: ball}, entered[0])
	assert.Empty(t, exited)
	require.Len(t, impacts, 1)
	assert.Equal(t, rl.Vector3{X: 1}, impacts[0].Normal)
	assert.Equal(t, 1, w.LastContacts)
	assert.Equal(t, 1, w.LastImpacts)
	assert.InDelta(t, 1, w.Body(ball).Velocity.X, 1e-5)

	w.Step(0.1)
	assert.Len(t, entered, 1)
	require.Len(t, exited, 1)
	assert.Equal(t, CollisionEvent{A: wall, B: ball}, exited[0])
	assert.Zero(t, w.LastContacts)
}

func TestWorld_StaticPairsNeverMove(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())
	_, err := w.AddBody(BodyDef{Name: "barn", Position: rl.Vector3{Y: 1}, Size: two})
	require.NoError(t, err)
	_, err = w.AddBody(BodyDef{Name: "silo", Position: rl.Vector3{X: 0.5, Y: 1}, Size: two})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60)
	}

	assert.Equal(t, rl.Vector3{Y: 1}, w.Bodies()[0].Position)
	assert.Equal(t, rl.Vector3{X: 0.5, Y: 1}, w.Bodies()[1].Position)
	assert.Zero(t, w.LastImpacts)
}

func TestWorld_DriveInputIsConsumedOnce(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())
	car, err := w.AddBody(BodyDef{
		Name:     "car",
		Position: rl.Vector3{Y: 0.5},
		Size:     rl.Vector3{X: 2, Y: 1, Z: 4},
		Mass:     10,
		Flags:    FlagVehicle,
	})
	require.NoError(t, err)

	require.NoError(t, w.SetDriveInput(car, DriveInput{EngineForce: 100}))
	w.Step(1.0 / 60)
	v1 := w.Body(car).Velocity.Z
	assert.Greater(t, v1, float32(0))

	w.Step(1.0 / 60)
	v2 := w.Body(car).Velocity.Z
	assert.Less(t, v2, v1)
	assert.Greater(t, v2, float32(0))
}

func TestWorld_SetDriveInputErrors(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())
	crate, err := w.AddBody(unitBox("crate", rl.Vector3{Y: 0.5}, 1))
	require.NoError(t, err)

	assert.ErrorIs(t, w.SetDriveInput(NoHandle, DriveInput{}), ErrUnknownBody)
	assert.ErrorIs(t, w.SetDriveInput(Handle(42), DriveInput{}), ErrUnknownBody)
	assert.ErrorIs(t, w.SetDriveInput(crate, DriveInput{EngineForce: 1}), ErrNotVehicle)
}

func TestWorld_VehicleBoxFollowsHeading(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())
	car, err := w.AddBody(BodyDef{
		Name:     "car",
		Position: rl.Vector3{Y: 0.5},
		Size:     rl.Vector3{X: 2, Y: 1, Z: 4},
		Mass:     10,
		Flags:    FlagVehicle,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2, w.Body(car).HalfExtents.Z, 1e-5)

	w.Body(car).Orientation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2)
	w.Step(1.0 / 60)

	half := w.Body(car).HalfExtents
	assert.InDelta(t, 2, half.X, 1e-4)
	assert.InDelta(t, 0.5, half.Y, 1e-4)
	assert.InDelta(t, 1, half.Z, 1e-4)
}

func TestWorld_AddBodyRejectsInvalid(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())

	h, err := w.AddBody(unitBox("bad", rl.Vector3{}, -1))

	assert.ErrorIs(t, err, ErrInvalidMass)
	assert.Equal(t, NoHandle, h)
	assert.Zero(t, w.BodyCount())
	assert.Nil(t, w.Body(h))
}

func TestWorld_StepIgnoresNonPositiveDt(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())
	h, err := w.AddBody(unitBox("crate", rl.Vector3{Y: 4}, 1))
	require.NoError(t, err)

	w.Step(0)
	w.Step(-0.5)

	assert.Equal(t, rl.Vector3{Y: 4}, w.Body(h).Position)
}

func TestWorld_AtLeastOneIteration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 0
	w := NewWorld(cfg, zerolog.Nop())
	assert.Equal(t, 1, w.Config.Iterations)
}

func TestWorld_ResetClearsEverything(t *testing.T) {
	cfg := weightless()
	w := NewWorld(cfg, zerolog.Nop())
	_, err := w.AddBody(BodyDef{Name: "wall", Position: rl.Vector3{Y: 10}, Size: two})
	require.NoError(t, err)
	_, err = w.AddBody(unitBox("ball", rl.Vector3{X: 1, Y: 10}, 1))
	require.NoError(t, err)
	w.Step(1.0 / 60)

	w.Reset()
	assert.Zero(t, w.BodyCount())

	// Nothing was overlapping after the reset, so nothing exits either.
	exits := 0
	w.OnCollisionExit.AddListener(func(CollisionEvent) { exits++ })
	w.Step(1.0 / 60)
	assert.Zero(t, exits)
}

func TestWorld_MetricsRecordWithoutProvider(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	w := NewWorld(DefaultConfig(), zerolog.Nop())
	w.SetMetrics(m)
	_, err = w.AddBody(unitBox("crate", rl.Vector3{Y: 2}, 1))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			w.Step(1.0 / 60)
		}
	})
	assert.Zero(t, w.LastImpacts)
}

func TestWorld_StepIntegratesEverythingBeforeResolving(t *testing.T) {
	cfg := weightless()
	cfg.Restitution = 0
	cfg.Slop = 0
	cfg.Iterations = 1
	w := NewWorld(cfg, zerolog.Nop())

	_, err := w.AddBody(BodyDef{Name: "slab", Position: rl.Vector3{Y: 10}, Size: two})
	require.NoError(t, err)
	resting, err := w.AddBody(unitBox("resting", rl.Vector3{X: 1.4, Y: 10}, 1))
	require.NoError(t, err)
	arriving, err := w.AddBody(unitBox("arriving", rl.Vector3{X: 3, Y: 10}, 1))
	require.NoError(t, err)
	w.Body(arriving).Velocity = rl.Vector3{X: -10}

	w.Step(0.1)

	// The arriving crate only reaches the resting one after it has moved,
	// so the (1, 2) contact exists only if it was integrated first.
	assert.Equal(t, 2, w.LastContacts)
	assert.Equal(t, 1, w.LastImpacts)
	assert.InDelta(t, 1.25, w.Body(resting).Position.X, 1e-4)
	assert.InDelta(t, 2.25, w.Body(arriving).Position.X, 1e-4)
	assert.InDelta(t, -5, w.Body(resting).Velocity.X, 1e-4)
	assert.InDelta(t, -5, w.Body(arriving).Velocity.X, 1e-4)
}

func TestWorld_GroundContactRunsAfterResolution(t *testing.T) {
	cfg := weightless()
	cfg.Restitution = 0
	cfg.Slop = 0
	cfg.Iterations = 1
	w := NewWorld(cfg, zerolog.Nop())

	bottom, err := w.AddBody(unitBox("bottom", rl.Vector3{Y: 0.5}, 1))
	require.NoError(t, err)
	top, err := w.AddBody(unitBox("top", rl.Vector3{Y: 1.4}, 1))
	require.NoError(t, err)
	w.Body(top).Velocity = rl.Vector3{Y: -2}

	w.Step(0.1)

	// Resolution pushes the bottom crate 0.15 into the ground; the ground
	// pass lifts it back and bounces its downward velocity.
	b := w.Body(bottom)
	assert.InDelta(t, 0.5, b.Position.Y, 1e-5)
	assert.InDelta(t, cfg.GroundBounce, b.Velocity.Y, 1e-4)
	assert.InDelta(t, 1.35, w.Body(top).Position.Y, 1e-4)
	assert.InDelta(t, -1, w.Body(top).Velocity.Y, 1e-4)
}

func farmyard(t *testing.T, cfg Config) (*World, Handle) {
	t.Helper()
	w := NewWorld(cfg, zerolog.Nop())
	car, err := w.AddBody(BodyDef{
		Name:     "car",
		Position: rl.Vector3{Y: 0.5, Z: -6},
		Size:     rl.Vector3{X: 2, Y: 1, Z: 4},
		Mass:     10,
		Flags:    FlagVehicle,
	})
	require.NoError(t, err)
	_, err = w.AddBody(BodyDef{Name: "post", Position: rl.Vector3{X: 0.5, Y: 0.5, Z: 2}, Size: rl.Vector3{X: 1, Y: 1, Z: 1}, Mass: 10, Flags: FlagToppleable})
	require.NoError(t, err)
	_, err = w.AddBody(BodyDef{Name: "fence", Position: rl.Vector3{X: 4, Y: 1}, Size: rl.Vector3{X: 0.5, Y: 2, Z: 12}})
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		pos := rl.Vector3{X: float32(i%3) - 1, Y: 0.5 + float32(i/3)*1.05, Z: 5}
		_, err := w.AddBody(unitBox("crate", pos, 2))
		require.NoError(t, err)
	}
	return w, car
}

func TestWorld_RepeatedRunsAreIdentical(t *testing.T) {
	for _, bp := range []string{BroadPhaseAllPairs, BroadPhaseGrid} {
		t.Run(bp, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BroadPhase = bp

			run := func() []RigidBody {
				w, car := farmyard(t, cfg)
				require.Equal(t, 15, w.BodyCount())
				for i := 0; i < 180; i++ {
					in := DriveInput{EngineForce: 300, SteeringTorque: 0.5}
					if i > 120 {
						in = DriveInput{Brake: true}
					}
					require.NoError(t, w.SetDriveInput(car, in))
					w.Step(1.0 / 60)
				}
				return append([]RigidBody(nil), w.Bodies()...)
			}

			first, second := run(), run()
			assert.Equal(t, first, second)
			assert.NotEqual(t, rl.Vector3{Y: 0.5, Z: -6}, first[0].Position, "the car moved")
		})
	}
}
