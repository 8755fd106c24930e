package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGroundContact_FastImpactBounces(t *testing.T) {
	b := mustBody(t, unitBox("crate", rl.Vector3{Y: 0.4}, 1))
	b.Velocity = rl.Vector3{Y: -4}

	grounded := ApplyGroundContact(b, DefaultConfig(), 1.0/60)

	assert.True(t, grounded)
	assert.Equal(t, float32(0.5), b.Position.Y)
	assert.InDelta(t, 1.2, b.Velocity.Y, 1e-5)
}

func TestApplyGroundContact_SlowImpactStops(t *testing.T) {
	b := mustBody(t, unitBox("crate", rl.Vector3{Y: 0.45}, 1))
	b.Velocity = rl.Vector3{Y: -0.2}

	ApplyGroundContact(b, DefaultConfig(), 1.0/60)

	assert.Equal(t, float32(0.5), b.Position.Y)
	assert.Zero(t, b.Velocity.Y)
}

func TestApplyGroundContact_FrictionScalesWithStep(t *testing.T) {
	b := mustBody(t, unitBox("crate", rl.Vector3{Y: 0.5}, 1))
	b.Velocity = rl.Vector3{X: 10, Z: -5}
	b.AngularVelocity = rl.Vector3{Y: 2}

	ApplyGroundContact(b, DefaultConfig(), 1.0/60)

	assert.InDelta(t, 9.8, b.Velocity.X, 1e-4)
	assert.InDelta(t, -4.9, b.Velocity.Z, 1e-4)
	assert.InDelta(t, 1.96, b.AngularVelocity.Y, 1e-4)

	// Twice the step loses twice the fraction.
	b.Velocity = rl.Vector3{X: 10}
	ApplyGroundContact(b, DefaultConfig(), 2.0/60)
	assert.InDelta(t, 9.6, b.Velocity.X, 1e-4)
}

func TestApplyGroundContact_AirborneAndStatic(t *testing.T) {
	flying := mustBody(t, unitBox("crate", rl.Vector3{Y: 3}, 1))
	flying.Velocity = rl.Vector3{X: 4, Y: -1}
	assert.False(t, ApplyGroundContact(flying, DefaultConfig(), 1.0/60))
	assert.Equal(t, rl.Vector3{X: 4, Y: -1}, flying.Velocity)

	sunk := mustBody(t, unitBox("well", rl.Vector3{Y: -2}, 0))
	assert.False(t, ApplyGroundContact(sunk, DefaultConfig(), 1.0/60))
	assert.Equal(t, float32(-2), sunk.Position.Y)
}

func TestApplyGroundContact_RaisedGround(t *testing.T) {
	def := unitBox("crate", rl.Vector3{Y: 2.3}, 1)
	def.GroundY = 2
	b := mustBody(t, def)

	assert.True(t, ApplyGroundContact(b, DefaultConfig(), 1.0/60))
	assert.Equal(t, float32(2.5), b.Position.Y)
}

func TestWorld_DroppedBoxComesToRest(t *testing.T) {
	w := NewWorld(DefaultConfig(), zerolog.Nop())
	h, err := w.AddBody(unitBox("crate", rl.Vector3{Y: 5}, 1))
	require.NoError(t, err)

	const dt = float32(1.0 / 60)
	for i := 0; i < 600; i++ {
		w.Step(dt)
	}

	b := w.Body(h)
	assert.InDelta(t, 0, b.Position.Y-b.HalfExtents.Y, 1e-4)
	assert.Zero(t, b.Velocity.Y)
	assert.Less(t, b.Speed(), float32(1e-3))

	// Resting stays resting.
	rest := b.Position
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}
	assert.Equal(t, rest, w.Body(h).Position)
}
