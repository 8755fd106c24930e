package physics

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrInvalidMass      = errors.New("physics: mass must be a finite value >= 0")
	ErrInvalidSize      = errors.New("physics: size components must be >= 0")
	ErrStaticToppleable = errors.New("physics: toppleable bodies need a positive mass")
	ErrUnknownBody      = errors.New("physics: unknown body handle")
	ErrNotVehicle       = errors.New("physics: body is not a vehicle")
)

// Kind says how a body participates in the simulation.
type Kind uint8

const (
	// Static bodies have zero mass and are never moved by physics.
	Static Kind = iota
	// Dynamic bodies are integrated and pushed by impulses.
	Dynamic
	// Kinematic bodies are dynamic bodies that are also driven by a
	// controller through ApplyDrive.
	Kinematic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Flags are capabilities fixed when a body is created.
type Flags uint8

const (
	FlagVehicle Flags = 1 << iota
	FlagToppleable
)

// Handle addresses a body inside a Store. Handles stay valid for the
// lifetime of the store.
type Handle int32

// NoHandle is the zero-information handle.
const NoHandle Handle = -1

// Valid reports whether h could address a body.
func (h Handle) Valid() bool { return h >= 0 }

// BodyDef describes a body to create.
type BodyDef struct {
	Name        string
	Position    rl.Vector3
	Orientation rl.Quaternion // zero value means identity
	Size        rl.Vector3    // full extents in local space
	Mass        float32       // 0 for static
	Flags       Flags
	GroundY     float32
}

// RigidBody is the physical state of one scene object.
type RigidBody struct {
	Name  string
	Kind  Kind
	Flags Flags

	Mass        float32
	InverseMass float32

	Position        rl.Vector3
	Orientation     rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // rad/s, world space

	Force  rl.Vector3
	Torque rl.Vector3

	LocalSize   rl.Vector3
	HalfExtents rl.Vector3 // world-space AABB half size
	GroundY     float32

	Topple *Topple
}

// NewBody validates def and builds the body it describes.
func NewBody(def BodyDef) (RigidBody, error) {
	if def.Mass < 0 || math.IsNaN(float64(def.Mass)) || math.IsInf(float64(def.Mass), 0) {
		return RigidBody{}, fmt.Errorf("%w: %q has mass %v", ErrInvalidMass, def.Name, def.Mass)
	}
	if def.Size.X < 0 || def.Size.Y < 0 || def.Size.Z < 0 {
		return RigidBody{}, fmt.Errorf("%w: %q has size %v", ErrInvalidSize, def.Name, def.Size)
	}
	if def.Flags&FlagToppleable != 0 && def.Mass == 0 {
		return RigidBody{}, fmt.Errorf("%w: %q", ErrStaticToppleable, def.Name)
	}

	b := RigidBody{
		Name:        def.Name,
		Flags:       def.Flags,
		Position:    def.Position,
		Orientation: normalizedOrientation(def.Orientation),
		LocalSize:   def.Size,
		GroundY:     def.GroundY,
	}
	b.refreshExtents()
	b.setMass(def.Mass)

	if b.IsToppleable() {
		b.Topple = &Topple{}
	}
	return b, nil
}

// setMass keeps Mass, InverseMass and Kind consistent.
func (b *RigidBody) setMass(mass float32) {
	b.Mass = mass
	switch {
	case mass <= 0:
		b.Mass = 0
		b.InverseMass = 0
		b.Kind = Static
	case b.Flags&FlagVehicle != 0:
		b.InverseMass = 1 / mass
		b.Kind = Kinematic
	default:
		b.InverseMass = 1 / mass
		b.Kind = Dynamic
	}
}

// IsDynamic reports whether physics may move the body.
func (b *RigidBody) IsDynamic() bool { return b.Kind != Static }

func (b *RigidBody) IsVehicle() bool { return b.Kind == Kinematic }

func (b *RigidBody) IsToppleable() bool { return b.Flags&FlagToppleable != 0 }

// HasExtents reports whether the body has geometry to collide with. Bodies
// without it are skipped by every contact phase.
func (b *RigidBody) HasExtents() bool {
	return b.HalfExtents.X > 0 && b.HalfExtents.Y > 0 && b.HalfExtents.Z > 0
}

// refreshExtents recomputes the world AABB half size from the local size
// and the current orientation.
func (b *RigidBody) refreshExtents() {
	b.HalfExtents = halfExtentsFor(b.LocalSize, b.Orientation)
}

func (b *RigidBody) AddForce(f rl.Vector3) {
	b.Force = rl.Vector3Add(b.Force, f)
}

// Bounds returns the world-space AABB of the body.
func (b *RigidBody) Bounds() AABB {
	return NewAABB(b.Position, b.HalfExtents)
}

// Speed is the magnitude of the linear velocity.
func (b *RigidBody) Speed() float32 {
	return rl.Vector3Length(b.Velocity)
}

// Forward is the body's local +Z axis in world space.
func (b *RigidBody) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(localForward, b.Orientation)
}

// rotationOwnedByTopple reports whether the topple machine, not the
// integrator, drives this body's orientation.
func (b *RigidBody) rotationOwnedByTopple() bool {
	return b.Topple != nil && b.Topple.State != Upright
}
