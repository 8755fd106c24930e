package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Impact describes a contact that received a normal impulse.
type Impact struct {
	A, B    Handle
	Normal  rl.Vector3 // from A toward B
	Impulse float32    // normal impulse magnitude

	// Prop is the toppleable body involved, or NoHandle. Impactor is the
	// other body and ImpactorVelocity its velocity before the impulse.
	// When both bodies are toppleable the slower one is the prop; on a tie
	// it is A.
	Prop             Handle
	Impactor         Handle
	ImpactorVelocity rl.Vector3
}

// Resolve separates an overlapping pair and exchanges momentum between them.
// It returns an Impact when the bodies were closing and an impulse was
// applied. Static bodies are never moved or given velocity.
func Resolve(a, b *RigidBody, c Contact, cfg Config) (Impact, bool) {
	invA, invB := a.InverseMass, b.InverseMass
	totalInv := invA + invB
	if totalInv == 0 {
		return Impact{}, false
	}
	n := c.Normal

	// Positional correction, split by inverse mass share.
	if corr := c.Depth - cfg.Slop; corr > 0 {
		if a.IsDynamic() {
			a.Position = rl.Vector3Subtract(a.Position, rl.Vector3Scale(n, corr*invA/totalInv))
		}
		if b.IsDynamic() {
			b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(n, corr*invB/totalInv))
		}
	}

	velA, velB := a.Velocity, b.Velocity
	rel := rl.Vector3Subtract(velB, velA)
	vn := rl.Vector3DotProduct(rel, n)
	if vn >= 0 {
		return Impact{}, false
	}

	j := -(1 + cfg.Restitution) * vn / totalInv
	impulse := rl.Vector3Scale(n, j)
	if a.IsDynamic() {
		a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(impulse, invA))
	}
	if b.IsDynamic() {
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, invB))
	}

	applyFriction(a, b, n, j, totalInv, cfg)

	impact := Impact{
		A:        c.A,
		B:        c.B,
		Normal:   n,
		Impulse:  j,
		Prop:     NoHandle,
		Impactor: NoHandle,
	}
	switch {
	case a.IsToppleable() && b.IsToppleable():
		if rl.Vector3LengthSqr(velA) <= rl.Vector3LengthSqr(velB) {
			impact.Prop, impact.Impactor, impact.ImpactorVelocity = c.A, c.B, velB
		} else {
			impact.Prop, impact.Impactor, impact.ImpactorVelocity = c.B, c.A, velA
		}
	case a.IsToppleable():
		impact.Prop, impact.Impactor, impact.ImpactorVelocity = c.A, c.B, velB
	case b.IsToppleable():
		impact.Prop, impact.Impactor, impact.ImpactorVelocity = c.B, c.A, velA
	}
	return impact, true
}

// applyFriction removes tangential relative velocity, bounded by the
// Coulomb cone friction*j.
func applyFriction(a, b *RigidBody, n rl.Vector3, j, totalInv float32, cfg Config) {
	rel := rl.Vector3Subtract(b.Velocity, a.Velocity)
	tangent := rl.Vector3Subtract(rel, rl.Vector3Scale(n, rl.Vector3DotProduct(rel, n)))
	tLen := rl.Vector3Length(tangent)
	if tLen <= cfg.FrictionEpsilon {
		return
	}
	t := rl.Vector3Scale(tangent, 1/tLen)

	limit := cfg.Friction * j
	jt := clamp(-rl.Vector3DotProduct(rel, t)/totalInv, -limit, limit)
	frictionImpulse := rl.Vector3Scale(t, jt)

	if a.IsDynamic() {
		a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(frictionImpulse, a.InverseMass))
	}
	if b.IsDynamic() {
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(frictionImpulse, b.InverseMass))
	}
}
