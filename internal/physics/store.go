package physics

// Store owns every rigid body in a dense slice. Scene objects refer to their
// body by Handle only.
type Store struct {
	bodies []RigidBody
}

// Add validates def and appends the resulting body.
func (s *Store) Add(def BodyDef) (Handle, error) {
	b, err := NewBody(def)
	if err != nil {
		return NoHandle, err
	}
	s.bodies = append(s.bodies, b)
	return Handle(len(s.bodies) - 1), nil
}

// Get returns the body for h, or nil for an unknown handle. The pointer is
// invalidated by the next Add.
func (s *Store) Get(h Handle) *RigidBody {
	if h < 0 || int(h) >= len(s.bodies) {
		return nil
	}
	return &s.bodies[h]
}

func (s *Store) Len() int { return len(s.bodies) }

// Bodies exposes the backing slice; index i holds Handle(i).
func (s *Store) Bodies() []RigidBody { return s.bodies }

// Reset drops every body. Outstanding handles become invalid.
func (s *Store) Reset() {
	s.bodies = s.bodies[:0]
}
