package engine

// GameObjectRef is a weak reference to a GameObject by UID. It survives the
// target being removed from the scene: Get then returns nil instead of a
// stale pointer.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or an empty one for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference in scene. Returns nil for an empty reference,
// a nil scene or an object that is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// It does not check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
