package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateCounter struct {
	BaseComponent
	updates int
}

func (u *updateCounter) Update(float32) { u.updates++ }

// yard builds a small farm scene: a windmill carrying its blades, a car and
// two crates.
func yard() (*Scene, map[string]*GameObject) {
	s := NewScene("yard")
	objs := map[string]*GameObject{}
	for _, o := range []struct {
		name string
		tags []string
	}{
		{"windmill", []string{"decor"}},
		{"windmill-blades", []string{"decor"}},
		{"car", []string{"vehicle"}},
		{"crate-0", []string{"crate", "prop"}},
		{"crate-1", []string{"crate", "prop"}},
	} {
		g := NewGameObject(o.name)
		g.Tags = o.tags
		s.AddGameObject(g)
		objs[o.name] = g
	}
	objs["windmill"].AddChild(objs["windmill-blades"])
	return s, objs
}

func TestScene_AddAndLookup(t *testing.T) {
	s, objs := yard()

	require.Len(t, s.GameObjects, 5)
	for name, g := range objs {
		assert.Same(t, s, g.Scene, name)
		assert.Same(t, g, s.FindByUID(g.UID), name)
	}
	assert.Nil(t, s.FindByUID(0))

	assert.Same(t, objs["car"], s.FindByName("car"))
	assert.Nil(t, s.FindByName("tractor"))

	assert.ElementsMatch(t, []*GameObject{objs["crate-0"], objs["crate-1"]}, s.FindByTag("crate"))
	assert.Empty(t, s.FindByTag("animal"))
}

func TestScene_RemoveTakesChildren(t *testing.T) {
	s, objs := yard()
	windmill, blades := objs["windmill"], objs["windmill-blades"]

	s.RemoveGameObject(windmill)

	assert.Len(t, s.GameObjects, 3)
	assert.Nil(t, s.FindByUID(windmill.UID))
	assert.Nil(t, s.FindByUID(blades.UID))
	assert.Nil(t, windmill.Scene)
	assert.Nil(t, blades.Scene)
	assert.Same(t, objs["car"], s.FindByUID(objs["car"].UID))
}

func TestScene_RemoveKeepsOrder(t *testing.T) {
	s, objs := yard()

	s.RemoveGameObject(objs["car"])

	names := make([]string, 0, len(s.GameObjects))
	for _, g := range s.GameObjects {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"windmill", "windmill-blades", "crate-0", "crate-1"}, names)
}

func TestScene_ZeroValueAcceptsObjects(t *testing.T) {
	var s Scene
	crate := NewGameObject("spawned-crate-1")

	s.AddGameObject(crate)

	assert.Same(t, crate, s.FindByUID(crate.UID))
}

func TestScene_StartOnceAndUpdateActiveOnly(t *testing.T) {
	s, objs := yard()
	starts := &startCounter{}
	objs["car"].AddComponent(starts)
	carUpdates, crateUpdates := &updateCounter{}, &updateCounter{}
	objs["car"].AddComponent(carUpdates)
	objs["crate-0"].AddComponent(crateUpdates)
	objs["crate-0"].Active = false

	s.Start()
	s.Start()
	s.Update(1.0 / 60)
	s.Update(1.0 / 60)

	assert.Equal(t, 1, starts.starts)
	assert.Equal(t, 2, carUpdates.updates)
	assert.Zero(t, crateUpdates.updates)
}
