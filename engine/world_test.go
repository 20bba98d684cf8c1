package engine

import (
	"testing"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[component.ColliderComponent]()
	s.SetComponent(1, component.ColliderComponent{Radius: 10})
	s.SetComponent(2, component.ColliderComponent{Radius: 20})
	s.SetComponent(1, component.ColliderComponent{Radius: 15})

	if s.CountEntities() != 2 {
		t.Fatalf("count = %d, want 2", s.CountEntities())
	}
	if c, ok := s.GetComponent(1); !ok || c.Radius != 15 {
		t.Errorf("entity 1 = %+v, %v", c, ok)
	}

	s.RemoveEntity(1)
	if s.HasEntity(1) {
		t.Error("entity 1 should be removed")
	}
	if got := s.GetAllEntities(); len(got) != 1 || got[0] != 2 {
		t.Errorf("remaining = %v", got)
	}

	s.ClearAllComponents()
	if s.CountEntities() != 0 {
		t.Error("store should be empty")
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	c := w.Components

	var lasers []core.Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		c.Laser.SetComponent(e, component.LaserComponent{})
		c.Kinetic.SetComponent(e, component.KineticComponent{})
		if i%2 == 0 {
			c.FromPlayer.SetComponent(e, component.FromPlayerComponent{})
			lasers = append(lasers, e)
		} else {
			c.FromEnemy.SetComponent(e, component.FromEnemyComponent{})
		}
	}

	got := w.Query().With(c.Laser).With(c.Kinetic).With(c.FromPlayer).Execute()
	if len(got) != len(lasers) {
		t.Fatalf("query returned %d entities, want %d", len(got), len(lasers))
	}
	for _, e := range got {
		if !c.FromPlayer.HasEntity(e) {
			t.Errorf("entity %d lacks FromPlayer", e)
		}
	}

	if len(w.Query().Execute()) != 0 {
		t.Error("empty query should return nothing")
	}
}

func TestQueryPanicsAfterExecute(t *testing.T) {
	w := NewWorld()
	q := w.Query().With(w.Components.Laser)
	q.Execute()

	defer func() {
		if recover() == nil {
			t.Error("With after Execute should panic")
		}
	}()
	q.With(w.Components.Kinetic)
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Components.Player.SetComponent(e, component.PlayerComponent{})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{Kind: component.SpriteShip})

	w.DestroyEntity(e)
	if w.HasAnyComponent(e) {
		t.Error("entity should have no components after destroy")
	}
}

func TestClearResetsIDs(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	e := w.CreateEntity()
	w.Components.Asteroid.SetComponent(e, component.AsteroidComponent{})

	w.Clear()
	if w.Components.Asteroid.CountEntities() != 0 {
		t.Error("stores should be cleared")
	}
	if id := w.CreateEntity(); id != 1 {
		t.Errorf("first id after Clear = %d, want 1", id)
	}
}

type orderSystem struct {
	priority int
	log      *[]int
}

func (s *orderSystem) Update()       { *s.log = append(*s.log, s.priority) }
func (s *orderSystem) Priority() int { return s.priority }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []int
	for _, p := range []int{30, 10, 20, 5} {
		w.AddSystem(&orderSystem{priority: p, log: &log})
	}

	w.Update()
	want := []int{5, 10, 20, 30}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("order = %v, want %v", log, want)
		}
	}
}

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()
	AddResource(rs, &ArenaResource{Width: 10, Height: 5})

	arena, ok := GetResource[*ArenaResource](rs)
	if !ok || arena.Width != 10 {
		t.Fatalf("GetResource = %+v, %v", arena, ok)
	}
	if _, ok := GetResource[*TimeResource](rs); ok {
		t.Error("unregistered resource should be missing")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGetResource should panic on missing resource")
		}
	}()
	MustGetResource[*TimeResource](rs)
}
