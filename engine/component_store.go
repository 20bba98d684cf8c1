package engine

import (
	"github.com/lixenwraith/kataster/component"
)

// ComponentStore provides cached pointers to typed component stores
type ComponentStore struct {
	// Physics
	Kinetic  *Store[component.KineticComponent]
	Collider *Store[component.ColliderComponent]
	Heading  *Store[component.HeadingComponent]
	Speed    *Store[component.SpeedComponent]
	Lifetime *Store[component.LifetimeComponent]

	// Ship
	Player          *Store[component.PlayerComponent]
	PlayerReadyFire *Store[component.PlayerReadyFireComponent]

	// Projectiles
	Laser      *Store[component.LaserComponent]
	FromPlayer *Store[component.FromPlayerComponent]
	FromEnemy  *Store[component.FromEnemyComponent]

	// Hostiles
	Asteroid  *Store[component.AsteroidComponent]
	Enemy     *Store[component.EnemyComponent]
	Formation *Store[component.FormationComponent]

	// Visual
	Sprite           *Store[component.SpriteComponent]
	Blink            *Store[component.BlinkComponent]
	Explosion        *Store[component.ExplosionComponent]
	ExplosionToSpawn *Store[component.ExplosionToSpawnComponent]

	// UI
	ForState *Store[component.ForStateComponent]
	UIText   *Store[component.UITextComponent]
}

// initComponentStores creates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Kinetic:  register(w, NewStore[component.KineticComponent]()),
		Collider: register(w, NewStore[component.ColliderComponent]()),
		Heading:  register(w, NewStore[component.HeadingComponent]()),
		Speed:    register(w, NewStore[component.SpeedComponent]()),
		Lifetime: register(w, NewStore[component.LifetimeComponent]()),

		Player:          register(w, NewStore[component.PlayerComponent]()),
		PlayerReadyFire: register(w, NewStore[component.PlayerReadyFireComponent]()),

		Laser:      register(w, NewStore[component.LaserComponent]()),
		FromPlayer: register(w, NewStore[component.FromPlayerComponent]()),
		FromEnemy:  register(w, NewStore[component.FromEnemyComponent]()),

		Asteroid:  register(w, NewStore[component.AsteroidComponent]()),
		Enemy:     register(w, NewStore[component.EnemyComponent]()),
		Formation: register(w, NewStore[component.FormationComponent]()),

		Sprite:           register(w, NewStore[component.SpriteComponent]()),
		Blink:            register(w, NewStore[component.BlinkComponent]()),
		Explosion:        register(w, NewStore[component.ExplosionComponent]()),
		ExplosionToSpawn: register(w, NewStore[component.ExplosionToSpawnComponent]()),

		ForState: register(w, NewStore[component.ForStateComponent]()),
		UIText:   register(w, NewStore[component.UITextComponent]()),
	}
}

func register[T any](w *World, s *Store[T]) *Store[T] {
	w.stores = append(w.stores, s)
	return s
}
