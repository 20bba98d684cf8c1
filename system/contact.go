package system

import (
	"sync/atomic"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/vmath"
)

// ContactSystem resolves laser, asteroid, enemy and ship overlaps
type ContactSystem struct {
	world *engine.World
	rng   *vmath.FastRand

	// Per-tick scratch
	destroyed map[core.Entity]bool

	statAsteroids *atomic.Int64
	statEnemies   *atomic.Int64
	statShips     *atomic.Int64
}

func NewContactSystem(world *engine.World) engine.System {
	s := &ContactSystem{
		world:     world,
		rng:       newRand(),
		destroyed: make(map[core.Entity]bool),
	}
	s.statAsteroids = world.Resources.Status.Ints.Get("contact.asteroids")
	s.statEnemies = world.Resources.Status.Ints.Get("contact.enemies")
	s.statShips = world.Resources.Status.Ints.Get("contact.ships")
	return s
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

func (s *ContactSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}
	clear(s.destroyed)

	c := &s.world.Components
	playerLasers := s.world.Query().With(c.Laser).With(c.FromPlayer).Execute()
	asteroids := c.Asteroid.GetAllEntities()
	enemies := c.Enemy.GetAllEntities()

	for _, laser := range playerLasers {
		lk, lr, ok := s.body(laser)
		if !ok {
			continue
		}
		if target := s.firstHit(lk, lr, asteroids); target != 0 {
			s.laserOnAsteroid(laser, target)
			continue
		}
		if target := s.firstHit(lk, lr, enemies); target != 0 {
			s.laserOnEnemy(laser, target)
		}
	}

	for _, ship := range c.Player.GetAllEntities() {
		if s.destroyed[ship] || c.Blink.HasEntity(ship) {
			continue
		}
		sk, sr, ok := s.body(ship)
		if !ok {
			continue
		}
		if s.firstHit(sk, sr, asteroids) != 0 {
			s.shipHit(ship, sk)
			continue
		}
		enemyLasers := s.world.Query().With(c.Laser).With(c.FromEnemy).Execute()
		if laser := s.firstHit(sk, sr, enemyLasers); laser != 0 {
			s.destroy(laser)
			s.shipHit(ship, sk)
		}
	}
}

// body returns kinetic state and collider radius of a live entity
func (s *ContactSystem) body(e core.Entity) (core.Kinetic, int64, bool) {
	if s.destroyed[e] {
		return core.Kinetic{}, 0, false
	}
	kin, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return core.Kinetic{}, 0, false
	}
	col, _ := s.world.Components.Collider.GetComponent(e)
	return kin.Kinetic, col.Radius, true
}

// firstHit returns the first live candidate overlapping the body, 0 when none
func (s *ContactSystem) firstHit(k core.Kinetic, radius int64, candidates []core.Entity) core.Entity {
	for _, e := range candidates {
		ck, cr, ok := s.body(e)
		if !ok {
			continue
		}
		if physics.Overlap(&k, &ck, radius, cr, aspect) {
			return e
		}
	}
	return 0
}

func (s *ContactSystem) laserOnAsteroid(laser, asteroid core.Entity) {
	ast, _ := s.world.Components.Asteroid.GetComponent(asteroid)
	kin, _ := s.world.Components.Kinetic.GetComponent(asteroid)

	s.destroy(laser)
	s.destroy(asteroid)

	s.world.PushEvent(event.EventScore, &event.ScorePayload{Points: parameter.AsteroidScore(ast.Size)})
	s.world.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{
		Kind: core.ExplosionLaserOnAsteroid, X: kin.PreciseX, Y: kin.PreciseY,
	})
	s.statAsteroids.Add(1)

	if ast.Size == parameter.AsteroidSmall {
		return
	}
	fragment := ast.Size - 1
	for i := 0; i < parameter.AsteroidSplitCount; i++ {
		vx, vy := randomVelocity(s.rng, parameter.AsteroidMinSpeed, parameter.AsteroidMaxSpeed, parameter.AsteroidSpeedFactor(fragment))
		s.world.PushEvent(event.EventAsteroidSpawn, &event.AsteroidSpawnPayload{
			Size: fragment, X: kin.PreciseX, Y: kin.PreciseY, VelX: vx, VelY: vy,
		})
	}
}

func (s *ContactSystem) laserOnEnemy(laser, enemy core.Entity) {
	kin, _ := s.world.Components.Kinetic.GetComponent(enemy)

	s.destroy(laser)
	s.destroy(enemy)
	if s.world.Resources.Enemies.Count > 0 {
		s.world.Resources.Enemies.Count--
	}

	s.world.PushEvent(event.EventScore, &event.ScorePayload{Points: parameter.EnemyScore})
	s.world.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{
		Kind: core.ExplosionEnemy, X: kin.PreciseX, Y: kin.PreciseY,
	})
	s.statEnemies.Add(1)
}

// shipHit costs a life; the last one ends the run
func (s *ContactSystem) shipHit(ship core.Entity, k core.Kinetic) {
	run := s.world.Resources.Run

	s.destroy(ship)
	s.world.Resources.Player.Shot(s.world.Resources.Time.GameTime)
	if run.Lives > 0 {
		run.Lives--
	}
	s.statShips.Add(1)

	kind := core.ExplosionShipContact
	if run.Lives <= 0 {
		kind = core.ExplosionShipDead
	}
	s.world.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{Kind: kind, X: k.PreciseX, Y: k.PreciseY})
	s.world.PushEvent(event.EventPlayerHit, nil)
	if run.Lives <= 0 {
		s.world.PushEvent(event.EventGameOver, nil)
	}
}

func (s *ContactSystem) destroy(e core.Entity) {
	s.destroyed[e] = true
	s.world.DestroyEntity(e)
}
