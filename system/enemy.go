package system

import (
	"time"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/vmath"
)

// EnemySystem spawns enemy formations, flies them along their pivot ellipse and fires their lasers
type EnemySystem struct {
	world *engine.World
	rng   *vmath.FastRand

	nextSpawn time.Time // Game time
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{
		world: world,
		rng:   newRand(),
	}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.nextSpawn = time.Time{}
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameStart}
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameStart {
		s.Init()
	}
}

func (s *EnemySystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	now := s.world.Resources.Time.GameTime
	if s.nextSpawn.IsZero() {
		s.nextSpawn = now.Add(parameter.EnemySpawnInterval)
	} else if !now.Before(s.nextSpawn) {
		s.nextSpawn = now.Add(parameter.EnemySpawnInterval)
		s.spawnFormation(now)
	}

	s.move()
	s.fire(now)
}

// spawnFormation adds up to MaxFormationMembers enemies sharing one pivot, within the MaxEnemies cap
func (s *EnemySystem) spawnFormation(now time.Time) {
	cfg := s.world.Resources.Config
	active := s.world.Resources.Enemies
	members := cfg.MaxEnemies - active.Count
	if members > cfg.MaxFormationMembers {
		members = cfg.MaxFormationMembers
	}
	if members <= 0 {
		return
	}

	w, h := s.world.Resources.Arena.PreciseSize()
	pivotX := s.rng.Range(w/4, w*3/4)
	pivotY := s.rng.Range(vmath.Mul(h, vmath.FromFloat(parameter.EnemyPivotTopRatio)), vmath.Mul(h, vmath.FromFloat(parameter.EnemyPivotBottomRatio)))
	radiusX := s.rng.Range(w/10, w/5)
	radiusY := s.rng.Range(h/16, h/8)
	angular := vmath.FromFloat(parameter.EnemyAngularSpeed)
	if s.rng.Intn(2) == 0 {
		angular = -angular
	}
	startX := s.rng.Range(0, w)
	startY := -vmath.FromInt(2)
	phase := int64(s.rng.Next() & vmath.Mask)

	for i := 0; i < members; i++ {
		e := s.world.CreateEntity()
		angle := vmath.WrapAngle(phase + int64(i)*(vmath.Scale/int64(members)))
		s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{Kinetic: core.Kinetic{PreciseX: startX, PreciseY: startY}})
		s.world.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: vmath.FromFloat(parameter.EnemyRadius)})
		s.world.Components.Enemy.SetComponent(e, component.EnemyComponent{NextFire: now.Add(parameter.EnemyFireInterval)})
		s.world.Components.Formation.SetComponent(e, component.FormationComponent{
			StartX: startX, StartY: startY,
			PivotX: pivotX, PivotY: pivotY,
			RadiusX: radiusX, RadiusY: radiusY,
			Angle:        angle,
			AngularSpeed: angular,
		})
		s.world.Components.Sprite.SetComponent(e, component.SpriteComponent{Kind: component.SpriteEnemy})
		s.world.Components.ForState.SetComponent(e, gameplayTag())
		active.Count++
	}
}

// move advances each enemy on its ellipse, flying in from the start point until joined
func (s *EnemySystem) move() {
	dt := dtFixed(s.world.Resources.Time.DeltaTime)
	approach := vmath.Mul(vmath.FromFloat(parameter.EnemyApproachSpeed), dt)

	for _, e := range s.world.Components.Formation.GetAllEntities() {
		f, ok := s.world.Components.Formation.GetComponent(e)
		if !ok {
			continue
		}
		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		f.Angle = vmath.WrapAngle(f.Angle + vmath.Mul(f.AngularSpeed, dt))
		tx, ty := FormationPoint(f)

		if f.Joined {
			kin.PreciseX, kin.PreciseY = tx, ty
		} else {
			dx, dy := tx-kin.PreciseX, ty-kin.PreciseY
			dist := vmath.Magnitude(dx, dy)
			if dist <= approach {
				kin.PreciseX, kin.PreciseY = tx, ty
				f.Joined = true
			} else {
				nx, ny := vmath.Normalize2D(dx, dy)
				kin.PreciseX += vmath.Mul(nx, approach)
				kin.PreciseY += vmath.Mul(ny, approach)
			}
		}
		kin.VelX, kin.VelY = 0, 0

		s.world.Components.Formation.SetComponent(e, f)
		s.world.Components.Kinetic.SetComponent(e, kin)
	}
}

// fire shoots one laser straight down from each enemy per elapsed fire interval
func (s *EnemySystem) fire(now time.Time) {
	speed := vmath.Mul(vmath.FromFloat(parameter.EnemyLaserSpeed), aspect)

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		enemy, ok := s.world.Components.Enemy.GetComponent(e)
		if !ok || now.Before(enemy.NextFire) {
			continue
		}
		enemy.NextFire = now.Add(parameter.EnemyFireInterval)
		s.world.Components.Enemy.SetComponent(e, enemy)

		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		spawnLaser(s.world, core.Kinetic{
			PreciseX: kin.PreciseX,
			PreciseY: kin.PreciseY + vmath.Scale,
			VelY:     speed,
		}, false)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundEnemyLaser})
	}
}

// FormationPoint returns the ellipse position for a formation's current angle
func FormationPoint(f component.FormationComponent) (x, y int64) {
	return f.PivotX + vmath.Mul(f.RadiusX, vmath.Cos(f.Angle)),
		f.PivotY + vmath.Mul(f.RadiusY, vmath.Sin(f.Angle))
}
