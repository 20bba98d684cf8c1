package system

import (
	"time"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/vmath"
)

// gameplayTag keeps arena entities alive only while the app is in Game
func gameplayTag() component.ForStateComponent {
	return component.ForStateComponent{Region: engine.RegionApp, States: []string{engine.AppGame}}
}

// aspect is the vertical scale applied to motion on non-square cells
var aspect = vmath.FromFloat(parameter.CellAspect)

// dtFixed converts a tick delta to Q32.32 seconds
func dtFixed(dt time.Duration) int64 {
	return vmath.FromFloat(dt.Seconds())
}

// SpawnShip places the player ship at the arena centre, invincible and blinking when blink is set
func SpawnShip(w *engine.World, blink bool) core.Entity {
	cx, cy := w.Resources.Arena.Center()
	now := w.Resources.Time.GameTime

	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Kinetic: core.Kinetic{PreciseX: cx, PreciseY: cy}})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: vmath.FromFloat(parameter.PlayerRadius)})
	w.Components.Heading.SetComponent(e, component.HeadingComponent{})
	w.Components.Speed.SetComponent(e, component.SpeedComponent{Value: vmath.FromFloat(parameter.LaserSpeed)})
	w.Components.Player.SetComponent(e, component.PlayerComponent{})
	w.Components.PlayerReadyFire.SetComponent(e, component.PlayerReadyFireComponent{Ready: true})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{Kind: component.SpriteShip})
	w.Components.ForState.SetComponent(e, gameplayTag())
	if blink {
		w.Components.Blink.SetComponent(e, component.BlinkComponent{
			Until:      now.Add(parameter.PlayerInvincibleDuration),
			NextToggle: now.Add(parameter.PlayerBlinkPeriod),
		})
	}

	w.Resources.Player.Spawned()
	return e
}

// SpawnAsteroid creates an asteroid of the given size with position and velocity in Q32.32
func SpawnAsteroid(w *engine.World, size parameter.AsteroidSize, x, y, vx, vy int64) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Kinetic: core.Kinetic{
		PreciseX: x, PreciseY: y, VelX: vx, VelY: vy,
	}})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: vmath.FromFloat(parameter.AsteroidRadius(size))})
	w.Components.Asteroid.SetComponent(e, component.AsteroidComponent{Size: size})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{Kind: asteroidSprite(size)})
	w.Components.ForState.SetComponent(e, gameplayTag())
	return e
}

func asteroidSprite(size parameter.AsteroidSize) component.SpriteKind {
	switch size {
	case parameter.AsteroidBig:
		return component.SpriteAsteroidBig
	case parameter.AsteroidMedium:
		return component.SpriteAsteroidMedium
	default:
		return component.SpriteAsteroidSmall
	}
}

// spawnLaser creates a projectile; fromPlayer selects the owner marker and sprite
func spawnLaser(w *engine.World, k core.Kinetic, fromPlayer bool) core.Entity {
	e := w.CreateEntity()
	k.AccelX, k.AccelY = 0, 0
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{Kinetic: k})
	w.Components.Collider.SetComponent(e, component.ColliderComponent{Radius: vmath.FromFloat(parameter.LaserRadius)})
	w.Components.Laser.SetComponent(e, component.LaserComponent{})
	w.Components.Lifetime.SetComponent(e, component.LifetimeComponent{
		Expires: w.Resources.Time.GameTime.Add(parameter.LaserLifetime),
	})
	if fromPlayer {
		w.Components.FromPlayer.SetComponent(e, component.FromPlayerComponent{})
		w.Components.Sprite.SetComponent(e, component.SpriteComponent{Kind: component.SpritePlayerLaser})
	} else {
		w.Components.FromEnemy.SetComponent(e, component.FromEnemyComponent{})
		w.Components.Sprite.SetComponent(e, component.SpriteComponent{Kind: component.SpriteEnemyLaser})
	}
	w.Components.ForState.SetComponent(e, gameplayTag())
	return e
}

// randomVelocity returns a velocity in a random direction with speed in [min, max) scaled by factor
func randomVelocity(rng *vmath.FastRand, minSpeed, maxSpeed, factor float64) (vx, vy int64) {
	var k core.Kinetic
	angle := int64(rng.Next() & vmath.Mask)
	speed := vmath.Mul(rng.Range(vmath.FromFloat(minSpeed), vmath.FromFloat(maxSpeed)), vmath.FromFloat(factor))
	physics.Launch(&k, angle, speed, aspect, 0, 0)
	return k.VelX, k.VelY
}

// newRand seeds a generator from the wall clock
func newRand() *vmath.FastRand {
	return vmath.NewFastRand(uint64(time.Now().UnixNano()))
}
