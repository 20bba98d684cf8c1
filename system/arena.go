package system

import (
	"log"
	"time"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/vmath"
)

// ArenaSystem feeds big asteroids in from the edges, spawns split fragments and levels up on a cleared arena
type ArenaSystem struct {
	world *engine.World
	rng   *vmath.FastRand

	nextSpawn time.Time // Game time
	armed     bool      // An asteroid existed since the last level-up
	emptyFor  int       // Consecutive ticks with no asteroids
}

func NewArenaSystem(world *engine.World) engine.System {
	s := &ArenaSystem{
		world: world,
		rng:   newRand(),
	}
	s.Init()
	return s
}

func (s *ArenaSystem) Init() {
	s.nextSpawn = time.Time{}
	s.armed = false
	s.emptyFor = 0
}

func (s *ArenaSystem) Priority() int {
	return parameter.PriorityArena
}

func (s *ArenaSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
		event.EventAsteroidSpawn,
	}
}

func (s *ArenaSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameStart:
		s.Init()
		s.spawnWave()

	case event.EventAsteroidSpawn:
		if !s.world.Resources.State.InArena() {
			return
		}
		if p, ok := ev.Payload.(*event.AsteroidSpawnPayload); ok {
			SpawnAsteroid(s.world, p.Size, p.X, p.Y, p.VelX, p.VelY)
			s.armed = true
		}
	}
}

func (s *ArenaSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	now := s.world.Resources.Time.GameTime
	count := s.world.Components.Asteroid.CountEntities()

	// Split fragments arrive as events on the next tick, a single empty tick is not a clear
	if count == 0 {
		s.emptyFor++
	} else {
		s.emptyFor = 0
	}
	if s.emptyFor >= 2 && s.armed {
		run := s.world.Resources.Run
		run.Level++
		s.armed = false
		s.emptyFor = 0
		log.Printf("level %d", run.Level)
		s.world.PushEvent(event.EventLevelUp, nil)
		s.spawnWave()
		return
	}

	if s.nextSpawn.IsZero() {
		s.nextSpawn = now.Add(s.interval())
		return
	}
	if now.Before(s.nextSpawn) {
		return
	}
	s.nextSpawn = now.Add(s.interval())
	if count < s.world.Resources.Config.MaxAsteroids {
		s.spawnEdge()
	}
}

// interval shortens with level down to the minimum
func (s *ArenaSystem) interval() time.Duration {
	level := s.world.Resources.Run.Level
	if level < 1 {
		level = 1
	}
	d := parameter.AsteroidSpawnInterval - time.Duration(level-1)*parameter.AsteroidSpawnStep
	if d < parameter.AsteroidMinSpawnInterval {
		d = parameter.AsteroidMinSpawnInterval
	}
	return d
}

// spawnWave drops level+1 big asteroids at once
func (s *ArenaSystem) spawnWave() {
	n := s.world.Resources.Run.Level + 1
	limit := s.world.Resources.Config.MaxAsteroids - s.world.Components.Asteroid.CountEntities()
	if n > limit {
		n = limit
	}
	for i := 0; i < n; i++ {
		s.spawnEdge()
	}
}

// spawnEdge places a big asteroid on a random arena edge drifting in a random direction
func (s *ArenaSystem) spawnEdge() core.Entity {
	w, h := s.world.Resources.Arena.PreciseSize()
	var x, y int64
	switch s.rng.Intn(4) {
	case 0:
		x, y = s.rng.Range(0, w), 0
	case 1:
		x, y = s.rng.Range(0, w), h-vmath.Scale
	case 2:
		x, y = 0, s.rng.Range(0, h)
	default:
		x, y = w-vmath.Scale, s.rng.Range(0, h)
	}
	vx, vy := randomVelocity(s.rng, parameter.AsteroidMinSpeed, parameter.AsteroidMaxSpeed, parameter.AsteroidSpeedFactor(parameter.AsteroidBig))
	s.armed = true
	return SpawnAsteroid(s.world, parameter.AsteroidBig, x, y, vx, vy)
}
