package system

import (
	"sync/atomic"

	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/status"
)

// StatusSystem publishes run and population gauges to the status registry
type StatusSystem struct {
	world *engine.World

	score     *atomic.Int64
	lives     *atomic.Int64
	level     *atomic.Int64
	best      *atomic.Int64
	asteroids *atomic.Int64
	enemies   *atomic.Int64
	lasers    *atomic.Int64
	dropped   *atomic.Int64
	playing   *atomic.Bool
	app       *status.AtomicString
	game      *status.AtomicString
}

func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &StatusSystem{
		world:     world,
		score:     reg.Ints.Get("run.score"),
		lives:     reg.Ints.Get("run.lives"),
		level:     reg.Ints.Get("run.level"),
		best:      reg.Ints.Get("run.best"),
		asteroids: reg.Ints.Get("entity.asteroids"),
		enemies:   reg.Ints.Get("entity.enemies"),
		lasers:    reg.Ints.Get("entity.lasers"),
		dropped:   reg.Ints.Get("engine.events_dropped"),
		playing:   reg.Bools.Get("state.playing"),
		app:       reg.Strings.Get("state.app"),
		game:      reg.Strings.Get("state.game"),
	}
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Update() {
	run := s.world.Resources.Run
	c := &s.world.Components

	s.score.Store(int64(run.Score))
	s.lives.Store(int64(run.Lives))
	s.level.Store(int64(run.Level))
	s.best.Store(int64(run.Best))
	s.asteroids.Store(int64(c.Asteroid.CountEntities()))
	s.enemies.Store(int64(s.world.Resources.Enemies.Count))
	s.lasers.Store(int64(c.Laser.CountEntities()))
	s.dropped.Store(s.world.Resources.Event.Queue.Dropped())

	state := s.world.Resources.State
	s.playing.Store(state.Playing())
	s.app.Store(state.App())
	s.game.Store(state.Game())
}
