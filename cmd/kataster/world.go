package main

import (
	"github.com/lixenwraith/kataster/config"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/status"
)

// newWorld creates a world with every core resource registered from cfg
// Services add their bridged resources before engine.BindResources is called
func newWorld(cfg *config.Config, clock *engine.PausableClock, reg *status.Registry) *engine.World {
	w := engine.NewWorld()
	rs := w.ResourceStore

	engine.AddResource(rs, &engine.TimeResource{
		GameTime:  clock.Now(),
		RealTime:  clock.RealTime(),
		DeltaTime: cfg.TickInterval(),
	})
	engine.AddResource(rs, &engine.ArenaResource{Width: cfg.Arena.Width, Height: cfg.Arena.Height})
	engine.AddResource(rs, configResource(cfg))
	engine.AddResource(rs, engine.NewStateResource())
	engine.AddResource(rs, engine.NewInputResource(parameter.KeyHoldWindow))
	engine.AddResource(rs, &engine.RunStateResource{})
	engine.AddResource(rs, &engine.PlayerStateResource{})
	engine.AddResource(rs, &engine.ActiveEnemiesResource{})
	engine.AddResource(rs, &engine.EventQueueResource{Queue: event.NewEventQueue()})
	engine.AddResource(rs, reg)

	return w
}

func configResource(cfg *config.Config) *engine.ConfigResource {
	return &engine.ConfigResource{
		StartLives:          cfg.Game.Lives,
		RespawnDelay:        cfg.Game.RespawnDelay,
		MaxEnemies:          cfg.Game.MaxEnemies,
		MaxFormationMembers: cfg.Game.MaxFormationMembers,
		MaxAsteroids:        cfg.Game.MaxAsteroids,
	}
}
