package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kataster/asset"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
)

func newGame(t *testing.T) (*engine.World, *engine.ClockScheduler, *engine.PausableClock) {
	t.Helper()
	w, clock := engine.NewTestWorld(parameter.DefaultArenaWidth, parameter.DefaultArenaHeight)
	sched, _ := engine.NewClockScheduler(w, clock, parameter.TimeStep, nil)

	RegisterSystems(w)
	sched.RegisterSystemHandlers()
	require.NoError(t, sched.LoadFSM(asset.DefaultStateConfig, "", RegisterFSMComponents(clock)))
	return w, sched, clock
}

func TestStartMenuOnBoot(t *testing.T) {
	w, sched, _ := newGame(t)

	assert.Equal(t, engine.AppStartMenu, w.Resources.State.App())
	assert.Equal(t, engine.GameInvalid, w.Resources.State.Game())
	assert.True(t, sched.FSM().InState(engine.RegionApp, engine.AppStartMenu))
	assert.Greater(t, w.Components.UIText.CountEntities(), 0)
}

func TestGameLifecycle(t *testing.T) {
	w, sched, clock := newGame(t)
	menuTexts := w.Components.UIText.CountEntities()

	// Start: app enters Game this tick, game region follows on GameStart next tick
	w.PushEvent(event.EventMenuConfirm, nil)
	sched.Step()
	assert.Equal(t, engine.AppGame, w.Resources.State.App())
	assert.Equal(t, 1, w.Components.Player.CountEntities())
	assert.Equal(t, 3, w.Components.UIText.CountEntities(), "menu replaced by HUD")

	sched.Step()
	require.True(t, w.Resources.State.Playing())
	assert.Equal(t, 2, w.Components.Asteroid.CountEntities(), "first wave")

	// Pause freezes game time
	w.PushEvent(event.EventPauseToggle, nil)
	sched.Step()
	assert.Equal(t, engine.GamePause, w.Resources.State.Game())
	assert.True(t, clock.IsPaused())
	assert.Equal(t, 5, w.Components.UIText.CountEntities())

	w.PushEvent(event.EventPauseToggle, nil)
	sched.Step()
	assert.Equal(t, engine.GameRunning, w.Resources.State.Game())
	assert.False(t, clock.IsPaused())
	assert.Equal(t, 3, w.Components.UIText.CountEntities(), "pause overlay gone")

	// Pause then back to the menu
	w.PushEvent(event.EventPauseToggle, nil)
	sched.Step()
	w.PushEvent(event.EventMenuConfirm, nil)
	sched.Step()
	assert.Equal(t, engine.GameInvalid, w.Resources.State.Game())
	assert.False(t, clock.IsPaused())

	sched.Step()
	assert.Equal(t, engine.AppStartMenu, w.Resources.State.App())
	assert.Zero(t, w.Components.Player.CountEntities())
	assert.Zero(t, w.Components.Asteroid.CountEntities())
	assert.Equal(t, menuTexts, w.Components.UIText.CountEntities())
}

func TestGameOverFlow(t *testing.T) {
	w, sched, _ := newGame(t)
	w.PushEvent(event.EventMenuConfirm, nil)
	sched.Step()
	sched.Step()
	require.True(t, w.Resources.State.Playing())

	w.Resources.Run.AddScore(420)
	w.Resources.Run.Lives = 0
	w.PushEvent(event.EventGameOver, nil)
	sched.Step()
	assert.Equal(t, engine.GameGameOver, w.Resources.State.Game())
	assert.True(t, w.Resources.Run.Recorded)

	// Confirm is ignored until the game over screen has been up a moment
	w.PushEvent(event.EventMenuConfirm, nil)
	sched.Step()
	assert.Equal(t, engine.GameGameOver, w.Resources.State.Game())

	for i := 0; i < 60; i++ {
		sched.Step()
	}
	w.PushEvent(event.EventMenuConfirm, nil)
	sched.Step()
	assert.Equal(t, engine.GameInvalid, w.Resources.State.Game())
	sched.Step()
	assert.Equal(t, engine.AppStartMenu, w.Resources.State.App())
	assert.Equal(t, 420, w.Resources.Run.Best)
}
