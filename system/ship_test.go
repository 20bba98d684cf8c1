package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/vmath"
)

func TestInputRotatesAndThrusts(t *testing.T) {
	w := newPlayingWorld(t)
	ship := SpawnShip(w, false)
	sys := NewInputSystem(w)

	now := w.Resources.Time.RealTime
	w.Resources.Input.Press(engine.IntentRotateRight, now)
	w.Resources.Input.Press(engine.IntentThrust, now)
	sys.Update()

	heading, _ := w.Components.Heading.GetComponent(ship)
	assert.Greater(t, heading.Angle, int64(0))

	player, _ := w.Components.Player.GetComponent(ship)
	assert.True(t, player.Thrusting)

	kin, _ := w.Components.Kinetic.GetComponent(ship)
	assert.Positive(t, kin.VelX, "rotated right, thrust has an eastward part")
	assert.Negative(t, kin.VelY, "mostly upward")
}

func TestInputIdleWhilePaused(t *testing.T) {
	w := newPlayingWorld(t)
	ship := SpawnShip(w, false)
	sys := NewInputSystem(w)

	w.Resources.Input.Press(engine.IntentThrust, w.Resources.Time.RealTime)
	sys.Update()
	w.Resources.State.Set(engine.RegionGame, engine.GamePause)
	w.Resources.Input.Press(engine.IntentRotateLeft, w.Resources.Time.RealTime)
	sys.Update()

	player, _ := w.Components.Player.GetComponent(ship)
	assert.False(t, player.Thrusting)
	heading, _ := w.Components.Heading.GetComponent(ship)
	assert.Zero(t, heading.Angle)
}

func TestInputHoldExpires(t *testing.T) {
	w := newPlayingWorld(t)
	ship := SpawnShip(w, false)
	sys := NewInputSystem(w)

	w.Resources.Input.Press(engine.IntentThrust, w.Resources.Time.RealTime)
	step(w, sys, parameter.KeyHoldWindow+time.Millisecond)

	player, _ := w.Components.Player.GetComponent(ship)
	assert.False(t, player.Thrusting, "no repeat within the hold window releases thrust")
}

func TestCannonCooldown(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnShip(w, false)
	sys := NewCannonSystem(w)

	fire := func() {
		w.Resources.Input.Press(engine.IntentFire, w.Resources.Time.RealTime)
	}
	lasers := func() int {
		return len(w.Query().With(w.Components.Laser).With(w.Components.FromPlayer).Execute())
	}

	fire()
	sys.Update()
	require.Equal(t, 1, lasers())

	fire()
	step(w, sys, 100*time.Millisecond)
	assert.Equal(t, 1, lasers(), "cooldown blocks the second shot")

	fire()
	step(w, sys, 100*time.Millisecond)
	assert.Equal(t, 2, lasers())

	events := drain(w)
	assert.Len(t, ofType(events, event.EventSoundRequest), 2)

	for _, e := range w.Components.Laser.GetAllEntities() {
		kin, _ := w.Components.Kinetic.GetComponent(e)
		assert.Negative(t, kin.VelY, "ship faces up at spawn")
		assert.True(t, w.Components.Lifetime.HasEntity(e))
	}
}

func TestCannonNeedsShip(t *testing.T) {
	w := newPlayingWorld(t)
	sys := NewCannonSystem(w)
	w.Resources.Input.Press(engine.IntentFire, w.Resources.Time.RealTime)
	sys.Update()
	assert.Zero(t, w.Components.Laser.CountEntities())
}

func TestDampeningPerTick(t *testing.T) {
	w := newPlayingWorld(t)
	ship := SpawnShip(w, false)
	kin, _ := w.Components.Kinetic.GetComponent(ship)
	kin.VelX = vmath.FromInt(10)
	w.Components.Kinetic.SetComponent(ship, kin)

	NewDampeningSystem(w).Update()

	kin, _ = w.Components.Kinetic.GetComponent(ship)
	assert.InDelta(t, 9.8, vmath.ToFloat(kin.VelX), 0.001)
}

func TestPlayerRespawnAfterDelay(t *testing.T) {
	w := newPlayingWorld(t)
	sys := NewPlayerSystem(w)
	w.Resources.Player.Shot(w.Resources.Time.GameTime)

	step(w, sys, time.Second)
	assert.Zero(t, w.Components.Player.CountEntities())

	step(w, sys, time.Second)
	ships := w.Components.Player.GetAllEntities()
	require.Len(t, ships, 1)
	assert.True(t, w.Resources.Player.On)
	assert.True(t, w.Components.Blink.HasEntity(ships[0]), "respawned ship is invincible")
	assert.Len(t, ofType(drain(w), event.EventPlayerSpawned), 1)

	step(w, sys, time.Second)
	assert.Equal(t, 1, w.Components.Player.CountEntities())
}

func TestPlayerNoRespawnWithoutLives(t *testing.T) {
	w := newPlayingWorld(t)
	sys := NewPlayerSystem(w)
	w.Resources.Run.Lives = 0
	w.Resources.Player.Shot(w.Resources.Time.GameTime)

	step(w, sys, 5*time.Second)
	assert.Zero(t, w.Components.Player.CountEntities())
}

func TestBlinkTogglesThenEnds(t *testing.T) {
	w := newPlayingWorld(t)
	ship := SpawnShip(w, true)
	sys := NewBlinkSystem(w)

	step(w, sys, parameter.PlayerBlinkPeriod)
	sprite, _ := w.Components.Sprite.GetComponent(ship)
	assert.True(t, sprite.Hidden)

	step(w, sys, parameter.PlayerBlinkPeriod)
	sprite, _ = w.Components.Sprite.GetComponent(ship)
	assert.False(t, sprite.Hidden)

	for i := 0; i < 20; i++ {
		step(w, sys, parameter.PlayerBlinkPeriod)
	}
	sprite, _ = w.Components.Sprite.GetComponent(ship)
	assert.False(t, sprite.Hidden)
	assert.False(t, w.Components.Blink.HasEntity(ship))
	assert.Equal(t, component.SpriteShip, sprite.Kind)
}
