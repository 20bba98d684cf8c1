package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kataster/config"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/status"
)

func TestNewWorldFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Width, cfg.Arena.Height = 60, 24
	cfg.Game.Lives = 5
	cfg.Game.MaxAsteroids = 7
	cfg.TickRate = 50

	w := newWorld(cfg, engine.NewPausableClock(), status.NewRegistry())
	engine.BindResources(w)

	assert.Equal(t, 60, w.Resources.Arena.Width)
	assert.Equal(t, 24, w.Resources.Arena.Height)
	assert.Equal(t, 5, w.Resources.Config.StartLives)
	assert.Equal(t, 7, w.Resources.Config.MaxAsteroids)
	assert.Equal(t, 20*time.Millisecond, w.Resources.Time.DeltaTime)
	assert.Equal(t, engine.AppStartMenu, w.Resources.State.App())

	// No services ran: bridged resources fall back to silent stand-ins
	assert.False(t, w.Resources.Audio.Play(0))
	assert.Zero(t, w.Resources.Score.Best())
}

func TestApplyFlag(t *testing.T) {
	cfg := config.Default()
	*metricsFlag = ":9999"
	*muteFlag = true
	*dbFlag = "scores.db"
	t.Cleanup(func() {
		*metricsFlag, *muteFlag, *dbFlag = "", false, ""
	})

	applyFlag(cfg, "mute")
	assert.True(t, cfg.Audio.Muted)
	assert.Empty(t, cfg.Metrics.Addr, "unset flags leave config alone")

	applyFlag(cfg, "metrics-addr")
	applyFlag(cfg, "db")
	assert.Equal(t, ":9999", cfg.Metrics.Addr)
	assert.Equal(t, "scores.db", cfg.Score.Path)
}

func TestFlagsOverrideFileSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kataster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("states: custom.yaml\ndebug: true\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", cfg.States, "file setting reaches config")
	assert.True(t, cfg.Debug)

	*statesFlag = "other.yaml"
	*debugFlag = false
	t.Cleanup(func() {
		*statesFlag, *debugFlag = "", false
	})

	applyFlag(cfg, "states")
	assert.Equal(t, "other.yaml", cfg.States)
	assert.True(t, cfg.Debug, "unset debug flag keeps the file value")

	applyFlag(cfg, "debug")
	assert.False(t, cfg.Debug)
}

func TestQuitHandlerClosesOnce(t *testing.T) {
	q := newQuitHandler()
	require.Equal(t, []event.EventType{event.EventQuitRequest}, q.EventTypes())

	select {
	case <-q.Done():
		t.Fatal("done before any request")
	default:
	}

	q.HandleEvent(event.GameEvent{Type: event.EventQuitRequest})
	q.HandleEvent(event.GameEvent{Type: event.EventQuitRequest})

	select {
	case <-q.Done():
	default:
		t.Fatal("quit not signalled")
	}
}
