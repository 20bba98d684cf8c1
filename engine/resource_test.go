package engine

import (
	"testing"
	"time"
)

func TestInputHoldWindow(t *testing.T) {
	in := NewInputResource(100 * time.Millisecond)
	now := time.Unix(1000, 0)

	in.Press(IntentThrust, now)
	if !in.Held(IntentThrust, now.Add(50*time.Millisecond)) {
		t.Error("thrust should be held within window")
	}
	if in.Held(IntentThrust, now.Add(100*time.Millisecond)) {
		t.Error("thrust should expire at window end")
	}
	if in.Held(IntentFire, now) {
		t.Error("fire was never pressed")
	}

	in.Press(IntentFire, now)
	in.ReleaseAll()
	if in.Held(IntentFire, now) {
		t.Error("ReleaseAll should drop intents")
	}
}

func TestPlayerStateShotAndSpawned(t *testing.T) {
	var p PlayerStateResource
	at := time.Unix(50, 0)

	p.Spawned()
	if !p.On || !p.LastShot.IsZero() {
		t.Fatalf("after Spawned: %+v", p)
	}

	p.Shot(at)
	if p.On || !p.LastShot.Equal(at) {
		t.Errorf("after Shot: %+v", p)
	}
}

func TestRunStateScore(t *testing.T) {
	r := RunStateResource{Best: 100}
	r.Reset("run", 3, time.Unix(0, 0))
	if r.Lives != 3 || r.Level != 1 || r.Score != 0 {
		t.Fatalf("after Reset: %+v", r)
	}

	r.AddScore(60)
	if r.Best != 100 {
		t.Errorf("best should stay at 100, got %d", r.Best)
	}
	r.AddScore(60)
	if r.Best != 120 {
		t.Errorf("best = %d, want 120", r.Best)
	}
}

func TestStateResourcePlaying(t *testing.T) {
	s := NewStateResource()
	if s.Playing() || s.InArena() {
		t.Fatal("initial state is the start menu")
	}

	s.Set(RegionApp, AppGame)
	s.Set(RegionGame, GameRunning)
	if !s.Playing() {
		t.Error("Game/Running should be playing")
	}

	s.Set(RegionGame, GamePause)
	if s.Playing() || !s.InArena() {
		t.Error("paused game is in arena but not playing")
	}
}

func TestBridgedResourcesNilSafe(t *testing.T) {
	var a *AudioResource
	if a.Play(0) {
		t.Error("nil audio should not play")
	}
	s := &ScoreResource{}
	s.Submit("x", 1, 1, time.Time{})
	if s.Best() != 0 {
		t.Error("nil keeper best should be 0")
	}
}
