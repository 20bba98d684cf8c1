package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/status"
	"github.com/lixenwraith/kataster/vmath"
)

// Resource holds cached pointers to singleton resources, populated by BindResources
type Resource struct {
	Time    *TimeResource
	Arena   *ArenaResource
	Config  *ConfigResource
	State   *StateResource
	Input   *InputResource
	Run     *RunStateResource
	Player  *PlayerStateResource
	Enemies *ActiveEnemiesResource
	Event   *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged resources from services, nil-safe wrappers
	Audio *AudioResource
	Score *ScoreResource
}

// BindResources copies registered resources into World.Resources
// Call after every AddResource during bootstrap; missing core resources panic
func BindResources(w *World) {
	rs := w.ResourceStore
	r := w.Resources
	r.Time = MustGetResource[*TimeResource](rs)
	r.Arena = MustGetResource[*ArenaResource](rs)
	r.Config = MustGetResource[*ConfigResource](rs)
	r.State = MustGetResource[*StateResource](rs)
	r.Input = MustGetResource[*InputResource](rs)
	r.Run = MustGetResource[*RunStateResource](rs)
	r.Player = MustGetResource[*PlayerStateResource](rs)
	r.Enemies = MustGetResource[*ActiveEnemiesResource](rs)
	r.Event = MustGetResource[*EventQueueResource](rs)
	r.Status = MustGetResource[*status.Registry](rs)

	if a, ok := GetResource[*AudioResource](rs); ok {
		r.Audio = a
	} else {
		r.Audio = &AudioResource{}
	}
	if s, ok := GetResource[*ScoreResource](rs); ok {
		r.Score = s
	} else {
		r.Score = &ScoreResource{}
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ArenaResource is the playfield size in terminal cells
type ArenaResource struct {
	Width  int
	Height int
}

// PreciseSize returns the arena size in Q32.32
func (a *ArenaResource) PreciseSize() (int64, int64) {
	return vmath.FromInt(a.Width), vmath.FromInt(a.Height)
}

// Center returns the arena centre in Q32.32
func (a *ArenaResource) Center() (int64, int64) {
	w, h := a.PreciseSize()
	return w / 2, h / 2
}

// ConfigResource holds gameplay tunables resolved from configuration
type ConfigResource struct {
	StartLives          int
	RespawnDelay        time.Duration
	MaxEnemies          int
	MaxFormationMembers int
	MaxAsteroids        int
}

// === State ===

// Region and state names shared by the state graph and systems
const (
	RegionApp  = "app"
	RegionGame = "game"

	AppStartMenu = "StartMenu"
	AppGame      = "Game"

	GameInvalid  = "Invalid"
	GameRunning  = "Running"
	GamePause    = "Pause"
	GameGameOver = "GameOver"
)

// StateResource mirrors the active leaf state of each FSM region
// Updated by the FSM observer before OnEnter actions run
type StateResource struct {
	mu      sync.RWMutex
	regions map[string]string
}

// NewStateResource creates a state mirror with the initial states of both regions
func NewStateResource() *StateResource {
	return &StateResource{
		regions: map[string]string{
			RegionApp:  AppStartMenu,
			RegionGame: GameInvalid,
		},
	}
}

// Set records the active state of a region
func (s *StateResource) Set(region, state string) {
	s.mu.Lock()
	s.regions[region] = state
	s.mu.Unlock()
}

// Get returns the active state of a region
func (s *StateResource) Get(region string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.regions[region]
}

// App returns the app region state
func (s *StateResource) App() string {
	return s.Get(RegionApp)
}

// Game returns the game region state
func (s *StateResource) Game() string {
	return s.Get(RegionGame)
}

// Playing reports whether gameplay systems should advance
func (s *StateResource) Playing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.regions[RegionApp] == AppGame && s.regions[RegionGame] == GameRunning
}

// InArena reports whether the arena exists, gameplay may be paused or over
func (s *StateResource) InArena() bool {
	return s.App() == AppGame
}

// === Input ===

// Intent is a held player action
type Intent uint8

const (
	IntentRotateLeft Intent = iota
	IntentRotateRight
	IntentThrust
	IntentFire
	intentCount
)

// InputResource holds held intents as expiry deadlines in real time
// Terminals report presses and repeats but no releases
type InputResource struct {
	mu      sync.Mutex
	expires [intentCount]time.Time
	window  time.Duration
}

// NewInputResource creates an input state where a press is held for window
func NewInputResource(window time.Duration) *InputResource {
	return &InputResource{window: window}
}

// Press marks the intent held until now + window
func (ir *InputResource) Press(intent Intent, now time.Time) {
	if intent >= intentCount {
		return
	}
	ir.mu.Lock()
	ir.expires[intent] = now.Add(ir.window)
	ir.mu.Unlock()
}

// Held reports whether the intent is active at now
func (ir *InputResource) Held(intent Intent, now time.Time) bool {
	if intent >= intentCount {
		return false
	}
	ir.mu.Lock()
	defer ir.mu.Unlock()
	return now.Before(ir.expires[intent])
}

// ReleaseAll drops every held intent
func (ir *InputResource) ReleaseAll() {
	ir.mu.Lock()
	ir.expires = [intentCount]time.Time{}
	ir.mu.Unlock()
}

// === Run ===

// RunStateResource is the score keeping for the current run
type RunStateResource struct {
	RunID     string
	Score     int
	Lives     int
	Level     int
	Best      int
	StartedAt time.Time
	Recorded  bool // Score submitted for this run
}

// Reset starts a new run
func (r *RunStateResource) Reset(runID string, lives int, now time.Time) {
	r.RunID = runID
	r.Score = 0
	r.Lives = lives
	r.Level = 1
	r.StartedAt = now
	r.Recorded = false
}

// AddScore adds points and raises the best score when exceeded
func (r *RunStateResource) AddScore(points int) {
	r.Score += points
	if r.Score > r.Best {
		r.Best = r.Score
	}
}

// PlayerStateResource tracks whether the ship is in play and when it was last destroyed
type PlayerStateResource struct {
	On       bool
	LastShot time.Time
}

// Shot records the ship's destruction at t
func (p *PlayerStateResource) Shot(t time.Time) {
	p.On = false
	p.LastShot = t
}

// Spawned records the ship entering play
func (p *PlayerStateResource) Spawned() {
	p.On = true
	p.LastShot = time.Time{}
}

// ActiveEnemiesResource counts live enemies
type ActiveEnemiesResource struct {
	Count int
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// === Bridged Resources from Services ===

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player, Player is nil when audio is unavailable
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player if present
func (a *AudioResource) Play(sound core.SoundType) bool {
	if a == nil || a.Player == nil {
		return false
	}
	return a.Player.Play(sound)
}

// ToggleMute forwards to the player if present
func (a *AudioResource) ToggleMute() bool {
	if a == nil || a.Player == nil {
		return true
	}
	return a.Player.ToggleMute()
}

// ScoreKeeper persists finished runs
type ScoreKeeper interface {
	// Submit records a run asynchronously
	Submit(runID string, score, level int, startedAt time.Time)

	// Best returns the best recorded score
	Best() int

	// Top returns up to n best runs, highest first
	Top(n int) []ScoreEntry
}

// ScoreEntry is one row of the high score table
type ScoreEntry struct {
	Score int
	Level int
}

// ScoreResource wraps the score keeper, Keeper is nil when persistence is disabled
type ScoreResource struct {
	Keeper ScoreKeeper
}

// Submit forwards to the keeper if present
func (s *ScoreResource) Submit(runID string, score, level int, startedAt time.Time) {
	if s == nil || s.Keeper == nil {
		return
	}
	s.Keeper.Submit(runID, score, level, startedAt)
}

// Best returns the persisted best score, 0 without a keeper
func (s *ScoreResource) Best() int {
	if s == nil || s.Keeper == nil {
		return 0
	}
	return s.Keeper.Best()
}

// Top returns the high score table, empty without a keeper
func (s *ScoreResource) Top(n int) []ScoreEntry {
	if s == nil || s.Keeper == nil {
		return nil
	}
	return s.Keeper.Top(n)
}
