package event

// EventType represents the type of game event
// 0 is reserved for the FSM tick trigger
type EventType int

const (
	_ EventType = iota

	// === Flow Events ===

	// EventMenuConfirm confirms the current menu (start, resume to menu, restart)
	// Trigger: InputSystem | Consumer: FSM | Payload: nil
	EventMenuConfirm

	// EventPauseToggle toggles between Running and Pause
	// Trigger: InputSystem | Consumer: FSM | Payload: nil
	EventPauseToggle

	// EventQuitRequest asks the application to exit
	// Trigger: InputSystem | Consumer: main loop | Payload: nil
	EventQuitRequest

	// EventReturnToMenu moves the app region back to the start menu
	// Trigger: FSM (game region leaving Pause/GameOver) | Consumer: FSM | Payload: nil
	EventReturnToMenu

	// EventGameStart starts the game region once the arena exists
	// Trigger: FSM (entering Game) | Consumer: FSM | Payload: nil
	EventGameStart

	// EventGameOver signals the last life was lost
	// Trigger: ContactSystem | Consumer: FSM | Payload: nil
	EventGameOver

	// === Gameplay Events ===

	// EventAsteroidSpawn requests a new asteroid
	// Trigger: ArenaSystem, ContactSystem (split) | Consumer: ArenaSystem | Payload: *AsteroidSpawnPayload
	EventAsteroidSpawn

	// EventExplosionSpawn requests an explosion animation
	// Trigger: ContactSystem | Consumer: ExplosionSystem | Payload: *ExplosionSpawnPayload
	EventExplosionSpawn

	// EventPlayerHit signals the ship was destroyed
	// Trigger: ContactSystem | Consumer: PlayerSystem | Payload: nil
	EventPlayerHit

	// EventPlayerSpawned signals the ship entered the arena
	// Trigger: PlayerSystem | Consumer: audio | Payload: nil
	EventPlayerSpawned

	// EventScore adds points to the run score
	// Trigger: ContactSystem | Consumer: RunSystem | Payload: *ScorePayload
	EventScore

	// EventLevelUp signals the arena was cleared
	// Trigger: ArenaSystem | Consumer: UI, audio | Payload: nil
	EventLevelUp

	// === Audio Events ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMuteToggle flips audio mute
	// Trigger: InputSystem | Consumer: AudioSystem | Payload: nil
	EventMuteToggle
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
