package parameter

import "time"

// Ship
const (
	StartLife = 3

	// PlayerRespawnDelay is the time between losing the ship and the next spawn
	PlayerRespawnDelay = 2 * time.Second

	// PlayerInvincibleDuration is the post-spawn window during which contact is ignored
	PlayerInvincibleDuration = 2 * time.Second

	// PlayerBlinkPeriod toggles ship visibility while invincible
	PlayerBlinkPeriod = 100 * time.Millisecond

	// PlayerRotationSpeed in turns per second
	PlayerRotationSpeed = 0.6

	// PlayerThrust in cells per second squared
	PlayerThrust = 40.0

	// PlayerMaxSpeed in cells per second
	PlayerMaxSpeed = 30.0

	// PlayerDampening is the per-tick velocity retention at TimeStep
	PlayerDampening = 0.98

	PlayerRadius = 1.0
)

// Cannon
const (
	CannonCooldown = 200 * time.Millisecond

	// LaserSpeed in cells per second, the original's 500 px/s default Speed
	LaserSpeed = 60.0

	LaserLifetime = 2 * time.Second

	LaserRadius = 0.5
)
