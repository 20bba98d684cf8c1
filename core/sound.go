package core

// SoundType identifies a synthesized sound effect
type SoundType int

const (
	SoundNone SoundType = iota
	SoundLaser
	SoundEnemyLaser
	SoundExplosion
	SoundShipExplosion
	SoundLifeLost
	SoundBlip
	SoundThrust
)

// ExplosionKind selects explosion tint, sound and scale
type ExplosionKind int

const (
	// ExplosionLaserOnAsteroid is a player laser destroying an asteroid
	ExplosionLaserOnAsteroid ExplosionKind = iota
	// ExplosionShipContact is the ship losing a life
	ExplosionShipContact
	// ExplosionShipDead is the ship losing its last life
	ExplosionShipDead
	// ExplosionEnemy is a destroyed enemy
	ExplosionEnemy
)
