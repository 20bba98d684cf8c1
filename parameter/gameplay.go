package parameter

import "time"

// AsteroidSize enumerates asteroid tiers, Big splits into Medium, Medium into Small
type AsteroidSize uint8

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidBig
)

// Asteroid spawning
const (
	AsteroidSpawnInterval    = 5 * time.Second
	AsteroidMinSpawnInterval = 1500 * time.Millisecond

	// AsteroidSpawnStep shortens the spawn interval per level
	AsteroidSpawnStep = 500 * time.Millisecond

	MaxAsteroids = 20

	// AsteroidSplitCount is the number of fragments from a split
	AsteroidSplitCount = 2

	AsteroidMinSpeed = 3.0
	AsteroidMaxSpeed = 8.0
)

// HighScoreRows is the length of the start menu score table
const HighScoreRows = 5

// AsteroidRadius returns the contact radius in columns for a size tier
func AsteroidRadius(size AsteroidSize) float64 {
	switch size {
	case AsteroidBig:
		return 3.0
	case AsteroidMedium:
		return 2.0
	default:
		return 1.0
	}
}

// AsteroidScore returns points awarded for destroying an asteroid of a size tier
func AsteroidScore(size AsteroidSize) int {
	switch size {
	case AsteroidBig:
		return 20
	case AsteroidMedium:
		return 50
	default:
		return 100
	}
}

// AsteroidSpeedFactor makes smaller fragments faster
func AsteroidSpeedFactor(size AsteroidSize) float64 {
	switch size {
	case AsteroidBig:
		return 1.0
	case AsteroidMedium:
		return 1.4
	default:
		return 1.9
	}
}
