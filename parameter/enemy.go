package parameter

import "time"

// Enemy formations
const (
	MaxEnemies          = 4
	MaxFormationMembers = 2

	EnemySpawnInterval = 1 * time.Second
	EnemyFireInterval  = 900 * time.Millisecond

	EnemyLaserSpeed = 25.0
	EnemyRadius     = 2.0
	EnemyScore      = 200

	// EnemyApproachSpeed in cells per second while flying to the formation pivot
	EnemyApproachSpeed = 20.0

	// EnemyAngularSpeed in turns per second around the pivot
	EnemyAngularSpeed = 0.12

	// EnemyPivotTopRatio and EnemyPivotBottomRatio bound the pivot band in arena height fractions
	EnemyPivotTopRatio    = 0.15
	EnemyPivotBottomRatio = 0.45
)
