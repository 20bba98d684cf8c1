package component

import "time"

// EnemyComponent marks a hostile ship
type EnemyComponent struct {
	NextFire time.Time
}

// FormationComponent drives an enemy along an elliptical path around a shared pivot
// All fields except Angle are fixed at spawn
type FormationComponent struct {
	// Entry point, enemies fly in from here before joining the ellipse
	StartX, StartY int64

	// Ellipse centre and radii, Q32.32 cells
	PivotX, PivotY   int64
	RadiusX, RadiusY int64

	// Angle is the current position on the ellipse as a turn fraction
	Angle int64

	// AngularSpeed is turns per second, sign selects direction
	AngularSpeed int64

	// Joined is set once the enemy reached the ellipse
	Joined bool
}
