package component

// PlayerComponent marks the ship
type PlayerComponent struct {
	Thrusting bool // Set while thrust intent is held, drives the exhaust glyph
}

// PlayerReadyFireComponent gates the cannon; false until the ship has been in play for a tick
type PlayerReadyFireComponent struct {
	Ready bool
}

// HeadingComponent is the facing of a ship, Q32.32 fraction of a full turn, 0 is up
type HeadingComponent struct {
	Angle int64
}

// SpeedComponent is the entity's nominal speed in cells per second (Q32.32)
type SpeedComponent struct {
	Value int64
}
