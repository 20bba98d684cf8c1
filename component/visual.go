package component

import "time"

// SpriteKind selects glyph art for an entity
type SpriteKind uint8

const (
	SpriteNone SpriteKind = iota
	SpriteShip
	SpritePlayerLaser
	SpriteEnemy
	SpriteEnemyLaser
	SpriteAsteroidSmall
	SpriteAsteroidMedium
	SpriteAsteroidBig
)

// SpriteComponent makes an entity visible
type SpriteComponent struct {
	Kind   SpriteKind
	Hidden bool
}

// BlinkComponent toggles sprite visibility until Until, entity is invulnerable meanwhile
type BlinkComponent struct {
	Until      time.Time
	NextToggle time.Time
}
