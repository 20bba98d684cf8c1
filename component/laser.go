package component

// LaserComponent marks a projectile
type LaserComponent struct{}

// FromPlayerComponent marks a projectile fired by the ship
type FromPlayerComponent struct{}

// FromEnemyComponent marks a projectile fired by an enemy
type FromEnemyComponent struct{}
