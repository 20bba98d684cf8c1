package engine

// System is a per-tick unit of game logic
type System interface {
	// Update runs once per tick under the world lock
	Update()

	// Priority orders systems, lower values run first
	Priority() int
}
