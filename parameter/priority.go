package parameter

// System update order, lower values run first
const (
	PriorityInput      = 10
	PriorityPlayer     = 20
	PriorityEnemy      = 30
	PriorityCannon     = 40
	PriorityDampening  = 50
	PriorityPosition   = 60
	PriorityLifetime   = 70
	PriorityContact    = 80
	PriorityArena      = 90
	PriorityExplosion  = 100
	PriorityBlink      = 110
	PriorityHUD        = 120
	PriorityBackground = 130
	PriorityAudio      = 140
	PriorityStatus     = 200
)
