package component

// ForStateComponent tags an entity with the region state it belongs to
// The entity is destroyed when the region enters a different state
type ForStateComponent struct {
	Region string
	States []string // Any of these keeps the entity alive
}

// Alive reports whether state is one of the tagged states
func (f ForStateComponent) Alive(state string) bool {
	for _, s := range f.States {
		if s == state {
			return true
		}
	}
	return false
}

// UIStyle selects text styling
type UIStyle uint8

const (
	UIStyleTitle UIStyle = iota
	UIStylePrompt
	UIStyleInfo
	UIStyleHUD
)

// UIField identifies HUD text that systems refresh every tick
type UIField uint8

const (
	UIFieldStatic UIField = iota
	UIFieldScore
	UIFieldLives
	UIFieldLevel
	UIFieldBest
)

// UITextComponent is a line of text drawn over the arena
// Row is relative to the arena top, negative counts from the bottom
type UITextComponent struct {
	Text     string
	Row      int
	Col      int // Ignored when Centered, negative right-aligns to the arena edge
	Centered bool
	Style    UIStyle
	Field    UIField
}
