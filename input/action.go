package input

import "fmt"

// Action is a bindable player command
type Action uint8

const (
	ActionNone Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionThrust
	ActionFire
	ActionPause
	ActionConfirm
	ActionMute
	ActionQuit
)

// actionNames maps configuration names to actions
var actionNames = map[string]Action{
	"rotate_left":  ActionRotateLeft,
	"rotate_right": ActionRotateRight,
	"thrust":       ActionThrust,
	"fire":         ActionFire,
	"pause":        ActionPause,
	"confirm":      ActionConfirm,
	"mute":         ActionMute,
	"quit":         ActionQuit,
}

// ParseAction resolves a configuration action name
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

func (a Action) String() string {
	for name, action := range actionNames {
		if action == a {
			return name
		}
	}
	return "none"
}
