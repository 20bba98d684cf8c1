package fsm

import "gopkg.in/yaml.v3"

// RootConfig represents the top-level config structure
type RootConfig struct {
	Regions map[string]RegionConfig `yaml:"regions"`
	States  map[string]*StateConfig `yaml:"states"`
}

// RegionConfig names a parallel region's initial state
type RegionConfig struct {
	Initial string `yaml:"initial"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `yaml:"parent,omitempty"`
	OnEnter     []ActionConfig     `yaml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `yaml:"on_update,omitempty"`
	OnExit      []ActionConfig     `yaml:"on_exit,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger   string         `yaml:"trigger"`              // Event Name or "Tick"
	Target    string         `yaml:"target"`               // Target state name
	Guard     string         `yaml:"guard,omitempty"`      // Guard function name
	GuardArgs map[string]any `yaml:"guard_args,omitempty"` // Parameters for factory guards
	Actions   []ActionConfig `yaml:"actions,omitempty"`
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action  string    `yaml:"action"`            // Action function name (e.g. "EmitEvent")
	Event   string    `yaml:"event,omitempty"`   // For EmitEvent: Event Name
	Payload yaml.Node `yaml:"payload,omitempty"` // For EmitEvent: decoded into the registered payload struct
}
