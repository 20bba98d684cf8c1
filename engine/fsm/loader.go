package fsm

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/kataster/event"
)

// LoadConfigAuto loads FSM config from customPath when set, otherwise from the embedded default
func LoadConfigAuto[T any](m *Machine[T], customPath, embeddedFallback string) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read FSM config %s: %w", customPath, err)
		}
		return m.LoadConfig(data)
	}
	return m.LoadConfig([]byte(embeddedFallback))
}

// LoadConfig parses a YAML byte slice and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	// 1. Decode YAML into intermediate config
	var config RootConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if len(config.Regions) == 0 {
		return fmt.Errorf("FSM config defines no regions")
	}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	// 2. Clear existing graph
	m.nodes = make(map[StateID]*Node[T])
	m.regions = make(map[string]*RegionState)
	m.regionInitials = make(map[string]StateID)
	m.regionOrder = m.regionOrder[:0]

	// 3. First Pass: Root node and state IDs
	m.AddState(StateRoot, "Root", StateNone)
	nameToID := make(map[string]StateID)
	nameToID["Root"] = StateRoot

	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nextID := 2
	for _, name := range stateNames {
		nameToID[name] = StateID(nextID)
		nextID++
	}

	// 4. Second Pass: Build Nodes and resolve relationships
	for name, cfg := range config.States {
		if cfg == nil {
			cfg = &StateConfig{}
		}
		id := nameToID[name]

		var node *Node[T]
		if id == StateRoot {
			node = m.nodes[StateRoot]
		} else {
			pName := cfg.Parent
			if pName == "" {
				pName = "Root"
			}
			parentID, ok := nameToID[pName]
			if !ok {
				return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
			}
			node = m.AddState(id, name, parentID)
		}

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	// 5. Compile Paths for LCA
	if err := m.CompilePaths(); err != nil {
		return err
	}

	// 6. Region initial states
	for regionName, regionCfg := range config.Regions {
		initialID, ok := nameToID[regionCfg.Initial]
		if !ok || initialID == StateRoot {
			return fmt.Errorf("region '%s' references unknown initial state '%s'", regionName, regionCfg.Initial)
		}
		m.regionInitials[regionName] = initialID
		m.regionOrder = append(m.regionOrder, regionName)
	}
	sort.Strings(m.regionOrder)

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any

		if cfg.Action == "EmitEvent" {
			if cfg.Event == "" {
				return nil, fmt.Errorf("EmitEvent action requires 'event' field")
			}
			et, ok := event.GetEventType(cfg.Event)
			if !ok {
				return nil, fmt.Errorf("unknown event type '%s'", cfg.Event)
			}
			payload := event.NewPayloadStruct(et)
			if payload != nil && cfg.Payload.Kind != 0 {
				if err := cfg.Payload.Decode(payload); err != nil {
					return nil, fmt.Errorf("failed to decode payload for event '%s': %w", cfg.Event, err)
				}
			}
			args = &EmitEventArgs{
				Type:    et,
				Payload: payload,
			}
		}

		actions = append(actions, Action[T]{
			Func: fn,
			Args: args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok || targetID == StateRoot {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		var eventType event.EventType // 0 = Tick
		if cfg.Trigger != "Tick" {
			et, ok := event.GetEventType(cfg.Trigger)
			if !ok {
				return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
			}
			eventType = et
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			// Check factory first
			if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				guard = factory(m, cfg.GuardArgs)
			} else if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		actions, err := m.compileActions(cfg.Actions)
		if err != nil {
			return fmt.Errorf("transition to '%s': %w", cfg.Target, err)
		}

		m.AddTransition(node.ID, Transition[T]{
			TargetID: targetID,
			Event:    eventType,
			Guard:    guard,
			Actions:  actions,
		})
	}
	return nil
}

// DurationArg reads a millisecond guard argument, accepting any numeric YAML scalar
func DurationArg(args map[string]any, key string) time.Duration {
	switch v := args[key].(type) {
	case int:
		return time.Duration(v) * time.Millisecond
	case int64:
		return time.Duration(v) * time.Millisecond
	case uint64:
		return time.Duration(v) * time.Millisecond
	case float64:
		return time.Duration(v * float64(time.Millisecond))
	}
	return 0
}
