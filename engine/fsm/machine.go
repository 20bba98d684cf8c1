package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/kataster/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		regionInitials:  make(map[string]StateID),
		regions:         make(map[string]*RegionState),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// SetObserver installs a callback invoked whenever a region enters a new leaf state
func (m *Machine[T]) SetObserver(fn func(region, state string)) {
	m.observer = fn
}

// Init initializes all configured regions in name order
func (m *Machine[T]) Init(ctx T) error {
	if len(m.regionInitials) == 0 {
		return fmt.Errorf("FSM has no defined regions to initialize")
	}

	for _, regionName := range m.regionOrder {
		if err := m.initRegion(ctx, regionName, m.regionInitials[regionName]); err != nil {
			return fmt.Errorf("region '%s': %w", regionName, err)
		}
	}

	return nil
}

// initRegion initializes a single region
func (m *Machine[T]) initRegion(ctx T, regionName string, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}

	region := &RegionState{
		Name:          regionName,
		ActiveStateID: initialID,
		ActivePath:    make([]StateID, len(node.Path)),
	}
	copy(region.ActivePath, node.Path)

	m.regions[regionName] = region
	m.notify(region)

	// Execute OnEnter for the entire chain from Root to Initial
	for _, id := range region.ActivePath {
		if n, exists := m.nodes[id]; exists {
			runActions(ctx, n.OnEnter)
		}
	}

	return nil
}

// Update advances the FSM by delta time for all active regions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	for _, name := range m.regionOrder {
		if region, ok := m.regions[name]; ok {
			m.updateRegion(ctx, region, dt)
		}
	}
}

// updateRegion advances a single region, handling automatic transitions (Event == 0) and per-tick actions
func (m *Machine[T]) updateRegion(ctx T, region *RegionState, dt time.Duration) {
	if region.ActiveStateID == StateNone {
		return
	}

	region.TimeInState += dt

	leaf := m.nodes[region.ActiveStateID]
	runActions(ctx, leaf.OnUpdate)

	// Evaluate Tick Transitions, bubble up
	currID := region.ActiveStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for i := range node.Transitions {
			trans := &node.Transitions[i]
			if trans.Event == 0 && (trans.Guard == nil || trans.Guard(ctx, region)) {
				m.transitionRegion(ctx, region, trans)
				return
			}
		}
		currID = node.ParentID
	}
}

// HandleEvent routes an external event through all active regions
// Returns true if the event triggered a transition in any region
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if eventType == 0 {
		return false
	}

	handled := false
	for _, name := range m.regionOrder {
		region, ok := m.regions[name]
		if !ok {
			continue
		}
		if m.handleEventInRegion(ctx, region, eventType) {
			handled = true
		}
	}
	return handled
}

// handleEventInRegion processes event in a single region
func (m *Machine[T]) handleEventInRegion(ctx T, region *RegionState, eventType event.EventType) bool {
	if region.ActiveStateID == StateNone {
		return false
	}

	// Bubble up: Leaf -> Parent -> Root
	currID := region.ActiveStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for i := range node.Transitions {
			trans := &node.Transitions[i]
			if trans.Event == eventType && (trans.Guard == nil || trans.Guard(ctx, region)) {
				m.transitionRegion(ctx, region, trans)
				return true
			}
		}
		currID = node.ParentID
	}

	return false
}

// transitionRegion performs state change within a specific region
// Order: exit actions (leaf up to LCA), transition actions, state update, enter actions (LCA down to leaf)
func (m *Machine[T]) transitionRegion(ctx T, region *RegionState, trans *Transition[T]) {
	targetID := trans.TargetID
	if region.ActiveStateID == targetID {
		runActions(ctx, trans.Actions)
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d in region '%s'", targetID, region.Name))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := region.ActivePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		if node, exists := m.nodes[currentPath[i]]; exists {
			runActions(ctx, node.OnExit)
		}
	}

	runActions(ctx, trans.Actions)

	region.ActiveStateID = targetID
	region.TimeInState = 0
	region.ActivePath = append(region.ActivePath[:0], targetPath...)
	m.notify(region)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		if node, exists := m.nodes[targetPath[i]]; exists {
			runActions(ctx, node.OnEnter)
		}
	}
}

// Regions returns region names in evaluation order
func (m *Machine[T]) Regions() []string {
	result := make([]string, len(m.regionOrder))
	copy(result, m.regionOrder)
	return result
}

// GetRegionState returns current state name for a region
func (m *Machine[T]) GetRegionState(regionName string) string {
	if region, ok := m.regions[regionName]; ok {
		if node, ok := m.nodes[region.ActiveStateID]; ok {
			return node.Name
		}
	}
	return ""
}

// InState reports whether the region's active path contains the named state
func (m *Machine[T]) InState(regionName, stateName string) bool {
	region, ok := m.regions[regionName]
	if !ok {
		return false
	}
	for _, id := range region.ActivePath {
		if node, ok := m.nodes[id]; ok && node.Name == stateName {
			return true
		}
	}
	return false
}

func (m *Machine[T]) notify(region *RegionState) {
	if m.observer == nil {
		return
	}
	if node, ok := m.nodes[region.ActiveStateID]; ok {
		m.observer(region.Name, node.Name)
	}
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
