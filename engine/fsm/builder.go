package fsm

import (
	"fmt"
	"slices"
)

// AddState registers a bare node under parentID, actions and transitions are attached by the loader
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{ID: id, Name: name, ParentID: parentID}
	m.nodes[id] = node
	return node
}

// AddTransition appends t to the source node, unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node := m.nodes[sourceID]; node != nil {
		node.Transitions = append(node.Transitions, t)
	}
}

// CompilePaths fills every node's root-first ancestry used for least common ancestor lookup
// Fails on a missing parent or a parent cycle
func (m *Machine[T]) CompilePaths() error {
	for _, node := range m.nodes {
		path, err := m.ancestry(node)
		if err != nil {
			return err
		}
		node.Path = path
	}
	return nil
}

// ancestry walks parent links from node, returning [Root, ..., node]
func (m *Machine[T]) ancestry(node *Node[T]) ([]StateID, error) {
	var path []StateID
	for cur := node; ; {
		path = append(path, cur.ID)
		if cur.ParentID == StateNone {
			break
		}
		if len(path) > len(m.nodes) {
			return nil, fmt.Errorf("state %q has a parent cycle", node.Name)
		}
		parent := m.nodes[cur.ParentID]
		if parent == nil {
			return nil, fmt.Errorf("state %q references missing parent %d", cur.Name, cur.ParentID)
		}
		cur = parent
	}
	slices.Reverse(path)
	return path, nil
}
