package analysis

import "github.com/aretw0/espalier/pkg/domain"

// ListNodes flattens the tree into a pre-order sequence: each node before
// its children, children in declaration order. The machine root is
// excluded; it represents the machine itself, not a state.
func ListNodes(m *domain.Machine) []*domain.StateNode {
	// Explicit work stack instead of recursion keeps the walk safe for
	// arbitrarily deep hierarchies.
	root := m.Root()
	nodes := make([]*domain.StateNode, 0, m.Len()-1)
	stack := []*domain.StateNode{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n != root {
			nodes = append(nodes, n)
		}

		keys := n.ChildKeys()
		for i := len(keys) - 1; i >= 0; i-- {
			child, _ := n.Child(keys[i])
			stack = append(stack, child)
		}
	}
	return nodes
}

// ListEdges emits one Edge per directly declared transition, in ListNodes
// order and per-node declaration order. Targets are nominal destinations:
// resolved but not auto-descended. Transitions inherited by descendants are
// not edged separately; they are visible through the adjacency map.
//
// The first unresolvable target aborts with a ResolutionError; no partial
// edge list is returned.
func ListEdges(m *domain.Machine) ([]domain.Edge, error) {
	var edges []domain.Edge
	for _, node := range ListNodes(m) {
		for _, event := range node.Events() {
			raw, _ := node.Target(event)
			target, err := Resolve(node, event, raw)
			if err != nil {
				return nil, err
			}
			edges = append(edges, domain.Edge{Source: node, Event: event, Target: target})
		}
	}
	return edges, nil
}
