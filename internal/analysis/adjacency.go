package analysis

import (
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// effectiveTransition is one entry of a node's effective transition set.
// Targets must resolve relative to the node that declared them, not the
// node that inherits them, so the declaring node travels with the entry.
type effectiveTransition struct {
	event      string
	declaredOn *domain.StateNode
	rawTarget  string
}

// effectiveTransitions merges a node's own transitions with inherited
// ancestor transitions: own declarations first, then each ancestor walking
// outward, adding only events not already present. Closer declarations
// shadow farther ones.
func effectiveTransitions(node *domain.StateNode) []effectiveTransition {
	var merged []effectiveTransition
	seen := make(map[string]bool)

	for cur := node; cur != nil; cur = cur.Parent() {
		for _, event := range cur.Events() {
			if seen[event] {
				continue
			}
			seen[event] = true
			raw, _ := cur.Target(event)
			merged = append(merged, effectiveTransition{event: event, declaredOn: cur, rawTarget: raw})
		}
	}
	return merged
}

// BuildAdjacency computes every state's effective event -> destination
// mapping. Destinations are state values of the effective leaf after
// default-substate descent, expressed from the machine root: a bare key
// for a root-level leaf, a nested chain otherwise.
func BuildAdjacency(m *domain.Machine) (domain.AdjacencyMap, error) {
	adjacency := make(domain.AdjacencyMap, m.Len()-1)

	for _, node := range ListNodes(m) {
		set := domain.NewTransitionSet()
		for _, tr := range effectiveTransitions(node) {
			nominal, err := Resolve(tr.declaredOn, tr.event, tr.rawTarget)
			if err != nil {
				return nil, err
			}
			leaf, err := DescendToDefault(nominal)
			if err != nil {
				return nil, err
			}
			set.Add(tr.event, domain.Destination{State: stateValue(leaf)})
		}
		adjacency[node.RelativeID()] = set
	}
	return adjacency, nil
}

// stateValue encodes a node's position as a Value relative to the machine root.
func stateValue(node *domain.StateNode) domain.Value {
	return domain.ValueOf(strings.Split(node.RelativeID(), ".")...)
}
