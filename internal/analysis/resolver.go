package analysis

import (
	"strconv"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// Resolve turns a raw target string into a concrete node, relative to the
// node that declared the transition. Rules, in order:
//
//  1. A bare key naming a sibling of source resolves to that sibling.
//  2. A dotted path is resolved against each ancestor, walking up from
//     source's parent; the first ancestor whose subtree matches the whole
//     path wins. The machine root is the last ancestor tried.
//  3. Anything else is a ResolutionError.
//
// Resolution never mutates the tree. The event name is carried only for
// error reporting.
func Resolve(source *domain.StateNode, event, rawTarget string) (*domain.StateNode, error) {
	if rawTarget != "" {
		if parent := source.Parent(); parent != nil {
			if sibling, ok := parent.Child(rawTarget); ok {
				return sibling, nil
			}
		}

		if strings.Contains(rawTarget, ".") {
			segments := strings.Split(rawTarget, ".")
			seen := make(map[*domain.StateNode]bool)
			for anc := source.Parent(); anc != nil; anc = anc.Parent() {
				if seen[anc] {
					return nil, &domain.StructuralError{Node: anc.ID(), Reason: "cycle in ancestor chain"}
				}
				seen[anc] = true
				if node, ok := descendPath(anc, segments); ok {
					return node, nil
				}
			}
		}
	}

	return nil, &domain.ResolutionError{Node: source.ID(), Event: event, Target: rawTarget}
}

// descendPath follows child keys from root; all segments must match.
func descendPath(root *domain.StateNode, segments []string) (*domain.StateNode, bool) {
	cur := root
	for _, seg := range segments {
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// DescendToDefault repeatedly follows a compound node's initial-child key
// until it reaches a leaf or a compound node with no initial key. The
// returned node is the effective destination when the input is entered
// without an explicit substate.
func DescendToDefault(node *domain.StateNode) (*domain.StateNode, error) {
	cur := node
	seen := make(map[*domain.StateNode]bool)
	for cur.IsCompound() {
		key := cur.Initial()
		if key == "" {
			return cur, nil
		}
		if seen[cur] {
			return nil, &domain.StructuralError{Node: cur.ID(), Reason: "cycle in default-substate descent"}
		}
		seen[cur] = true

		next, ok := cur.Child(key)
		if !ok {
			return nil, &domain.StructuralError{Node: cur.ID(), Reason: "initial key " + strconv.Quote(key) + " does not name a child"}
		}
		cur = next
	}
	return cur, nil
}
