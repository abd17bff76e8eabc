package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StateNode is a single state in a hierarchical machine definition.
//
// Children and transitions keep their declaration order: both edge emission
// and breadth-first path search depend on stable, insertion-ordered
// iteration, so the node carries explicit key lists alongside its lookup
// maps instead of relying on Go map iteration.
type StateNode struct {
	id    string
	relID string
	key   string

	// parent is a non-owning back-reference used only for upward walks
	// (transition inheritance, target resolution). The Machine owns the tree.
	parent *StateNode

	initial    string
	childOrder []string
	children   map[string]*StateNode

	eventOrder []string
	targets    map[string]string
}

// NewStateNode creates a detached node with the given local key.
// Builders attach it to a tree with AddChild and seal the tree with NewMachine.
func NewStateNode(key string) *StateNode {
	return &StateNode{
		key:      key,
		children: make(map[string]*StateNode),
		targets:  make(map[string]string),
	}
}

// AddChild attaches child as the next child of n, in declaration order.
func (n *StateNode) AddChild(child *StateNode) error {
	if child == nil {
		return fmt.Errorf("nil child")
	}
	if child.key == "" {
		return fmt.Errorf("child of %q is missing a key", n.key)
	}
	if child.parent != nil {
		return fmt.Errorf("state %q is already attached to %q", child.key, child.parent.key)
	}
	if _, exists := n.children[child.key]; exists {
		return &StructuralError{Node: n.key, Reason: fmt.Sprintf("duplicate child key %q", child.key)}
	}
	child.parent = n
	n.childOrder = append(n.childOrder, child.key)
	n.children[child.key] = child
	return nil
}

// On declares a transition on this node: event name to raw target string.
// The target is resolved lazily by the analysis layer, relative to this node.
func (n *StateNode) On(event, target string) error {
	if event == "" {
		return fmt.Errorf("state %q: empty event name", n.key)
	}
	if _, exists := n.targets[event]; exists {
		return &StructuralError{Node: n.key, Reason: fmt.Sprintf("duplicate transition for event %q", event)}
	}
	n.eventOrder = append(n.eventOrder, event)
	n.targets[event] = target
	return nil
}

// SetInitial sets the default-descent child key for a compound node.
func (n *StateNode) SetInitial(key string) {
	n.initial = key
}

// ID returns the fully-qualified identifier (dot-joined keys from the
// machine root), e.g. "light.red.walk". Empty until the tree is sealed.
func (n *StateNode) ID() string { return n.id }

// RelativeID returns the identifier with the machine root key stripped,
// e.g. "red.walk". Empty for the root itself.
func (n *StateNode) RelativeID() string { return n.relID }

// Key returns the local key of this node.
func (n *StateNode) Key() string { return n.key }

// Parent returns the enclosing node, or nil for the machine root.
func (n *StateNode) Parent() *StateNode { return n.parent }

// Initial returns the initial-child key, or "" if none is declared.
func (n *StateNode) Initial() string { return n.initial }

// IsCompound reports whether the node has children.
func (n *StateNode) IsCompound() bool { return len(n.childOrder) > 0 }

// IsLeaf reports whether the node has no children.
func (n *StateNode) IsLeaf() bool { return len(n.childOrder) == 0 }

// ChildKeys returns the child keys in declaration order.
func (n *StateNode) ChildKeys() []string { return n.childOrder }

// Child looks up a direct child by key.
func (n *StateNode) Child(key string) (*StateNode, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Events returns the event names declared directly on this node,
// in declaration order. Inherited transitions are not included.
func (n *StateNode) Events() []string { return n.eventOrder }

// Target returns the raw target string declared on this node for event.
func (n *StateNode) Target(event string) (string, bool) {
	t, ok := n.targets[event]
	return t, ok
}

// MarshalJSON renders the node as a flat descriptor for API consumers.
func (n *StateNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string   `json:"id"`
		Key      string   `json:"key"`
		Relative string   `json:"relative_id"`
		Initial  string   `json:"initial,omitempty"`
		Children []string `json:"children,omitempty"`
	}{
		ID:       n.id,
		Key:      n.key,
		Relative: n.relID,
		Initial:  n.initial,
		Children: n.childOrder,
	})
}

// Machine is the arena owner of a sealed StateNode tree. It carries the
// identifier index so lookups and upward walks never need owning cycles.
type Machine struct {
	root  *StateNode
	index map[string]*StateNode
}

// NewMachine seals a tree rooted at root: it assigns fully-qualified
// identifiers, builds the lookup index, and verifies identifier uniqueness.
// The tree must not be mutated after this call.
func NewMachine(root *StateNode) (*Machine, error) {
	if root == nil {
		return nil, fmt.Errorf("nil root")
	}
	if root.key == "" {
		return nil, fmt.Errorf("machine root is missing a key")
	}

	m := &Machine{
		root:  root,
		index: make(map[string]*StateNode),
	}

	// Iterative pre-order walk; explicit stack keeps depth bounded for
	// very deep hierarchies.
	stack := []*StateNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.parent == nil {
			n.id = n.key
			n.relID = ""
		} else {
			n.id = n.parent.id + "." + n.key
			n.relID = strings.TrimPrefix(n.id, root.key+".")
		}

		if _, dup := m.index[n.id]; dup {
			return nil, &StructuralError{Node: n.id, Reason: "duplicate identifier"}
		}
		m.index[n.id] = n

		for i := len(n.childOrder) - 1; i >= 0; i-- {
			stack = append(stack, n.children[n.childOrder[i]])
		}
	}

	return m, nil
}

// Root returns the machine root node. The root represents the machine
// itself, not a state; derived node listings exclude it.
func (m *Machine) Root() *StateNode { return m.root }

// ID returns the machine identifier (the root key).
func (m *Machine) ID() string { return m.root.key }

// StateByID looks up a node by its fully-qualified identifier.
func (m *Machine) StateByID(id string) (*StateNode, bool) {
	n, ok := m.index[id]
	return n, ok
}

// Len returns the number of nodes in the tree, including the root.
func (m *Machine) Len() int { return len(m.index) }
