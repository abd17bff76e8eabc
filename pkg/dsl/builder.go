package dsl

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

// Builder manages construction of one machine tree.
type Builder struct {
	root *domain.StateNode
	err  error
}

// New creates a builder for a machine with the given identifier.
func New(machineID string) *Builder {
	return &Builder{root: domain.NewStateNode(machineID)}
}

// Initial sets the machine's initial top-level state. If never called,
// Build falls back to the first declared state.
func (b *Builder) Initial(key string) *Builder {
	b.root.SetInitial(key)
	return b
}

// State declares a new top-level state and returns its builder.
func (b *Builder) State(key string) *StateBuilder {
	return attach(b, b.root, key)
}

// Build seals the tree into an immutable Machine. Construction errors
// (duplicate keys, duplicate events) are deferred until here so call
// chains stay fluent.
func (b *Builder) Build() (*domain.Machine, error) {
	if b.err != nil {
		return nil, fmt.Errorf("invalid machine definition: %w", b.err)
	}
	if b.root.Initial() == "" {
		if keys := b.root.ChildKeys(); len(keys) > 0 {
			// No explicit initial state: the first declared state is it.
			b.root.SetInitial(keys[0])
		}
	}
	return domain.NewMachine(b.root)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func attach(b *Builder, parent *domain.StateNode, key string) *StateBuilder {
	node := domain.NewStateNode(key)
	if err := parent.AddChild(node); err != nil {
		b.fail(err)
	}
	return &StateBuilder{builder: b, node: node}
}
