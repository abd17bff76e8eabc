package dsl

import "github.com/aretw0/espalier/pkg/domain"

// StateBuilder provides a fluent API for configuring a single state.
type StateBuilder struct {
	builder *Builder
	node    *domain.StateNode
}

// On declares a transition from this state: event name to raw target.
// Targets may be sibling keys ("yellow") or dotted ancestor-rooted paths
// ("red.flashing"); they are resolved by the analysis layer.
func (s *StateBuilder) On(event, target string) *StateBuilder {
	if err := s.node.On(event, target); err != nil {
		s.builder.fail(err)
	}
	return s
}

// Initial sets the default-descent child for this state, making it compound.
func (s *StateBuilder) Initial(key string) *StateBuilder {
	s.node.SetInitial(key)
	return s
}

// Child declares a nested substate and returns its builder.
func (s *StateBuilder) Child(key string) *StateBuilder {
	return attach(s.builder, s.node, key)
}
