package domain

import (
	"bytes"
	"encoding/json"
)

// TransitionSet is an ordered event -> Destination mapping: a node's
// effective transitions, own declarations first, then inherited ones in
// ancestor order. Iteration order is significant (path search expands
// events in this order); an explicit key list preserves it.
type TransitionSet struct {
	order  []string
	events map[string]Destination
}

// NewTransitionSet creates an empty set.
func NewTransitionSet() *TransitionSet {
	return &TransitionSet{events: make(map[string]Destination)}
}

// Add appends an event if it is not already present. First-seen wins:
// closer declarations shadow inherited ones, so callers merge own
// transitions before walking outward.
func (s *TransitionSet) Add(event string, dest Destination) {
	if _, exists := s.events[event]; exists {
		return
	}
	s.order = append(s.order, event)
	s.events[event] = dest
}

// Events returns the event names in merge order.
func (s *TransitionSet) Events() []string { return s.order }

// Get returns the destination for event.
func (s *TransitionSet) Get(event string) (Destination, bool) {
	d, ok := s.events[event]
	return d, ok
}

// Len returns the number of effective transitions.
func (s *TransitionSet) Len() int { return len(s.order) }

// MarshalJSON renders the set as a JSON object preserving merge order.
func (s *TransitionSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, event := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(event)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.events[event])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AdjacencyMap maps each state's relative identifier to its effective
// transition set. Key order across states is insignificant; the per-state
// event order inside each TransitionSet is not.
type AdjacencyMap map[string]*TransitionSet
