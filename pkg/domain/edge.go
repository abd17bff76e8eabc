package domain

import "encoding/json"

// Edge is one directed transition between two states: the declared source,
// the event name, and the nominal destination. The target is the node the
// transition names, before default-substate descent; edges represent the
// declared graph, not the fully expanded reachable leaves.
type Edge struct {
	Source *StateNode
	Event  string
	Target *StateNode
}

// MarshalJSON renders the edge endpoints as fully-qualified identifiers.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source string `json:"source"`
		Event  string `json:"event"`
		Target string `json:"target"`
	}{
		Source: e.Source.ID(),
		Event:  e.Event,
		Target: e.Target.ID(),
	})
}
