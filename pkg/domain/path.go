package domain

// Step records one transition taken along a path: the state it was taken
// from (relative identifier) and the event that triggered it.
type Step struct {
	FromState string `json:"fromState"`
	Event     string `json:"event"`
}

// Path is the ordered event sequence from the machine's initial state to
// some state. The initial state's own path is the empty sequence.
type Path []Step

// PathMap maps each reachable state's relative identifier to a shortest
// path from the initial state. Unreachable states have no entry.
type PathMap map[string]Path
