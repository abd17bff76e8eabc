package analysis

import "github.com/aretw0/espalier/pkg/domain"

// ComputePaths finds a shortest event path from the machine's initial
// state to every reachable state, by breadth-first search over the
// effective transition graph.
//
// The initial state is the default descent from the machine root and is
// assigned the empty path before the search begins. Expansion follows the
// per-state event order of BuildAdjacency, and the first discovered path
// to a state wins, so results are deterministic for a given definition.
// Unreachable states are simply absent from the result.
func ComputePaths(m *domain.Machine) (domain.PathMap, error) {
	initial, err := DescendToDefault(m.Root())
	if err != nil {
		return nil, err
	}

	paths := domain.PathMap{initial.RelativeID(): {}}
	frontier := []*domain.StateNode{initial}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		currentID := current.RelativeID()

		for _, tr := range effectiveTransitions(current) {
			nominal, err := Resolve(tr.declaredOn, tr.event, tr.rawTarget)
			if err != nil {
				return nil, err
			}
			next, err := DescendToDefault(nominal)
			if err != nil {
				return nil, err
			}
			if _, visited := paths[next.RelativeID()]; visited {
				continue
			}

			base := paths[currentID]
			path := make(domain.Path, len(base)+1)
			copy(path, base)
			path[len(base)] = domain.Step{FromState: currentID, Event: tr.event}

			paths[next.RelativeID()] = path
			frontier = append(frontier, next)
		}
	}
	return paths, nil
}
