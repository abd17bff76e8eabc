package domain

import "fmt"

// ResolutionError reports a declared transition whose raw target matches
// neither a sibling key nor an ancestor-rooted path. It is a defect in the
// machine definition: the derived graph would be silently wrong without it,
// so operations fail instead of returning partial results.
type ResolutionError struct {
	Node   string // fully-qualified ID of the declaring node
	Event  string
	Target string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve target %q for event %q on state %q", e.Target, e.Event, e.Node)
}

// StructuralError reports a tree that violates a machine invariant:
// duplicate identifiers, a dangling initial-child key, or a cycle during
// descent. Detected opportunistically during traversal so walks terminate
// instead of looping.
type StructuralError struct {
	Node   string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid machine structure at %q: %s", e.Node, e.Reason)
}
