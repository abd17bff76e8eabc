package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// Overlay contains dynamic data to visualize on top of the static graph,
// e.g. the states along a computed shortest path.
type Overlay struct {
	VisitedStates []string // relative IDs
	CurrentState  string   // relative ID
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) from the derived
// node and edge lists. It applies semantic styling:
// - Initial state: ((Circle))
// - Compound state: [[Subroutine]]
// - Default: [Rectangle]
// Cross-scope transitions (source and target in different parents) render
// as dotted jump arrows. Overlay styles (Visited/Current) are applied if
// provided.
func GenerateMermaid(nodes []*domain.StateNode, edges []domain.Edge, initial *domain.StateNode, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.RelativeID())

		// Node shape based on role
		opener, closer := "[", "]"
		switch {
		case node == initial:
			opener, closer = "((", "))" // Circle
		case node.IsCompound():
			opener, closer = "[[", "]]" // Subroutine
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, node.RelativeID(), closer))
	}

	for _, edge := range edges {
		safeFrom := sanitizeMermaidID(edge.Source.RelativeID())
		safeTo := sanitizeMermaidID(edge.Target.RelativeID())

		// A transition whose endpoints live under different parents is a
		// jump across scopes.
		isJump := edge.Source.Parent() != edge.Target.Parent()

		arrow := fmt.Sprintf("-- \"%s\" -->", escapeMermaidLabel(edge.Event))
		if isJump {
			arrow = fmt.Sprintf("-. \"%s\" .->", escapeMermaidLabel(edge.Event))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, safeTo))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" {
			safeCurrent := sanitizeMermaidID(overlay.CurrentState)
			sb.WriteString(fmt.Sprintf("    class %s current;\n", safeCurrent))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
