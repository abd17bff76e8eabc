package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// BuildReport assembles the full analysis of a machine as a markdown
// document: state inventory, declared transitions, effective transitions
// per state, and shortest event paths from the initial state.
// Sections iterate in node order so the report is reproducible.
func BuildReport(machineID string, nodes []*domain.StateNode, edges []domain.Edge, adjacency domain.AdjacencyMap, paths domain.PathMap) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Machine `%s`\n\n", machineID)

	sb.WriteString("## States\n\n")
	sb.WriteString("| State | Kind | Initial child |\n|---|---|---|\n")
	for _, node := range nodes {
		kind := "leaf"
		if node.IsCompound() {
			kind = "compound"
		}
		initial := node.Initial()
		if initial == "" {
			initial = "-"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", node.RelativeID(), kind, initial)
	}

	sb.WriteString("\n## Declared transitions\n\n")
	sb.WriteString("| From | Event | To |\n|---|---|---|\n")
	for _, edge := range edges {
		fmt.Fprintf(&sb, "| `%s` | %s | `%s` |\n", edge.Source.RelativeID(), edge.Event, edge.Target.RelativeID())
	}

	sb.WriteString("\n## Effective transitions\n\n")
	for _, node := range nodes {
		set, ok := adjacency[node.RelativeID()]
		if !ok || set.Len() == 0 {
			continue
		}
		fmt.Fprintf(&sb, "### `%s`\n\n", node.RelativeID())
		for _, event := range set.Events() {
			dest, _ := set.Get(event)
			fmt.Fprintf(&sb, "- **%s** → `%s`\n", event, dest.State.String())
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Shortest paths\n\n")
	for _, node := range nodes {
		path, ok := paths[node.RelativeID()]
		if !ok {
			if node.IsCompound() {
				// Compound states resolve to their default leaf; the path
				// map never lists them directly.
				continue
			}
			fmt.Fprintf(&sb, "- `%s`: unreachable\n", node.RelativeID())
			continue
		}
		if len(path) == 0 {
			fmt.Fprintf(&sb, "- `%s`: initial state\n", node.RelativeID())
			continue
		}
		steps := make([]string, len(path))
		for i, step := range path {
			steps[i] = fmt.Sprintf("%s:%s", step.FromState, step.Event)
		}
		fmt.Fprintf(&sb, "- `%s`: %s\n", node.RelativeID(), strings.Join(steps, " → "))
	}

	return sb.String()
}
