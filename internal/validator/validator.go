package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/internal/analysis"
	"github.com/aretw0/espalier/pkg/domain"
)

// ValidateMachine checks a sealed machine for configuration defects:
// dangling initial-child keys, default-descent cycles, and transition
// targets that resolve to nothing. All findings are collected and reported
// together so a single run surfaces every problem.
func ValidateMachine(m *domain.Machine) error {
	var problems []string

	// Root descent determines the initial state; a broken root makes
	// every downstream analysis meaningless.
	if _, err := analysis.DescendToDefault(m.Root()); err != nil {
		problems = append(problems, err.Error())
	}

	for _, node := range analysis.ListNodes(m) {
		if key := node.Initial(); key != "" {
			if _, ok := node.Child(key); !ok {
				problems = append(problems, fmt.Sprintf("state %q: initial key %q does not name a child", node.ID(), key))
			} else if _, err := analysis.DescendToDefault(node); err != nil {
				problems = append(problems, err.Error())
			}
		}

		for _, event := range node.Events() {
			raw, _ := node.Target(event)
			nominal, err := analysis.Resolve(node, event, raw)
			if err != nil {
				problems = append(problems, err.Error())
				continue
			}
			if _, err := analysis.DescendToDefault(nominal); err != nil {
				problems = append(problems, err.Error())
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}
