package compiler

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/pkg/domain"
)

// Parser converts a raw YAML machine definition into a sealed domain.Machine.
//
// It walks the yaml.Node tree directly instead of decoding into Go maps:
// the analysis layer's tie-breaking depends on declaration order, and only
// the node representation preserves mapping order.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// targetSpec is the object form of a transition target ({target: green}).
// The scalar shorthand ("green") is handled before decoding.
type targetSpec struct {
	Target string `mapstructure:"target"`
}

// Parse decodes a machine definition document.
func (p *Parser) Parse(data []byte) (*domain.Machine, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse machine definition: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty machine definition")
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("machine definition must be a mapping")
	}

	var id, initial string
	var states *yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]
		switch key.Value {
		case "id":
			id = val.Value
		case "initial":
			initial = val.Value
		case "states":
			states = val
		}
	}
	if id == "" {
		return nil, fmt.Errorf("machine definition is missing an id")
	}

	root := domain.NewStateNode(id)
	if initial != "" {
		root.SetInitial(initial)
	}
	if states != nil {
		if err := p.buildStates(root, states); err != nil {
			return nil, err
		}
	}
	if root.Initial() == "" {
		if keys := root.ChildKeys(); len(keys) > 0 {
			root.SetInitial(keys[0])
		}
	}

	return domain.NewMachine(root)
}

// ParseFile reads and parses a machine definition from disk.
func (p *Parser) ParseFile(path string) (*domain.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine definition: %w", err)
	}
	return p.Parse(data)
}

func (p *Parser) buildStates(parent *domain.StateNode, states *yaml.Node) error {
	if states.Kind != yaml.MappingNode {
		return fmt.Errorf("states of %q must be a mapping", parent.Key())
	}

	for i := 0; i+1 < len(states.Content); i += 2 {
		keyNode, body := states.Content[i], states.Content[i+1]

		child := domain.NewStateNode(keyNode.Value)
		if err := parent.AddChild(child); err != nil {
			return err
		}
		if body.Kind == yaml.MappingNode {
			if err := p.buildState(child, body); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Parser) buildState(node *domain.StateNode, body *yaml.Node) error {
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, val := body.Content[i], body.Content[i+1]
		switch key.Value {
		case "initial":
			node.SetInitial(val.Value)
		case "on":
			if err := p.buildTransitions(node, val); err != nil {
				return err
			}
		case "states":
			if err := p.buildStates(node, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Parser) buildTransitions(node *domain.StateNode, on *yaml.Node) error {
	if on.Kind != yaml.MappingNode {
		return fmt.Errorf("transitions of %q must be a mapping", node.Key())
	}

	for i := 0; i+1 < len(on.Content); i += 2 {
		event, val := on.Content[i], on.Content[i+1]

		target, err := decodeTarget(node, event.Value, val)
		if err != nil {
			return err
		}
		if err := node.On(event.Value, target); err != nil {
			return err
		}
	}
	return nil
}

// decodeTarget accepts the scalar shorthand (TIMER: green) and the object
// form (TIMER: {target: green}).
func decodeTarget(node *domain.StateNode, event string, val *yaml.Node) (string, error) {
	switch val.Kind {
	case yaml.ScalarNode:
		return val.Value, nil
	case yaml.MappingNode:
		var raw map[string]any
		if err := val.Decode(&raw); err != nil {
			return "", fmt.Errorf("transition %q of %q: %w", event, node.Key(), err)
		}
		var spec targetSpec
		if err := mapstructure.Decode(raw, &spec); err != nil {
			return "", fmt.Errorf("transition %q of %q: %w", event, node.Key(), err)
		}
		if spec.Target == "" {
			return "", fmt.Errorf("transition %q of %q is missing a target", event, node.Key())
		}
		return spec.Target, nil
	default:
		return "", fmt.Errorf("transition %q of %q has an unsupported target form", event, node.Key())
	}
}
