package espalier

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/espalier/internal/analysis"
	"github.com/aretw0/espalier/internal/compiler"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/presentation/graph"
	"github.com/aretw0/espalier/internal/validator"
	"github.com/aretw0/espalier/pkg/domain"
)

// Version is the library version reported by the CLI and adapters.
const Version = "0.2.0"

// Chart is the high-level entry point for the Espalier library.
// It wraps a sealed machine and exposes the derived graph views. All
// methods are pure queries over the immutable tree; results are recomputed
// per call and two calls on the same chart always agree.
type Chart struct {
	machine *domain.Machine
	logger  *slog.Logger
}

// Option defines a functional option for configuring a Chart.
type Option func(*Chart)

// WithLogger sets a custom structured logger (default: discard).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chart) {
		c.logger = logger
	}
}

// New wraps a sealed machine in a Chart.
func New(machine *domain.Machine, opts ...Option) (*Chart, error) {
	if machine == nil {
		return nil, fmt.Errorf("nil machine")
	}

	c := &Chart{machine: machine}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	c.logger = c.logger.With("machine", machine.ID())

	return c, nil
}

// Load builds a Chart from a YAML machine definition file.
func Load(path string, opts ...Option) (*Chart, error) {
	machine, err := compiler.NewParser().ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load machine definition: %w", err)
	}
	return New(machine, opts...)
}

// Machine returns the underlying sealed machine.
func (c *Chart) Machine() *domain.Machine {
	return c.machine
}

// Nodes returns the flat state listing: pre-order, declaration order,
// machine root excluded.
func (c *Chart) Nodes() []*domain.StateNode {
	return analysis.ListNodes(c.machine)
}

// Edges returns the declared transition edges with nominal targets.
func (c *Chart) Edges() ([]domain.Edge, error) {
	edges, err := analysis.ListEdges(c.machine)
	if err != nil {
		c.logger.Error("edge listing failed", "error", err)
		return nil, err
	}
	return edges, nil
}

// Adjacency returns every state's effective transition map.
func (c *Chart) Adjacency() (domain.AdjacencyMap, error) {
	adjacency, err := analysis.BuildAdjacency(c.machine)
	if err != nil {
		c.logger.Error("adjacency building failed", "error", err)
		return nil, err
	}
	return adjacency, nil
}

// Paths returns a shortest event path from the initial state to every
// reachable state. Unreachable states have no entry.
func (c *Chart) Paths() (domain.PathMap, error) {
	paths, err := analysis.ComputePaths(c.machine)
	if err != nil {
		c.logger.Error("path computation failed", "error", err)
		return nil, err
	}
	return paths, nil
}

// InitialState returns the machine's initial state: the default descent
// from the machine root.
func (c *Chart) InitialState() (*domain.StateNode, error) {
	return analysis.DescendToDefault(c.machine.Root())
}

// Validate checks the machine for configuration defects (unresolvable
// targets, dangling initial keys, descent cycles) and reports all of them.
func (c *Chart) Validate() error {
	return validator.ValidateMachine(c.machine)
}

// Mermaid renders the derived graph as a Mermaid flowchart.
func (c *Chart) Mermaid() (string, error) {
	edges, err := c.Edges()
	if err != nil {
		return "", err
	}
	initial, err := c.InitialState()
	if err != nil {
		return "", err
	}
	return graph.GenerateMermaid(c.Nodes(), edges, initial, nil), nil
}
