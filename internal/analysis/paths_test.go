package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/internal/analysis"
	"github.com/aretw0/espalier/internal/testutils"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

func TestComputePaths(t *testing.T) {
	m := testutils.LightMachine(t)

	paths, err := analysis.ComputePaths(m)
	require.NoError(t, err)

	t.Run("Initial State Has Empty Path", func(t *testing.T) {
		path, ok := paths["green"]
		require.True(t, ok)
		assert.Empty(t, path)
	})

	t.Run("Pedestrian Wait Scenario", func(t *testing.T) {
		assert.Equal(t, domain.Path{
			{FromState: "green", Event: "TIMER"},
			{FromState: "yellow", Event: "TIMER"},
			{FromState: "red.walk", Event: "PED_COUNTDOWN"},
		}, paths["red.wait"])
	})

	t.Run("Entering Compound State Lands On Default Leaf", func(t *testing.T) {
		// There is no entry for "red" itself: the BFS state space is the
		// set of effective leaves.
		assert.NotContains(t, paths, "red")
		assert.Equal(t, domain.Path{
			{FromState: "green", Event: "TIMER"},
			{FromState: "yellow", Event: "TIMER"},
		}, paths["red.walk"])
	})

	t.Run("Shortest Wins Over Declaration", func(t *testing.T) {
		// flashing is reachable in one step from green; the longer routes
		// via yellow and red must not overwrite it.
		assert.Equal(t, domain.Path{
			{FromState: "green", Event: "POWER_OUTAGE"},
		}, paths["red.flashing"])
	})

	t.Run("Path Consistency Round Trip", func(t *testing.T) {
		adjacency, err := analysis.BuildAdjacency(m)
		require.NoError(t, err)
		initial, err := analysis.DescendToDefault(m.Root())
		require.NoError(t, err)

		for state, path := range paths {
			current := initial.RelativeID()
			for _, step := range path {
				require.Equal(t, current, step.FromState, "path to %s is discontinuous", state)
				dest, ok := adjacency[current].Get(step.Event)
				require.True(t, ok, "path to %s uses unknown event %s on %s", state, step.Event, current)
				current = dest.State.String()
			}
			assert.Equal(t, state, current, "path to %s ends elsewhere", state)
		}
	})

	t.Run("Deterministic Across Calls", func(t *testing.T) {
		again, err := analysis.ComputePaths(m)
		require.NoError(t, err)
		assert.Equal(t, paths, again)
	})
}

func TestComputePaths_Unreachable(t *testing.T) {
	b := dsl.New("m")
	b.State("a").On("GO", "b")
	b.State("b")
	b.State("island")
	machine, err := b.Build()
	require.NoError(t, err)

	paths, err := analysis.ComputePaths(machine)
	require.NoError(t, err)

	assert.Contains(t, paths, "a")
	assert.Contains(t, paths, "b")
	assert.NotContains(t, paths, "island", "unreachable states are omitted, not errors")
}

func TestComputePaths_MinimalLength(t *testing.T) {
	// Diamond with a long tail: d is reachable in 2 steps (via b or c) and
	// in 3 steps via the tail; BFS must report 2, tie broken by the first
	// expansion in event order.
	b := dsl.New("m")
	b.State("a").
		On("AB", "b").
		On("AC", "c")
	b.State("b").On("BD", "d")
	b.State("c").On("CD", "d")
	b.State("d").On("DE", "e")
	b.State("e")
	machine, err := b.Build()
	require.NoError(t, err)

	paths, err := analysis.ComputePaths(machine)
	require.NoError(t, err)

	require.Len(t, paths["d"], 2)
	assert.Equal(t, domain.Path{
		{FromState: "a", Event: "AB"},
		{FromState: "b", Event: "BD"},
	}, paths["d"])

	events := make([]string, 0, len(paths["e"]))
	for _, step := range paths["e"] {
		events = append(events, step.Event)
	}
	assert.Equal(t, "AB,BD,DE", strings.Join(events, ","))
}
