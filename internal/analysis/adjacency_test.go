package analysis_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/internal/analysis"
	"github.com/aretw0/espalier/internal/testutils"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

func TestBuildAdjacency(t *testing.T) {
	m := testutils.LightMachine(t)

	adjacency, err := analysis.BuildAdjacency(m)
	require.NoError(t, err)

	t.Run("One Entry Per State", func(t *testing.T) {
		assert.Len(t, adjacency, 7)
		for _, n := range analysis.ListNodes(m) {
			assert.Contains(t, adjacency, n.RelativeID())
		}
	})

	t.Run("Own Transitions First Then Inherited", func(t *testing.T) {
		set := adjacency["red.walk"]
		require.NotNil(t, set)
		assert.Equal(t, []string{"PED_COUNTDOWN", "TIMER", "POWER_OUTAGE"}, set.Events())
	})

	t.Run("Destinations Are Descended State Values", func(t *testing.T) {
		set := adjacency["red.walk"]

		ped, ok := set.Get("PED_COUNTDOWN")
		require.True(t, ok)
		assert.Equal(t, domain.Nested{Key: "red", Child: domain.Leaf("wait")}, ped.State)

		timer, ok := set.Get("TIMER")
		require.True(t, ok)
		assert.Equal(t, domain.Leaf("green"), timer.State)

		outage, ok := set.Get("POWER_OUTAGE")
		require.True(t, ok)
		assert.Equal(t, domain.Nested{Key: "red", Child: domain.Leaf("flashing")}, outage.State)
	})

	t.Run("Compound Targets Descend To Default Leaf", func(t *testing.T) {
		// yellow --TIMER--> red enters the compound state, so the
		// descriptor nests down to red's default substate.
		timer, ok := adjacency["yellow"].Get("TIMER")
		require.True(t, ok)
		assert.Equal(t, domain.Nested{Key: "red", Child: domain.Leaf("walk")}, timer.State)
	})

	t.Run("States Without Own Transitions Inherit Everything", func(t *testing.T) {
		set := adjacency["red.flashing"]
		assert.Equal(t, []string{"TIMER", "POWER_OUTAGE"}, set.Events())
	})

	t.Run("JSON Shape", func(t *testing.T) {
		data, err := json.Marshal(adjacency["red.walk"])
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"PED_COUNTDOWN":{"state":{"red":"wait"}},"TIMER":{"state":"green"},"POWER_OUTAGE":{"state":{"red":"flashing"}}}`,
			string(data))
	})
}

func TestBuildAdjacency_Shadowing(t *testing.T) {
	b := dsl.New("m")
	b.State("a")
	p := b.State("p").
		Initial("c1").
		On("EV", "a").
		On("OTHER", "a")
	p.Child("c1").On("EV", "c2")
	p.Child("c2")
	machine, err := b.Build()
	require.NoError(t, err)

	adjacency, err := analysis.BuildAdjacency(machine)
	require.NoError(t, err)

	// c1's own EV shadows p's EV; OTHER is inherited untouched.
	set := adjacency["p.c1"]
	assert.Equal(t, []string{"EV", "OTHER"}, set.Events())

	ev, _ := set.Get("EV")
	assert.Equal(t, domain.Nested{Key: "p", Child: domain.Leaf("c2")}, ev.State)

	other, _ := set.Get("OTHER")
	assert.Equal(t, domain.Leaf("a"), other.State)
}

func TestBuildAdjacency_ResolutionFailure(t *testing.T) {
	b := dsl.New("m")
	b.State("a").On("GO", "b")
	b.State("b").On("BAD", "missing.state")
	machine, err := b.Build()
	require.NoError(t, err)

	adjacency, err := analysis.BuildAdjacency(machine)

	var resErr *domain.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Nil(t, adjacency, "no partial adjacency map on failure")
	assert.Equal(t, "m.b", resErr.Node)
}
