package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

// LightMachine builds the canonical test fixture: a three-phase traffic
// light with a pedestrian sub-cycle under "red" and a shared "flashing"
// fallback reachable from every phase via POWER_OUTAGE.
// It fails the test immediately on a construction error.
func LightMachine(t *testing.T) *domain.Machine {
	t.Helper()

	b := dsl.New("light")

	b.State("green").
		On("TIMER", "yellow").
		On("POWER_OUTAGE", "red.flashing")

	b.State("yellow").
		On("TIMER", "red").
		On("POWER_OUTAGE", "red.flashing")

	red := b.State("red").
		Initial("walk").
		On("TIMER", "green").
		On("POWER_OUTAGE", "red.flashing")

	red.Child("walk").On("PED_COUNTDOWN", "wait")
	red.Child("wait").On("PED_COUNTDOWN", "stop")
	red.Child("stop")
	red.Child("flashing")

	m, err := b.Build()
	require.NoError(t, err, "Failed to build light machine fixture")
	return m
}
