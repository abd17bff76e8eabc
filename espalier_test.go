package espalier_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
)

const lightDefinition = `id: light
initial: green
states:
  green:
    on:
      TIMER: yellow
      POWER_OUTAGE: red.flashing
  yellow:
    on:
      TIMER: red
      POWER_OUTAGE: red.flashing
  red:
    initial: walk
    on:
      TIMER: green
      POWER_OUTAGE: red.flashing
    states:
      walk:
        on:
          PED_COUNTDOWN: wait
      wait:
        on:
          PED_COUNTDOWN: stop
      stop: {}
      flashing: {}
`

func loadLight(t *testing.T) *espalier.Chart {
	t.Helper()
	path := filepath.Join(t.TempDir(), "light.yaml")
	if err := os.WriteFile(path, []byte(lightDefinition), 0644); err != nil {
		t.Fatal(err)
	}

	chart, err := espalier.Load(path)
	if err != nil {
		t.Fatalf("Failed to load machine definition: %v", err)
	}
	return chart
}

func TestChart_Integration(t *testing.T) {
	chart := loadLight(t)

	if err := chart.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	// 1. Flat node listing: pre-order, declaration order, root excluded.
	nodes := chart.Nodes()
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.RelativeID())
	}
	want := []string{"green", "yellow", "red", "red.walk", "red.wait", "red.stop", "red.flashing"}
	if len(ids) != len(want) {
		t.Fatalf("Nodes = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Nodes = %v, want %v", ids, want)
		}
	}

	// 2. Edges: one per declared transition.
	edges, err := chart.Edges()
	if err != nil {
		t.Fatalf("Edges failed: %v", err)
	}
	if len(edges) != 8 {
		t.Errorf("Expected 8 edges, got %d", len(edges))
	}

	// 3. Initial state: the root's default descent ends on the green leaf.
	initial, err := chart.InitialState()
	if err != nil {
		t.Fatalf("InitialState failed: %v", err)
	}
	if initial.RelativeID() != "green" {
		t.Errorf("InitialState = %q, want green", initial.RelativeID())
	}

	// 4. Effective transitions of a nested state: own first, then inherited.
	adjacency, err := chart.Adjacency()
	if err != nil {
		t.Fatalf("Adjacency failed: %v", err)
	}
	set := adjacency["red.walk"]
	if set == nil {
		t.Fatal("Missing adjacency entry for red.walk")
	}
	events := set.Events()
	if len(events) != 3 || events[0] != "PED_COUNTDOWN" || events[1] != "TIMER" || events[2] != "POWER_OUTAGE" {
		t.Errorf("red.walk events = %v", events)
	}
	if d, _ := set.Get("PED_COUNTDOWN"); d.State.String() != "red.wait" {
		t.Errorf("PED_COUNTDOWN destination = %v", d.State)
	}

	// 5. Shortest paths from the initial state.
	paths, err := chart.Paths()
	if err != nil {
		t.Fatalf("Paths failed: %v", err)
	}
	if len(paths["green"]) != 0 {
		t.Errorf("Path to the initial state should be empty, got %v", paths["green"])
	}
	wait := paths["red.wait"]
	if len(wait) != 3 ||
		wait[0] != (domain.Step{FromState: "green", Event: "TIMER"}) ||
		wait[1] != (domain.Step{FromState: "yellow", Event: "TIMER"}) ||
		wait[2] != (domain.Step{FromState: "red.walk", Event: "PED_COUNTDOWN"}) {
		t.Errorf("Path to red.wait = %v", wait)
	}
	if _, ok := paths["red"]; ok {
		t.Error("Compound states should have no path entry of their own")
	}

	// 6. Repeated queries agree.
	again, err := chart.Paths()
	if err != nil {
		t.Fatalf("Paths failed on second call: %v", err)
	}
	if len(again) != len(paths) {
		t.Errorf("Paths disagree across calls: %d vs %d entries", len(again), len(paths))
	}

	// 7. Mermaid rendering covers every state.
	mermaid, err := chart.Mermaid()
	if err != nil {
		t.Fatalf("Mermaid failed: %v", err)
	}
	if len(mermaid) == 0 {
		t.Error("Expected a mermaid document")
	}
}

func TestChart_ResolutionFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	definition := `id: m
states:
  a:
    on:
      GO: b
  b:
    on:
      BAD: missing.state
`
	if err := os.WriteFile(path, []byte(definition), 0644); err != nil {
		t.Fatal(err)
	}

	chart, err := espalier.Load(path)
	if err != nil {
		t.Fatalf("Load should succeed, resolution happens at analysis time: %v", err)
	}

	var resErr *domain.ResolutionError
	if _, err := chart.Edges(); !errors.As(err, &resErr) {
		t.Errorf("Edges: expected a resolution failure, got %v", err)
	}
	if adjacency, err := chart.Adjacency(); !errors.As(err, &resErr) || adjacency != nil {
		t.Errorf("Adjacency: expected a resolution failure and no partial map, got %v / %v", adjacency, err)
	}
	if err := chart.Validate(); err == nil {
		t.Error("Validate should report the broken target")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := espalier.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing definition file")
	}
}

func TestNew_NilMachine(t *testing.T) {
	_, err := espalier.New(nil)
	if err == nil {
		t.Fatal("Expected an error for a nil machine")
	}
}
