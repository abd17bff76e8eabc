package espalier_test

import (
	"fmt"
	"log"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/dsl"
)

// ExampleNew demonstrates building a machine in pure Go with the dsl package
// and querying its derived graph, without reading from the filesystem.
func ExampleNew() {
	// 1. Define the machine with the builder.
	b := dsl.New("light")
	b.State("green").On("TIMER", "yellow")
	b.State("yellow").On("TIMER", "red")
	red := b.State("red").Initial("walk").On("TIMER", "green")
	red.Child("walk").On("PED_COUNTDOWN", "wait")
	red.Child("wait")

	machine, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Wrap it in a Chart.
	chart, err := espalier.New(machine)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Query the shortest event path to a nested state.
	paths, err := chart.Paths()
	if err != nil {
		log.Fatal(err)
	}
	for _, step := range paths["red.wait"] {
		fmt.Printf("%s: %s\n", step.FromState, step.Event)
	}

	// Output:
	// green: TIMER
	// yellow: TIMER
	// red.walk: PED_COUNTDOWN
}
