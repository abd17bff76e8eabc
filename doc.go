/*
Package espalier analyzes hierarchical statechart definitions: given a tree
of nested states with named event transitions, it derives the flat set of
state nodes, the directed transition edges between them, each state's
effective transitions (including those inherited from enclosing compound
states), and the shortest event path from the machine's initial state to
every reachable state.

# Concept

Espalier does not interpret machines. It never fires a transition, runs a
guard, or executes an action; it treats the statechart purely as a graph
and answers structural questions about it. That makes it the analysis
companion for tools around a state machine: visualization frontends, test
path generators, and documentation generators.

The input is a sealed, immutable tree of state nodes built by one of two
collaborators: the fluent builder in pkg/dsl, or the YAML definition
compiler used by espalier.Load. Every query operation is a pure function
over that tree, so charts are safe for concurrent use.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/espalier"
		"github.com/aretw0/espalier/pkg/dsl"
	)

	func main() {
		b := dsl.New("door")
		b.State("closed").On("OPEN", "open")
		b.State("open").On("CLOSE", "closed")

		machine, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		chart, err := espalier.New(machine)
		if err != nil {
			log.Fatal(err)
		}

		paths, err := chart.Paths()
		if err != nil {
			log.Fatal(err)
		}
		for state, path := range paths {
			fmt.Printf("%s: %d steps\n", state, len(path))
		}
	}
*/
package espalier
