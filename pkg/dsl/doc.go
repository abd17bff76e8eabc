/*
Package dsl provides a Go DSL for programmatically constructing Espalier
machine trees.

It lets callers define hierarchical statecharts with a type-safe, fluent
builder instead of external YAML files. This is the primary construction
path for unit tests and for dynamic machine generation, with the benefit
of IDE autocompletion and compile-time checking.

Example usage:

	b := dsl.New("light")

	b.State("green").
		On("TIMER", "yellow")

	b.State("yellow").
		On("TIMER", "red")

	red := b.State("red").
		Initial("walk").
		On("TIMER", "green")

	red.Child("walk").On("PED_COUNTDOWN", "wait")
	red.Child("wait").On("PED_COUNTDOWN", "stop")
	red.Child("stop")

	machine, err := b.Build()
	// ... pass machine to espalier.New(...)
*/
package dsl
