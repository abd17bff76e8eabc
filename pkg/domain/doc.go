/*
Package domain defines the core entities of Espalier: the hierarchical
StateNode tree that describes a statechart, and the derived views the
analysis layer computes from it (edges, destination values, adjacency
maps, shortest paths).

A Machine is built once by an external builder (pkg/dsl for programmatic
construction, internal/compiler for YAML definitions) and is read-only
afterwards. Everything the analysis layer produces is a pure derived view
over that immutable tree; nothing in this package owns mutable graph state.
*/
package domain
