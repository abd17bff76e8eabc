/*
Package analysis derives graph views from a sealed statechart machine:
the flat node listing, the declared edge list, the per-state effective
transition map, and breadth-first shortest event paths from the initial
state.

Every operation here is a pure, synchronous function over the immutable
tree. Results are recomputed on each call; there is no cached or shared
graph state, so the operations are safe to invoke concurrently.
*/
package analysis
