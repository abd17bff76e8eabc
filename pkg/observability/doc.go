/*
Package observability provides Prometheus instrumentation for the Espalier
analysis surfaces.

The HTTP adapter records a request counter and a duration histogram per
analysis operation; batch tooling can register the same collectors on its
own registry.
*/
package observability
