// Package trace defines the opt-in, append-only event sink consumed by
// the (out-of-scope) browser visualizer. The core calls a Tracer at
// documented points; Noop makes that call free when tracing is disabled.
package trace
