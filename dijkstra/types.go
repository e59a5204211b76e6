// Package dijkstra provides a textbook Dijkstra implementation over
// core.Graph, used as the CLI's "--algo dijkstra" alternative to bmssp
// and as the ground-truth oracle bmssp's tests diff against.
//
// Complexity: Time O((V + E) log V), Space O(V + E), using a lazy
// decrease-key priority queue — stale heap entries are pushed rather than
// updated in place, and ignored on pop once their vertex is settled.
package dijkstra

import (
	"errors"

	"github.com/binghan1227/bmssp/trace"
)

// Sentinel errors returned by Dijkstra.
var (
	ErrNilGraph         = errors.New("dijkstra: graph is nil")
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// Options configures a Dijkstra run. The zero value is a plain,
// unconfigured run with no tracing.
type Options struct {
	tracer trace.Tracer
}

// Option configures a Solve call. Each Option mutates an Options value;
// callers compose zero or more of them as variadic arguments.
type Option func(*Options)

// WithTracer attaches a trace sink. Passing nil is equivalent to omitting
// the option; Dijkstra defaults to trace.Noop{} either way.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.tracer = t
		}
	}
}

func defaultOptions() Options {
	return Options{tracer: trace.Noop{}}
}
